package csvimport

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// Mapping binds CSV headers to the exported fields of a struct type.
// A header matches a field when both normalize to the same key: the JSON name
// "partyCode" accepts "partyCode", "party_code" and "Party Code".
type Mapping struct {
	typ     reflect.Type
	fields  map[string]int // header -> field index
	ignored []string
}

// NewMapping matches headers against the JSON names of T's fields.
// Headers with no matching field are ignored and listed by Ignored.
func NewMapping[T any](headers []string) *Mapping {
	typ := reflect.TypeFor[T]()
	byKey := make(map[string]int, typ.NumField())
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		byKey[normalizeKey(name)] = i
	}

	m := &Mapping{typ: typ, fields: make(map[string]int, len(headers))}
	for _, h := range headers {
		if h == "" {
			continue
		}
		if idx, ok := byKey[normalizeKey(h)]; ok {
			m.fields[h] = idx
		} else {
			m.ignored = append(m.ignored, h)
		}
	}
	return m
}

// Ignored returns the headers that map to no field
func (m *Mapping) Ignored() []string {
	return m.ignored
}

// Decode fills dst (a pointer to the mapped struct) from row. Blank cells
// leave the field at its zero value. Cells that do not parse as the field's
// type are returned as RowErrors.
func (m *Mapping) Decode(row *Row, dst any) []RowError {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Type() != m.typ {
		panic(fmt.Sprintf("csvimport: Decode target must be *%s", m.typ))
	}
	v = v.Elem()

	var errs []RowError
	for header, idx := range m.fields {
		raw := row.Values[header]
		if raw == "" {
			continue
		}
		if err := setField(v.Field(idx), raw); err != nil {
			errs = append(errs, RowError{
				Row:     row.Line,
				Column:  header,
				Code:    CodeInvalidValue,
				Message: err.Error(),
			})
		}
	}
	return errs
}

func setField(f reflect.Value, raw string) error {
	if f.Kind() == reflect.Pointer {
		ptr := reflect.New(f.Type().Elem())
		if err := setField(ptr.Elem(), raw); err != nil {
			return err
		}
		f.Set(ptr)
		return nil
	}

	if f.Type() == decimalType {
		d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return fmt.Errorf("%q is not a number", raw)
		}
		f.Set(reflect.ValueOf(d))
		return nil
	}

	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not a whole number", raw)
		}
		f.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%q is not true or false", raw)
		}
		f.SetBool(b)
	default:
		return fmt.Errorf("column type %s is not supported", f.Type())
	}
	return nil
}

// normalizeKey lowercases s and drops everything but letters and digits
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

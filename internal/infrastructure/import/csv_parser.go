// Package csvimport reads spreadsheet exports as CSV and maps their rows onto
// request structs by JSON field name.
package csvimport

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultMaxRows caps a single upload
const DefaultMaxRows = 5000

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one data line keyed by header
type Row struct {
	Line   int
	Values map[string]string
}

// IsEmpty reports whether every cell is blank
func (r *Row) IsEmpty() bool {
	for _, v := range r.Values {
		if v != "" {
			return false
		}
	}
	return true
}

// Parser reads a header line followed by data rows.
// A leading UTF-8 BOM (as written by Excel) is skipped.
type Parser struct {
	reader  *csv.Reader
	headers []string
	line    int
	maxRows int
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithDelimiter sets the field separator (default ',')
func WithDelimiter(d rune) ParserOption {
	return func(p *Parser) { p.reader.Comma = d }
}

// WithMaxRows caps the number of data rows ReadAll accepts
func WithMaxRows(n int) ParserOption {
	return func(p *Parser) { p.maxRows = n }
}

// NewParser checks the encoding and reads the header line
func NewParser(r io.Reader, opts ...ParserOption) (*Parser, error) {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	sample, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(bytes.TrimSpace(sample)) == 0 {
		return nil, ErrEmptyFile
	}
	// The sample may end mid-rune.
	if !utf8.Valid(sample) && !utf8.Valid(trimPartialRune(sample)) {
		return nil, ErrInvalidEncoding
	}

	cr := csv.NewReader(br)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	p := &Parser{reader: cr, maxRows: DefaultMaxRows}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.readHeader(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) readHeader() error {
	record, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	p.line = 1

	p.headers = make([]string, len(record))
	blank := true
	for i, h := range record {
		p.headers[i] = strings.TrimSpace(h)
		if p.headers[i] != "" {
			blank = false
		}
	}
	if blank {
		return ErrMissingHeader
	}
	return nil
}

// Headers returns the trimmed header names in file order
func (p *Parser) Headers() []string {
	return p.headers
}

// Next returns the next row, or io.EOF. A row with the wrong quoting is
// reported as a RowError and parsing can continue.
func (p *Parser) Next() (*Row, error) {
	record, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	p.line++
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, RowError{Row: p.line, Code: CodeMalformedRow, Message: parseErr.Err.Error()}
		}
		return nil, fmt.Errorf("failed to read row %d: %w", p.line, err)
	}

	row := &Row{Line: p.line, Values: make(map[string]string, len(p.headers))}
	for i, h := range p.headers {
		if h == "" {
			continue
		}
		if i < len(record) {
			row.Values[h] = strings.TrimSpace(record[i])
		} else {
			row.Values[h] = ""
		}
	}
	return row, nil
}

// ReadAll returns every non-blank row. Malformed rows are collected into errs
// instead of stopping the read.
func (p *Parser) ReadAll(errs *ErrorCollection) ([]*Row, error) {
	var rows []*Row
	for {
		row, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var rowErr RowError
		if errors.As(err, &rowErr) {
			errs.Add(rowErr)
			continue
		}
		if err != nil {
			return nil, err
		}
		if row.IsEmpty() {
			continue
		}
		if p.maxRows > 0 && len(rows) >= p.maxRows {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRows, p.maxRows)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 && !errs.HasErrors() {
		return nil, ErrNoDataRows
	}
	return rows, nil
}

func trimPartialRune(b []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		if utf8.Valid(b) {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}

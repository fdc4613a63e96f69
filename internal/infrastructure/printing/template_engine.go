package printing

import (
	"bytes"
	"html/template"
	"maps"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplateEngine renders html/template pages with the formatting helpers
// printed documents use.
type TemplateEngine struct {
	funcMap template.FuncMap
}

// TemplateEngineOption configures the template engine
type TemplateEngineOption func(*TemplateEngine)

// WithFuncs adds or overrides template functions
func WithFuncs(funcs template.FuncMap) TemplateEngineOption {
	return func(e *TemplateEngine) {
		maps.Copy(e.funcMap, funcs)
	}
}

// NewTemplateEngine creates a new template engine
func NewTemplateEngine(opts ...TemplateEngineOption) *TemplateEngine {
	e := &TemplateEngine{
		funcMap: template.FuncMap{
			"formatMoney":   formatMoney,
			"formatAmount":  formatAmount,
			"formatDecimal": formatDecimal,
			"formatDate":    formatDate,
			"title":         titleCase,
			"upper":         strings.ToUpper,
			"inc":           func(i int) int { return i + 1 },
			"notEmpty":      func(s string) bool { return strings.TrimSpace(s) != "" },
			"now":           time.Now,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse compiles a named template with the engine's functions
func (e *TemplateEngine) Parse(name, content string) (*template.Template, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewRenderError(ErrCodeInvalidHTML, "template content is empty", nil)
	}
	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(content)
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "failed to parse template", err)
	}
	return tmpl, nil
}

// RenderString parses content and executes it with data
func (e *TemplateEngine) RenderString(name, content string, data any) (string, error) {
	tmpl, err := e.Parse(name, content)
	if err != nil {
		return "", err
	}
	return execute(tmpl, data)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}
	return buf.String(), nil
}

// formatMoney formats an amount in rupees with Indian digit grouping.
// Example: 1234567.891 -> "₹12,34,567.89"
func formatMoney(d decimal.Decimal) string {
	return "₹" + formatAmount(d)
}

// formatAmount rounds to 2 dp and groups the integer part as lakh/crore.
// Example: 1234567.891 -> "12,34,567.89"
func formatAmount(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, decPart, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + groupIndian(intPart) + "." + decPart
}

// groupIndian inserts separators after the last three digits and every two
// digits before them.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// formatDecimal formats a quantity or rate without trailing zeros
func formatDecimal(d decimal.Decimal) string {
	return d.String()
}

// formatDate renders a YYYY-MM-DD date as "02 Jan 2006"; other input is returned as is
func formatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02 Jan 2006")
}

// titleCase converts string to title case using proper Unicode handling
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}

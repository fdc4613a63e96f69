package csvimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser_Headers(t *testing.T) {
	p, err := NewParser(strings.NewReader("\xEF\xBB\xBFParty Code, Party Name ,email\nC-1,Acme,a@x.io\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Party Code", "Party Name", "email"}, p.Headers())
}

func TestNewParser_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyFile},
		{"whitespace only", "  \n\n", ErrEmptyFile},
		{"bom only", "\xEF\xBB\xBF", ErrEmptyFile},
		{"not utf8", "code,name\n\xff\xfe,bad\n", ErrInvalidEncoding},
		{"blank header", ",,\nA,B,C\n", ErrMissingHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParser_ReadAll(t *testing.T) {
	input := "code,name,city\n" +
		"A1,Acme,Pune\n" +
		",,\n" +
		"B2,Bolt\n" +
		"C3,\"Crane, Ltd\",Nashik\n"

	p, err := NewParser(strings.NewReader(input))
	require.NoError(t, err)

	errs := NewErrorCollection(0)
	rows, err := p.ReadAll(errs)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.False(t, errs.HasErrors())

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Acme", rows[0].Values["name"])

	// short rows pad with blanks
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "", rows[1].Values["city"])

	assert.Equal(t, "Crane, Ltd", rows[2].Values["name"])
}

func TestParser_ReadAll_Semicolon(t *testing.T) {
	p, err := NewParser(strings.NewReader("code;name\nA1;Acme\n"), WithDelimiter(';'))
	require.NoError(t, err)

	rows, err := p.ReadAll(NewErrorCollection(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A1", rows[0].Values["code"])
}

func TestParser_ReadAll_NoDataRows(t *testing.T) {
	p, err := NewParser(strings.NewReader("code,name\n,\n"))
	require.NoError(t, err)

	_, err = p.ReadAll(NewErrorCollection(0))
	assert.ErrorIs(t, err, ErrNoDataRows)
}

func TestParser_ReadAll_TooManyRows(t *testing.T) {
	p, err := NewParser(strings.NewReader("code\nA\nB\nC\n"), WithMaxRows(2))
	require.NoError(t, err)

	_, err = p.ReadAll(NewErrorCollection(0))
	assert.ErrorIs(t, err, ErrTooManyRows)
}

func TestRow_IsEmpty(t *testing.T) {
	assert.True(t, (&Row{Values: map[string]string{"a": "", "b": ""}}).IsEmpty())
	assert.False(t, (&Row{Values: map[string]string{"a": "", "b": "x"}}).IsEmpty())
}

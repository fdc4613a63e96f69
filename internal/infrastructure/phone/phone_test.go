package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_E164(t *testing.T) {
	f := NewFormatter("")

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"9876543210", "+919876543210", true},
		{" 98765 43210 ", "+919876543210", true},
		{"+91 98765 43210", "+919876543210", true},
		{"12345", "", false},
		{"not a number", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := f.E164(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_Display(t *testing.T) {
	f := NewFormatter("in")
	assert.Equal(t, "+919876543210", f.Display("9876543210"))
	assert.Equal(t, "ext. 42", f.Display("ext. 42"))
}

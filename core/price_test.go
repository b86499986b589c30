package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"integer", "3", "3.00"},
		{"decimal", "5.5", "5.50"},
		{"already formatted", "12.34", "12.34"},
		{"extra precision rounds", "9.999", "10.00"},
		{"whitespace trimmed", " 7.1 ", "7.10"},
		{"empty", "", "0.00"},
		{"zero", "0", "0.00"},
		{"canonical zero", "0.00", "0.00"},
		{"non-numeric", "gratis", "0.00"},
		{"nan literal", "NaN", "0.00"},
		{"lowercase nan", "nan", "0.00"},
		{"infinity", "Inf", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.raw))
		})
	}
}

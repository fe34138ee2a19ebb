package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0.00"},
		{"pads digits", 7, 2, "7.00"},
		{"rounds half up", 12.345, 2, "12.35"},
		{"rounds just above half", 1.005000001, 2, "1.01"},
		{"negative", -2.5, 2, "-2.50"},
		{"no digits", 12.6, 0, "13"},
		{"four digits", 0.12345, 4, "0.1235"},
		{"positive infinity", math.Inf(1), 2, "0.00"},
		{"not a number", math.NaN(), 2, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWithPrecision(tt.amount, tt.precision))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.50", FormatAmount(1234.5))
}

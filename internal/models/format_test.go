package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "18", FormatNumber(18.0))
	assert.Equal(t, "15.2", FormatNumber(15.2))
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		v      float64
		digits int
		want   string
	}{
		{0.25, 1, "0.3"},
		{0.125, 2, "0.13"},
		{0.35, 1, "0.3"},
		{1.005, 2, "1.00"},
		{2.5, 0, "3"},
		{12.34, 1, "12.3"},
		{0.05, 2, "0.05"},
		{0, 2, "0.00"},
		{-0.25, 1, "-0.3"},
		{-1.2, 1, "-1.2"},
		{0.004, 2, "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToFixed(tt.v, tt.digits), "%v to %d digits", tt.v, tt.digits)
	}
}

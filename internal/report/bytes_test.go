package report

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00B"},
		{1, "1.00B"},
		{1023, "1023.00B"},
		{1024, "1.00KB"},
		{1536, "1.50KB"},
		{1253656, "1.20MB"},
		{1253656678, "1.17GB"},
		{1 << 40, "1.00TB"},
		{1 << 50, "1.00PB"},
		{1 << 60, "1024.00PB"},
		{1 << 70, "1048576.00PB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in), "FormatBytes(%v)", tt.in)
	}
}

func TestFormatUint(t *testing.T) {
	assert.Equal(t, "16384.00PB", FormatUint(math.MaxUint64))
	assert.Equal(t, "2.00KB", FormatUint(2048))
}

func TestFormatBytesTwoDecimals(t *testing.T) {
	re := regexp.MustCompile(`^\d+\.\d{2}[KMGTP]?B$`)
	for _, v := range []float64{0, 0.5, 7, 999.999, 1000, 1023.996, 4096, 123456789, 9.87e15, 3.3e20} {
		assert.Regexp(t, re, FormatBytes(v), "FormatBytes(%v)", v)
	}
}

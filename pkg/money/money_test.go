package money

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"item total", 550, "$550.00"},
		{"zero", 0, "$0.00"},
		{"cents", 42.5, "$42.50"},
		{"thousands", 1234.5, "$1,234.50"},
		{"millions", 1234567.891, "$1,234,567.89"},
		{"negative", -12, "-$12.00"},
		{"tiny negative", -0.001, "$0.00"},
		{"not a number", math.NaN(), "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expect {
				t.Errorf("Format(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatter_Locale(t *testing.T) {
	f := Formatter{Tag: language.German, Symbol: "€"}
	if got := f.Format(1234.5); got != "€1.234,50" {
		t.Fatalf("expected German grouping, got %q", got)
	}
}

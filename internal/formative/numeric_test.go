package formative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/woophysics/lessons/internal/formative"
)

func TestNumericMatch(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target float64
		tol    float64
		want   bool
	}{
		{name: "exact", text: "656.5", target: 656.5, tol: 0.5, want: true},
		{name: "upper edge", text: "657", target: 656.5, tol: 0.5, want: true},
		{name: "lower edge", text: "656", target: 656.5, tol: 0.5, want: true},
		{name: "just outside", text: "657.01", target: 656.5, tol: 0.5, want: false},
		{name: "comma decimal", text: "656,3", target: 656.5, tol: 0.5, want: true},
		{name: "surrounding spaces", text: "  434.2 ", target: 434.0, tol: 1.0, want: true},
		{name: "negative", text: "-2.85", target: -2.856, tol: 0.05, want: true},
		{name: "exponent", text: "4.34e2", target: 434.0, tol: 1.0, want: true},
		{name: "float edge above", text: "2.906", target: 2.856, tol: 0.05, want: false},
		{name: "float edge below", text: "2.806", target: 2.856, tol: 0.05, want: true},
		{name: "hex float", text: "0x290.8p0", target: 656.5, tol: 0.5, want: false},
		{name: "signed hex", text: "-0X10", target: -16, tol: 1, want: false},
		{name: "empty", text: "", target: 0, tol: 1, want: false},
		{name: "blank", text: "   ", target: 0, tol: 1, want: false},
		{name: "words", text: "abc", target: 0, tol: 1, want: false},
		{name: "with unit", text: "656.5 nm", target: 656.5, tol: 0.5, want: false},
		{name: "two separators", text: "6,5,6", target: 6.5, tol: 1, want: false},
		{name: "infinity", text: "Inf", target: 0, tol: 1e308, want: false},
		{name: "nan", text: "NaN", target: 0, tol: 1e308, want: false},
		{name: "overflow", text: "1e999", target: 0, tol: 1e308, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formative.NumericMatch(tc.text, tc.target, tc.tol))
		})
	}
}

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "arredonda para cima", input: 10.006, expected: 10.01},
		{name: "arredonda para baixo", input: 3.14159, expected: 3.14},
		{name: "negativo", input: -25.556, expected: -25.56},
		{name: "negativo muito pequeno vira zero", input: -0.001, expected: 0},
		{name: "NaN vira zero", input: math.NaN(), expected: 0},
		{name: "infinito vira zero", input: math.Inf(1), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestFormatTwoDecimals(t *testing.T) {
	assert.Equal(t, "150.00", FormatTwoDecimals(150))
	assert.Equal(t, "2.50", FormatTwoDecimals(2.5))
	assert.Equal(t, "0.00", FormatTwoDecimals(-0.0001))
	assert.Equal(t, "-12.35", FormatTwoDecimals(-12.346))
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "float", input: 12.5, expected: 12.5},
		{name: "int", input: 7, expected: 7},
		{name: "string numérica", input: "1000.25", expected: 1000.25},
		{name: "string vazia", input: "", expected: 0},
		{name: "string inválida", input: "abc", expected: 0},
		{name: "nil", input: nil, expected: 0},
		{name: "NaN", input: math.NaN(), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToFloat(tt.input))
		})
	}
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 12, ToInt("12.7"))
	assert.Equal(t, 50, ToInt(50))
	assert.Equal(t, 0, ToInt("dez"))
	assert.Equal(t, 0, ToInt(nil))
	assert.Equal(t, 2, ToInt("2.9"))
}

func TestToInt_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "acima de int32", input: 99999999999999999999.0, want: 0},
		{name: "string enorme", input: "99999999999999999999", want: 0},
		{name: "negativo", input: -5, want: 0},
		{name: "limite superior", input: math.MaxInt32, want: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.input))
		})
	}
}

package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAverage(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		expected float64
	}{
		{name: "ignora zeros", series: []float64{0, 0, 10, 0, 20}, expected: 15},
		{name: "extremos preenchidos", series: []float64{100, 0, 0, 200}, expected: 150},
		{name: "somente zeros", series: []float64{0, 0, 0}, expected: 0},
		{name: "série vazia", series: []float64{}, expected: 0},
		{name: "série nula", series: nil, expected: 0},
		{name: "valores negativos contam", series: []float64{-10, 0, 30}, expected: 10},
		{name: "não finitos são ignorados", series: []float64{math.NaN(), 4, math.Inf(-1), 8}, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeAverage(tt.series))
		})
	}
}

func TestAboveBaseline(t *testing.T) {
	assert.True(t, AboveBaseline(10, 5))
	assert.True(t, AboveBaseline(5, 5))
	assert.False(t, AboveBaseline(4.99, 5))
	assert.True(t, AboveBaseline(0, 0))
}

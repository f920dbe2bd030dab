package metrics

import "math"

// ComputeAverage é a média dos valores diferentes de zero da série.
// Zero significa "sem dado no período" e não entra na média; sem amostras válidas o resultado é 0.
func ComputeAverage(series []float64) float64 {
	var (
		sum   float64
		count int
	)

	for _, value := range series {
		if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		sum += value
		count++
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// AboveBaseline indica se o valor atinge a média (empate conta como acima)
func AboveBaseline(value, average float64) bool {
	return value >= average
}

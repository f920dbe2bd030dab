package utils

import (
	"math"
	"strconv"

	"github.com/spf13/cast"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	rounded := math.Round(f*100) / 100
	if rounded == 0 {
		// evita "-0.00"
		return 0
	}

	return rounded
}

// FormatTwoDecimals formata o valor com duas casas decimais, sem separador de milhar
func FormatTwoDecimals(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64)
}

// ToFloat converte qualquer valor (número, string, nil) para float64.
// Valores ausentes, inválidos ou não finitos viram 0.
func ToFloat(v any) float64 {
	f := cast.ToFloat64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// ToInt converte para contador truncando a parte decimal ("12.7" -> 12).
// Valores negativos ou acima de math.MaxInt32 viram 0.
func ToInt(v any) int {
	f := math.Trunc(ToFloat(v))
	if f < 0 || f > math.MaxInt32 {
		return 0
	}

	return int(f)
}

// Finite retorna 0 para NaN e infinitos
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

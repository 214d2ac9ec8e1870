package utils

import (
	"math"
	"strconv"
	"strings"
)

// Divisores de unidade menor por plataforma. O TikTok reporta valores já na
// unidade principal (convenção não confirmada na documentação), então usa 1.
const (
	CentsPerUnit  float64 = 100
	MicrosPerUnit float64 = 1_000_000
	NoMinorUnit   float64 = 1
)

// NormalizeMinorUnits converte um valor textual em unidades menores (centavos,
// micros) para a unidade monetária principal. Valores ausentes, não numéricos
// ou negativos resultam em nil, nunca em zero implícito.
func NormalizeMinorUnits(raw string, divisor float64) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return NormalizeMinorInt(value, divisor)
}

// NormalizeMinorInt converte um valor numérico em unidades menores para a
// unidade principal. Negativos resultam em nil.
func NormalizeMinorInt(value float64, divisor float64) *float64 {
	if value < 0 || divisor <= 0 {
		return nil
	}

	normalized := value / divisor
	return &normalized
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		divisor  float64
		expected *float64
	}{
		{
			name:     "Centavos do Facebook para reais",
			raw:      "15000",
			divisor:  CentsPerUnit,
			expected: floatPtr(150.0),
		},
		{
			name:     "Micros do Google para unidade principal",
			raw:      "2500000",
			divisor:  MicrosPerUnit,
			expected: floatPtr(2.5),
		},
		{
			name:     "TikTok sem conversão",
			raw:      "42.5",
			divisor:  NoMinorUnit,
			expected: floatPtr(42.5),
		},
		{
			name:     "Valor vazio vira nil",
			raw:      "",
			divisor:  CentsPerUnit,
			expected: nil,
		},
		{
			name:     "Valor não numérico vira nil",
			raw:      "abc",
			divisor:  CentsPerUnit,
			expected: nil,
		},
		{
			name:     "Valor negativo vira nil",
			raw:      "-100",
			divisor:  CentsPerUnit,
			expected: nil,
		},
		{
			name:     "Zero é um valor válido",
			raw:      "0",
			divisor:  CentsPerUnit,
			expected: floatPtr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMinorUnits(tt.raw, tt.divisor)

			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 1e-9)
		})
	}
}

func TestNormalizeMinorInt(t *testing.T) {
	got := NormalizeMinorInt(2500000, MicrosPerUnit)
	require.NotNil(t, got)
	assert.InDelta(t, 2.5, *got, 1e-9)

	assert.Nil(t, NormalizeMinorInt(-1, MicrosPerUnit))
	assert.Nil(t, NormalizeMinorInt(100, 0))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func floatPtr(f float64) *float64 {
	return &f
}

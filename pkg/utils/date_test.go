package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		got := ParseTimestamp("2024-03-01T10:30:00Z")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), *got)
	})

	t.Run("Formato do Facebook com offset", func(t *testing.T) {
		got := ParseTimestamp("2024-03-01T10:30:00-0300")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC), *got)
	})

	t.Run("Formato do TikTok", func(t *testing.T) {
		got := ParseTimestamp("2024-03-01 10:30:00")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), *got)
	})

	t.Run("Entrada vazia vira nil, nunca época zero", func(t *testing.T) {
		assert.Nil(t, ParseTimestamp(""))
		assert.Nil(t, ParseTimestamp("   "))
	})

	t.Run("Entrada inválida vira nil", func(t *testing.T) {
		assert.Nil(t, ParseTimestamp("not-a-date"))
		assert.Nil(t, ParseTimestamp("03/01/2024"))
	})
}

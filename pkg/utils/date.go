package utils

import (
	"strings"
	"time"
)

// Layouts aceitos pelas APIs das plataformas, em ordem de tentativa.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700", // Facebook Graph
	"2006-01-02 15:04:05",      // TikTok Business
	"2006-01-02",
}

// ParseTimestamp converte um timestamp textual de plataforma para UTC.
// Entrada ausente ou não reconhecida resulta em nil, nunca em época zero.
func ParseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		if parsed.IsZero() {
			return nil
		}

		utc := parsed.UTC()
		return &utc
	}

	return nil
}

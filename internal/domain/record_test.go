package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"texto":   "Recife",
		"numero":  float64(42),
		"ligado":  true,
		"nulo":    nil,
		"quando":  "2025-05-10T20:00:00",
		"somente": "2025-05-10",
	}

	assert.Equal(t, "Recife", rec.String("texto"))
	assert.Equal(t, "42", rec.String("numero"))
	assert.Equal(t, "", rec.String("nulo"))
	assert.Equal(t, "", rec.String("ausente"))

	assert.Equal(t, float64(42), rec.Float("numero"))
	assert.Equal(t, float64(0), rec.Float("texto"))

	assert.True(t, rec.Bool("ligado"))
	assert.False(t, rec.Bool("ausente"))

	assert.True(t, rec.IsNull("nulo"))
	assert.True(t, rec.IsNull("ausente"))
	assert.False(t, rec.IsNull("texto"))
}

func TestRecordTimeLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "RFC3339", value: "2025-05-10T20:00:00Z"},
		{name: "ISO sem fuso", value: "2025-05-10T20:00:00"},
		{name: "espaco como separador", value: "2025-05-10 20:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{"quando": tt.value}
			parsed, ok := rec.Time("quando")
			require.True(t, ok)
			assert.Equal(t, time.Date(2025, 5, 10, 20, 0, 0, 0, parsed.Location()), parsed)
		})
	}

	_, ok := Record{"quando": "nao é data"}.Time("quando")
	assert.False(t, ok)
}

func TestRecordDateProjectsCalendarDay(t *testing.T) {
	rec := Record{
		"timestamp": "2025-05-10T23:59:59",
		"dia":       "10/05/2025",
	}

	date, ok := rec.Date("timestamp")
	require.True(t, ok)
	assert.Equal(t, "2025-05-10", date)

	// Formato brasileiro também projeta para YYYY-MM-DD
	date, ok = rec.Date("dia")
	require.True(t, ok)
	assert.Equal(t, "2025-05-10", date)
}

package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-onda/dashboard-api/internal/domain"
)

func TestProjectPlanningRow(t *testing.T) {
	rec := domain.Record{
		"data":                 "2025-05-01",
		"evento":               "Festival de Inverno",
		"cidade_do_evento":     "Recife",
		"publico_estimado":     "1.200",
		"pct_grupo_onda":       "60%",
		"despesa_total":        "R$ 10.500,00",
		"ingressos_emitidos":   float64(1000),
		"coluna_desconhecida":  "descartada",
		"resultado_grupo_onda": nil,
	}

	out := projectPlanningRow(rec)

	assert.Equal(t, "2025-05-01", out["Data"])
	assert.Equal(t, "Festival de Inverno", out["Evento"])
	assert.Equal(t, "Recife", out["Cidade do Evento"])

	// Texto formatado vira número na projeção
	assert.InDelta(t, 1200, out["Público Estimado"].(float64), 0.001)
	assert.InDelta(t, 60, out["% Grupo Onda"].(float64), 0.001)
	assert.InDelta(t, 10500, out["Despesa Total"].(float64), 0.001)

	// Valores já numéricos passam direto
	assert.Equal(t, float64(1000), out["Ingressos Emitidos"])

	// Nulos mapeados são preservados como nulos
	value, ok := out["Resultado Grupo Onda"]
	assert.True(t, ok)
	assert.Nil(t, value)

	// Colunas fora da tabela de projeção não aparecem
	_, ok = out["coluna_desconhecida"]
	assert.False(t, ok)
	_, ok = out["publico_estimado"]
	assert.False(t, ok)
}

func TestProjectPlanningRowMissingColumns(t *testing.T) {
	out := projectPlanningRow(domain.Record{"evento": "Virada"})

	require.Len(t, out, 1)
	assert.Equal(t, "Virada", out["Evento"])
}

func TestProjectPlanningRows(t *testing.T) {
	out := projectPlanningRows(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	out = projectPlanningRows([]domain.Record{
		{"evento": "A"},
		{"evento": "B"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0]["Evento"])
	assert.Equal(t, "B", out[1]["Evento"])
}

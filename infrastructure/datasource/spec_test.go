package datasource

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-onda/dashboard-api/internal/domain"
)

func TestSpecKnownDatasets(t *testing.T) {
	for _, dataset := range Datasets() {
		spec, err := Spec(dataset)
		require.NoError(t, err)
		assert.Equal(t, dataset, spec.Dataset)
		assert.NotEmpty(t, spec.Table)
	}

	_, err := Spec("nao_existe")
	assert.Error(t, err)
}

func TestBuildSelectBar(t *testing.T) {
	spec, err := Spec(DatasetBar)
	require.NoError(t, err)

	opts := QueryOptions{
		Filters: domain.FilterSet{
			{Name: "evento_tipo", Value: "Show"},
			{Name: "event_date", Value: "2025-05-10"},
		},
	}

	query, args, err := BuildSelect(spec, opts, squirrel.Dollar)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT * FROM bar_zig WHERE isRefunded = $1 AND _evento_tipo = $2 "+
			"AND CAST(eventDate AS DATE) = CAST($3 AS DATE) ORDER BY transactionDate DESC",
		query,
	)
	assert.Equal(t, []any{false, "Show", "2025-05-10"}, args)
}

func TestBuildSelectPagination(t *testing.T) {
	spec, err := Spec(DatasetVendas)
	require.NoError(t, err)

	opts := QueryOptions{
		Filters: domain.FilterSet{{Name: "cidade", Value: "Recife"}},
		Limit:   5,
		Offset:  10,
	}

	query, args, err := BuildSelect(spec, opts, squirrel.Question)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT * FROM vendas_ingresso WHERE cidade_evento = ? "+
			"ORDER BY data_venda DESC LIMIT 5 OFFSET 10",
		query,
	)
	assert.Equal(t, []any{"Recife"}, args)
}

func TestBuildSelectBindsFilterValues(t *testing.T) {
	// Valores de filtro nunca entram no texto da query
	spec, err := Spec(DatasetVendas)
	require.NoError(t, err)

	hostile := "Recife'; DROP TABLE vendas_ingresso; --"
	opts := QueryOptions{
		Filters: domain.FilterSet{{Name: "cidade", Value: hostile}},
	}

	query, args, err := BuildSelect(spec, opts, squirrel.Dollar)
	require.NoError(t, err)

	assert.NotContains(t, query, "DROP TABLE")
	assert.Equal(t, []any{hostile}, args)
}

func TestBuildSelectIgnoresUnknownFilters(t *testing.T) {
	spec, err := Spec(DatasetBar)
	require.NoError(t, err)

	opts := QueryOptions{
		Filters: domain.FilterSet{{Name: "campo_inventado", Value: "x"}},
	}

	query, args, err := BuildSelect(spec, opts, squirrel.Dollar)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM bar_zig WHERE isRefunded = $1 ORDER BY transactionDate DESC", query)
	assert.Equal(t, []any{false}, args)
}

func TestBuildSelectCustomOrder(t *testing.T) {
	spec, err := Spec(DatasetPlanejamento)
	require.NoError(t, err)

	query, _, err := BuildSelect(spec, QueryOptions{OrderBy: "data", Asc: true}, squirrel.Question)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM planejamento ORDER BY data ASC", query)
}

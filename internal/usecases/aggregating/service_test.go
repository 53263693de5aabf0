package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/infrastructure/datasource/mocks"
	"github.com/grupo-onda/dashboard-api/internal/domain"
	"github.com/grupo-onda/dashboard-api/pkg/cache"
)

func newTestService(t *testing.T) (*Service, *mocks.MockDataSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDataSource(ctrl)
	service := NewService(source, nil, cache.New(5*time.Minute)).(*Service)
	return service, source
}

// Duas transações não estornadas: 1000*2 e 500*1-100, em centavos
func barFixture() []domain.Record {
	return []domain.Record{
		{
			"transactionId":   "t1",
			"transactionDate": "2025-05-01T21:00:00",
			"eventName":       "Festival de Inverno",
			"eventDate":       "2025-05-01",
			"productName":     "Cerveja",
			"productCategory": "Bebidas",
			"count":           float64(2),
			"unitValue":       float64(1000),
			"discountValue":   float64(0),
		},
		{
			"transactionId":   "t2",
			"transactionDate": "2025-05-02T22:00:00",
			"eventName":       "Festival de Inverno",
			"eventDate":       "2025-05-01",
			"productName":     "Drink",
			"productCategory": "Bebidas",
			"count":           float64(1),
			"unitValue":       float64(500),
			"discountValue":   float64(100),
		},
	}
}

func TestBarMetrics(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil)

	metrics, err := service.BarMetrics(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.TotalTransactions)
	assert.InDelta(t, 24.00, metrics.TotalRevenue, 0.001)
	assert.InDelta(t, 3, metrics.TotalProductsSold, 0.001)
	assert.InDelta(t, 12.00, metrics.AvgTicket, 0.001)
}

func TestBarMetricsEmptyDataset(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return([]domain.Record{}, nil)

	metrics, err := service.BarMetrics(context.Background(), nil)
	require.NoError(t, err)

	// Dataset vazio produz objeto zerado, sem divisão por zero
	assert.Equal(t, domain.BarMetrics{}, metrics)
}

func TestBarMetricsUsesCache(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil).
		Times(1)

	_, err := service.BarMetrics(context.Background(), nil)
	require.NoError(t, err)

	// Segunda chamada responde do cache, sem nova leitura da fonte
	metrics, err := service.BarMetrics(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.TotalTransactions)
}

func TestBarMetricsCacheKeyedByFilters(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil).
		Times(2)

	_, err := service.BarMetrics(context.Background(), nil)
	require.NoError(t, err)

	filters := domain.FilterSet{{Name: "event_name", Value: "Festival de Inverno"}}
	_, err = service.BarMetrics(context.Background(), filters)
	require.NoError(t, err)
}

func TestBarRowsLimitInCacheKey(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, datasource.QueryOptions{Limit: 20}).
		Return(barFixture(), nil)
	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, datasource.QueryOptions{}).
		Return(barFixture(), nil)

	_, err := service.BarRows(context.Background(), nil, 20, 0)
	require.NoError(t, err)

	// limit=0 (sem limite) tem chave própria, não reusa a resposta limitada
	_, err = service.BarRows(context.Background(), nil, 0, 0)
	require.NoError(t, err)
}

func TestReloadInvalidatesCache(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil).
		Times(2)

	_, err := service.BarMetrics(context.Background(), nil)
	require.NoError(t, err)

	result, err := service.Reload(context.Background(), datasource.DatasetBar)
	require.NoError(t, err)
	assert.Equal(t, "cache_cleared", result.Status)
	assert.Equal(t, datasource.DatasetBar, result.Dataset)
	assert.Equal(t, 1, result.EntriesCleared)

	// Depois do reload a métrica é recomputada na fonte
	_, err = service.BarMetrics(context.Background(), nil)
	require.NoError(t, err)
}

func TestReloadUnknownDataset(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Reload(context.Background(), "nao_existe")
	assert.Error(t, err)
}

func TestBarSalesByDate(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil)

	rows, err := service.BarSalesByDate(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Série ascendente por dia de calendário
	assert.Equal(t, "2025-05-01", rows[0].Date)
	assert.InDelta(t, 20.00, rows[0].Revenue, 0.001)
	assert.InDelta(t, 2, rows[0].Count, 0.001)
	assert.Equal(t, "2025-05-02", rows[1].Date)
	assert.InDelta(t, 4.00, rows[1].Revenue, 0.001)
}

func TestBarTopProductsLimit(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil)

	rows, err := service.BarTopProducts(context.Background(), nil, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Cerveja", rows[0].Name)
	assert.InDelta(t, 20.00, rows[0].Revenue, 0.001)
}

func TestBarByCategoryDefaultBucket(t *testing.T) {
	service, source := newTestService(t)

	rows := barFixture()
	rows[1]["productCategory"] = nil

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(rows, nil)

	result, err := service.BarByCategory(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Bebidas", result[0].Name)
	assert.Equal(t, "Sem categoria", result[1].Name)
}

func TestBarByEvent(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil)

	rows, err := service.BarByEvent(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Festival de Inverno", rows[0].Event)
	assert.Equal(t, "2025-05-01", rows[0].EventDate)
	assert.InDelta(t, 24.00, rows[0].TotalRevenue, 0.001)
	assert.InDelta(t, 3, rows[0].TotalQuantity, 0.001)
	assert.Equal(t, 2, rows[0].TransactionCount)
}

func TestBarRecentTransactionsScaling(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil)

	rows, err := service.BarRecentTransactions(context.Background(), nil, 20)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "t1", first.ID)
	assert.Equal(t, "2025-05-01T21:00:00", first.TransactionDate)
	assert.InDelta(t, 10.00, first.UnitValue, 0.001)
	assert.InDelta(t, 20.00, first.Total, 0.001)
}

func TestUpcomingEvents(t *testing.T) {
	service, source := newTestService(t)

	future := time.Now().AddDate(0, 0, 7).Format(time.DateOnly)
	past := time.Now().AddDate(0, 0, -7).Format(time.DateOnly)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return([]domain.Record{
			{"eventName": "Virada", "eventDate": future},
			{"eventName": "Virada", "eventDate": future}, // duplicata
			{"eventName": "Passado", "eventDate": past},
			{"eventName": "", "eventDate": future}, // sem nome
		}, nil)

	events, err := service.UpcomingEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Virada", events[0].EventName)
	assert.Equal(t, future, events[0].EventDate)
}

func vendasFixture() []domain.Record {
	return []domain.Record{
		{
			"id":            "v1",
			"evento":        "Festival de Inverno",
			"tipo":          "MEIA PISTA",
			"ticketeira":    "Sympla",
			"cidade_evento": "Recife",
			"quantidade":    float64(2),
			"valor_liquido": float64(100),
			"status":        "aprovado",
		},
		{
			"id":            "v2",
			"evento":        "Festival de Inverno",
			"tipo":          "PISTA 2º LOTE",
			"ticketeira":    "Sympla",
			"cidade_evento": "Recife",
			"quantidade":    float64(1),
			"valor_liquido": float64(60),
			"status":        "aprovado",
		},
		{
			"id":            "v3",
			"evento":        "Virada",
			"tipo":          "Camarote Gold",
			"ticketeira":    "",
			"cidade_evento": "Olinda",
			"quantidade":    float64(1),
			"valor_liquido": float64(200),
			"status":        "aprovado",
		},
	}
}

func TestTicketMetrics(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetVendas, gomock.Any()).
		Return(vendasFixture(), nil)

	metrics, err := service.TicketMetrics(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, metrics.TotalVendas)
	assert.InDelta(t, 4, metrics.TotalIngressos, 0.001)
	assert.InDelta(t, 360, metrics.TotalReceita, 0.001)
	assert.InDelta(t, 90, metrics.TicketMedio, 0.001)
}

// Colunas NUMERIC chegam dos drivers SQL como bytes do texto decimal; depois
// da normalização o valor precisa somar como 123.45, nunca como 12345.
func TestTicketMetricsFromNumericColumns(t *testing.T) {
	service, source := newTestService(t)

	rows := datasource.NormalizeRows([]map[string]any{
		{
			"evento":        []byte("Festival de Inverno"),
			"quantidade":    []byte("2"),
			"valor_liquido": []byte("123.45"),
		},
	})

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetVendas, gomock.Any()).
		Return(rows, nil)

	metrics, err := service.TicketMetrics(context.Background(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 2, metrics.TotalIngressos, 0.001)
	assert.InDelta(t, 123.45, metrics.TotalReceita, 0.001)
	assert.InDelta(t, 61.725, metrics.TicketMedio, 0.001)
}

func TestTicketByTypeRebucketsLabels(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetVendas, gomock.Any()).
		Return(vendasFixture(), nil)

	rows, err := service.TicketByType(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Camarote lidera; os dois rótulos de pista somam na mesma categoria
	assert.Equal(t, "Camarote", rows[0].Name)
	assert.InDelta(t, 200, rows[0].Value, 0.001)

	assert.Equal(t, "Pista", rows[1].Name)
	assert.InDelta(t, 160, rows[1].Value, 0.001)
	assert.InDelta(t, 3, rows[1].Quantity, 0.001)
}

func TestTicketByChannelDefaultLabel(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetVendas, gomock.Any()).
		Return(vendasFixture(), nil)

	rows, err := service.TicketByChannel(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Não especificado", rows[0].Label)
	assert.InDelta(t, 200, rows[0].Value, 0.001)
	assert.Equal(t, "Sympla", rows[1].Label)
	assert.InDelta(t, 160, rows[1].Value, 0.001)
}

func TestTicketRecentSalesUnitValue(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetVendas, gomock.Any()).
		Return(vendasFixture(), nil)

	rows, err := service.TicketRecentSales(context.Background(), nil, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "v1", rows[0].ID)
	assert.InDelta(t, 50, rows[0].ValorUnitario, 0.001)
	assert.InDelta(t, 100, rows[0].ValorLiquido, 0.001)
}

func TestTicketFilterOptionsExcludeOwnFilter(t *testing.T) {
	service, source := newTestService(t)

	spec, err := datasource.Spec(datasource.DatasetVendas)
	require.NoError(t, err)

	// A fonte aplica os filtros recebidos, como as variantes reais
	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetVendas, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts datasource.QueryOptions) ([]domain.Record, error) {
			return datasource.ApplyOptions(spec, opts, vendasFixture()), nil
		}).
		Times(5)

	filters := domain.FilterSet{{Name: "cidade", Value: "Recife"}}
	options, err := service.TicketFilterOptions(context.Background(), filters)
	require.NoError(t, err)

	// O próprio filtro de cidade não restringe as opções de cidade
	assert.Equal(t, []string{"Olinda", "Recife"}, options.Cidades)

	// Os demais campos só mostram valores co-ocorrentes com Recife
	assert.Equal(t, []string{"Festival de Inverno"}, options.Eventos)
	assert.Equal(t, []string{"Sympla"}, options.Ticketeiras)
}

func planningFixture() []domain.Record {
	return []domain.Record{
		{
			"data":                "2025-05-01",
			"base":                "PE",
			"atividade":           "Show",
			"evento":              "Festival de Inverno",
			"cidade_do_evento":    "Recife",
			"publico_estimado":    "1.200",
			"ingressos_emitidos":  "1.000",
			"ingressos_validados": "950",
			"pct_grupo_onda":      "60%",
		},
		{
			"data":                "2025-06-01",
			"base":                "PE",
			"atividade":           "Festa",
			"evento":              "Virada",
			"cidade_do_evento":    "Olinda",
			"publico_estimado":    "800",
			"ingressos_emitidos":  "700",
			"ingressos_validados": "650",
			"pct_grupo_onda":      "50%",
		},
		{
			// Rascunho sem público estimado fica fora das estatísticas
			"data":             "2025-07-01",
			"base":             "BA",
			"atividade":        "Show",
			"evento":           "Ensaio",
			"cidade_do_evento": "Salvador",
			"publico_estimado": "",
		},
	}
}

func TestPlanningStats(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetPlanejamento, gomock.Any()).
		Return(planningFixture(), nil)

	stats, err := service.PlanningStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalEventos)
	assert.InDelta(t, 2000, stats.PublicoTotalEstimado, 0.001)
	assert.InDelta(t, 1600, stats.PublicoTotalValidado, 0.001)
	assert.InDelta(t, 1700, stats.IngressosEmitidosTotal, 0.001)
	assert.Equal(t, 2, stats.TotalCidades)
	assert.Equal(t, 1, stats.TotalBases)
}

func TestPlanningRowsProjection(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetPlanejamento, gomock.Any()).
		Return(planningFixture(), nil)

	rows, err := service.PlanningRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "Festival de Inverno", first["Evento"])
	assert.Equal(t, "Recife", first["Cidade do Evento"])

	// Campos numéricos formatados viram float na projeção
	assert.InDelta(t, 1200, first["Público Estimado"].(float64), 0.001)
	assert.InDelta(t, 60, first["% Grupo Onda"].(float64), 0.001)

	// Somente campos mapeados aparecem
	_, hasRaw := first["publico_estimado"]
	assert.False(t, hasRaw)
}

func TestPlanningByCity(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetPlanejamento, gomock.Any()).
		Return(planningFixture(), nil)

	rows, err := service.PlanningByCity(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for _, row := range rows {
		if row.Cidade == "Recife" {
			assert.Equal(t, 1, row.TotalEventos)
			assert.InDelta(t, 1200, row.PublicoTotal, 0.001)
			assert.InDelta(t, 1000, row.IngressosEmitidos, 0.001)
		}
	}
}

func TestDashboard(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return(barFixture(), nil)
	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetVendas, gomock.Any()).
		Return(vendasFixture(), nil)
	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetPlanejamento, gomock.Any()).
		Return(planningFixture(), nil)

	summary, err := service.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Bar.TotalTransactions)
	assert.InDelta(t, 24.00, summary.Bar.TotalRevenue, 0.001)
	assert.Equal(t, 2, summary.Bar.UniqueProducts)
	assert.Equal(t, 1, summary.Bar.UniqueEvents)

	assert.Equal(t, 3, summary.Vendas.TotalSales)
	assert.InDelta(t, 360, summary.Vendas.TotalNet, 0.001)
	assert.Equal(t, 2, summary.Vendas.UniqueEvents)
	assert.Equal(t, 1, summary.Vendas.UniqueTicketeiras)

	assert.InDelta(t, 384.00, summary.Summary.TotalRevenue, 0.001)
	assert.Equal(t, 2, summary.Summary.TotalEvents)
}

func TestHealthDegraded(t *testing.T) {
	service, source := newTestService(t)

	source.EXPECT().Name().Return("csv").AnyTimes()
	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetBar, gomock.Any()).
		Return([]domain.Record{}, nil)
	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetVendas, gomock.Any()).
		Return(nil, errors.New("fonte indisponível"))
	source.EXPECT().
		Load(gomock.Any(), datasource.DatasetPlanejamento, gomock.Any()).
		Return([]domain.Record{}, nil)

	status := service.Health(context.Background())

	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "csv", status.Source)
	assert.True(t, status.Datasets[datasource.DatasetBar])
	assert.False(t, status.Datasets[datasource.DatasetVendas])
}

func TestCacheInfoWithoutReporter(t *testing.T) {
	service, _ := newTestService(t)

	info, err := service.CacheInfo(context.Background(), datasource.DatasetBar)
	require.NoError(t, err)
	assert.Equal(t, "live", info.Status)
}

func TestSheetRowsWithoutClient(t *testing.T) {
	service, _ := newTestService(t)

	rows, err := service.SheetRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

package aggregating

import (
	"context"

	"github.com/grupo-onda/dashboard-api/internal/domain"
)

// BarInsighter define a interface de agregação do dataset do bar
type BarInsighter interface {
	// BarRows retorna as linhas cruas do bar, filtradas e paginadas
	BarRows(ctx context.Context, filters domain.FilterSet, limit, offset int) ([]domain.Record, error)

	// BarMetrics retorna as métricas principais do bar
	BarMetrics(ctx context.Context, filters domain.FilterSet) (domain.BarMetrics, error)

	// BarSalesByDate retorna o faturamento por dia de calendário, ascendente
	BarSalesByDate(ctx context.Context, filters domain.FilterSet) ([]domain.SalesByDateRow, error)

	// BarTopProducts retorna o ranking de produtos por faturamento
	BarTopProducts(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.ProductSalesRow, error)

	// BarByCategory retorna o faturamento por categoria de produto
	BarByCategory(ctx context.Context, filters domain.FilterSet) ([]domain.CategorySalesRow, error)

	// BarByEvent retorna o faturamento por evento
	BarByEvent(ctx context.Context, filters domain.FilterSet) ([]domain.EventSalesRow, error)

	// BarRecentTransactions retorna as transações mais recentes
	BarRecentTransactions(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.BarTransaction, error)

	// BarFilterOptions retorna as opções de filtro válidas sob os demais filtros ativos
	BarFilterOptions(ctx context.Context, filters domain.FilterSet) (domain.BarFilterOptions, error)

	// UpcomingEvents retorna os eventos futuros, únicos por (nome, data)
	UpcomingEvents(ctx context.Context) ([]domain.UpcomingEvent, error)
}

// TicketInsighter define a interface de agregação das vendas de ingresso
type TicketInsighter interface {
	TicketRows(ctx context.Context, filters domain.FilterSet, limit, offset int) ([]domain.Record, error)
	TicketMetrics(ctx context.Context, filters domain.FilterSet) (domain.TicketSalesMetrics, error)
	TicketByEvent(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.EventRevenueRow, error)
	TicketByChannel(ctx context.Context, filters domain.FilterSet) ([]domain.ChannelSalesRow, error)

	// TicketByType reagrupa os rótulos livres de tipo de ingresso na taxonomia canônica
	TicketByType(ctx context.Context, filters domain.FilterSet) ([]domain.TicketTypeSalesRow, error)

	TicketByCity(ctx context.Context, filters domain.FilterSet) ([]domain.CitySalesRow, error)
	TicketRecentSales(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.RecentSale, error)
	TicketFilterOptions(ctx context.Context, filters domain.FilterSet) (domain.TicketFilterOptions, error)
}

// PlanningInsighter define a interface de agregação do planejamento de eventos
type PlanningInsighter interface {
	// PlanningRows retorna as linhas projetadas para o esquema de exibição
	PlanningRows(ctx context.Context) ([]domain.Record, error)

	PlanningStats(ctx context.Context) (domain.PlanningStats, error)
	PlanningByCity(ctx context.Context) ([]domain.PlanningCityRow, error)
	PlanningByActivity(ctx context.Context) ([]domain.PlanningActivityRow, error)
}

// Aggregator é a interface completa consumida pelos handlers HTTP
type Aggregator interface {
	BarInsighter
	TicketInsighter
	PlanningInsighter

	// Dashboard combina os três datasets em um único resumo
	Dashboard(ctx context.Context) (domain.DashboardSummary, error)

	// SheetRows retorna as linhas da planilha remota de acompanhamento
	SheetRows(ctx context.Context) ([]domain.Record, error)

	// Reload invalida o cache do dataset e força a recarga da fonte quando suportado
	Reload(ctx context.Context, dataset string) (domain.ReloadResult, error)

	// CacheInfo reporta o estado da tabela materializada do dataset na fonte
	CacheInfo(ctx context.Context, dataset string) (domain.SourceCacheInfo, error)

	// Health verifica a disponibilidade da fonte por dataset
	Health(ctx context.Context) domain.HealthStatus
}

// SheetFetcher é o contrato do cliente da planilha remota
type SheetFetcher interface {
	Rows(ctx context.Context) []domain.Record
	Reload(ctx context.Context) error
	CacheInfo() domain.SourceCacheInfo
}

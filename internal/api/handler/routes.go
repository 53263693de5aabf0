package handler

import (
	"net/http"

	"github.com/grupo-onda/dashboard-api/internal/api/handler/router"
	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
)

func Healthcheck(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Bar(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/bar",
			Method:  http.MethodGet,
			Handler: BarRows(service),
		},
		{
			Path:    "/api/bar/metrics",
			Method:  http.MethodGet,
			Handler: BarMetrics(service),
		},
		{
			Path:    "/api/bar/sales-by-date",
			Method:  http.MethodGet,
			Handler: BarSalesByDate(service),
		},
		{
			Path:    "/api/bar/top-products",
			Method:  http.MethodGet,
			Handler: BarTopProducts(service),
		},
		{
			Path:    "/api/bar/by-category",
			Method:  http.MethodGet,
			Handler: BarByCategory(service),
		},
		{
			Path:    "/api/bar/by-event",
			Method:  http.MethodGet,
			Handler: BarByEvent(service),
		},
		{
			Path:    "/api/bar/recent-transactions",
			Method:  http.MethodGet,
			Handler: BarRecentTransactions(service),
		},
		{
			Path:    "/api/bar/filters",
			Method:  http.MethodGet,
			Handler: BarFilterOptions(service),
		},
		{
			Path:    "/api/bar/upcoming-events",
			Method:  http.MethodGet,
			Handler: BarUpcomingEvents(service),
		},
		{
			Path:    "/api/bar/reload",
			Method:  http.MethodPost,
			Handler: BarReload(service),
		},
		{
			Path:    "/api/bar/cache-info",
			Method:  http.MethodGet,
			Handler: BarCacheInfo(service),
		},
	}
}

func Vendas(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/vendas",
			Method:  http.MethodGet,
			Handler: VendasRows(service),
		},
		{
			Path:    "/api/vendas/metrics",
			Method:  http.MethodGet,
			Handler: VendasMetrics(service),
		},
		{
			Path:    "/api/vendas/by-event",
			Method:  http.MethodGet,
			Handler: VendasByEvent(service),
		},
		{
			Path:    "/api/vendas/by-channel",
			Method:  http.MethodGet,
			Handler: VendasByChannel(service),
		},
		{
			Path:    "/api/vendas/by-type",
			Method:  http.MethodGet,
			Handler: VendasByType(service),
		},
		{
			Path:    "/api/vendas/by-city",
			Method:  http.MethodGet,
			Handler: VendasByCity(service),
		},
		{
			Path:    "/api/vendas/recent-sales",
			Method:  http.MethodGet,
			Handler: VendasRecentSales(service),
		},
		{
			Path:    "/api/vendas/filters",
			Method:  http.MethodGet,
			Handler: VendasFilterOptions(service),
		},
		{
			Path:    "/api/vendas/reload",
			Method:  http.MethodPost,
			Handler: VendasReload(service),
		},
		{
			Path:    "/api/vendas/cache-info",
			Method:  http.MethodGet,
			Handler: VendasCacheInfo(service),
		},
	}
}

func Planejamento(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/planejamento",
			Method:  http.MethodGet,
			Handler: PlanejamentoRows(service),
		},
		{
			Path:    "/api/planejamento/stats",
			Method:  http.MethodGet,
			Handler: PlanejamentoStats(service),
		},
		{
			Path:    "/api/planejamento/by-city",
			Method:  http.MethodGet,
			Handler: PlanejamentoByCity(service),
		},
		{
			Path:    "/api/planejamento/by-tipo",
			Method:  http.MethodGet,
			Handler: PlanejamentoByTipo(service),
		},
		{
			Path:    "/api/planejamento/reload",
			Method:  http.MethodPost,
			Handler: PlanejamentoReload(service),
		},
	}
}

func DashboardRoutes(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard",
			Method:  http.MethodGet,
			Handler: Dashboard(service),
		},
		{
			Path:    "/api/sheets",
			Method:  http.MethodGet,
			Handler: Sheets(service),
		},
	}
}

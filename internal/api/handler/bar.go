package handler

import (
	"net/http"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
)

// Parâmetros de filtro aceitos pelos endpoints do bar
var barFilterParams = []string{"evento_tipo", "event_name", "event_date"}

func BarRows(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromQuery(r, barFilterParams...)
		limit := queryInt(r, "limit", 100000)
		offset := queryInt(r, "offset", 0)

		rows, err := service.BarRows(r.Context(), filters, limit, offset)
		if err != nil {
			writeServiceError(w, r, "bar_rows", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func BarMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.BarMetrics(r.Context(), filtersFromQuery(r, barFilterParams...))
		if err != nil {
			writeServiceError(w, r, "bar_metrics", err)
			return
		}
		writeJSON(w, r, metrics)
	})
}

func BarSalesByDate(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.BarSalesByDate(r.Context(), filtersFromQuery(r, barFilterParams...))
		if err != nil {
			writeServiceError(w, r, "bar_sales_by_date", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func BarTopProducts(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromQuery(r, barFilterParams...)
		limit := queryInt(r, "limit", 5)

		rows, err := service.BarTopProducts(r.Context(), filters, limit)
		if err != nil {
			writeServiceError(w, r, "bar_top_products", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func BarByCategory(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.BarByCategory(r.Context(), filtersFromQuery(r, barFilterParams...))
		if err != nil {
			writeServiceError(w, r, "bar_by_category", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func BarByEvent(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.BarByEvent(r.Context(), filtersFromQuery(r, barFilterParams...))
		if err != nil {
			writeServiceError(w, r, "bar_by_event", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func BarRecentTransactions(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromQuery(r, barFilterParams...)
		limit := queryInt(r, "limit", 20)

		rows, err := service.BarRecentTransactions(r.Context(), filters, limit)
		if err != nil {
			writeServiceError(w, r, "bar_recent_transactions", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func BarFilterOptions(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.BarFilterOptions(r.Context(), filtersFromQuery(r, barFilterParams...))
		if err != nil {
			writeServiceError(w, r, "bar_filters", err)
			return
		}
		writeJSON(w, r, options)
	})
}

func BarUpcomingEvents(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events, err := service.UpcomingEvents(r.Context())
		if err != nil {
			writeServiceError(w, r, "bar_upcoming_events", err)
			return
		}
		writeJSON(w, r, events)
	})
}

func BarReload(service aggregating.Aggregator) http.Handler {
	return reloadHandler(service, datasource.DatasetBar)
}

func BarCacheInfo(service aggregating.Aggregator) http.Handler {
	return cacheInfoHandler(service, datasource.DatasetBar)
}

package handler

import (
	"net/http"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
)

// Parâmetros de filtro aceitos pelos endpoints de vendas de ingresso
var vendasFilterParams = []string{"cidade", "evento", "base_responsavel", "ticketeira", "data_evento"}

func VendasRows(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromQuery(r, vendasFilterParams...)
		limit := queryInt(r, "limit", 100000)
		offset := queryInt(r, "offset", 0)

		rows, err := service.TicketRows(r.Context(), filters, limit, offset)
		if err != nil {
			writeServiceError(w, r, "vendas_rows", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func VendasMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.TicketMetrics(r.Context(), filtersFromQuery(r, vendasFilterParams...))
		if err != nil {
			writeServiceError(w, r, "vendas_metrics", err)
			return
		}
		writeJSON(w, r, metrics)
	})
}

func VendasByEvent(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromQuery(r, vendasFilterParams...)
		limit := queryInt(r, "limit", 10)

		rows, err := service.TicketByEvent(r.Context(), filters, limit)
		if err != nil {
			writeServiceError(w, r, "vendas_by_event", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func VendasByChannel(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.TicketByChannel(r.Context(), filtersFromQuery(r, vendasFilterParams...))
		if err != nil {
			writeServiceError(w, r, "vendas_by_channel", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func VendasByType(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.TicketByType(r.Context(), filtersFromQuery(r, vendasFilterParams...))
		if err != nil {
			writeServiceError(w, r, "vendas_by_type", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func VendasByCity(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.TicketByCity(r.Context(), filtersFromQuery(r, vendasFilterParams...))
		if err != nil {
			writeServiceError(w, r, "vendas_by_city", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func VendasRecentSales(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromQuery(r, vendasFilterParams...)
		limit := queryInt(r, "limit", 10)

		rows, err := service.TicketRecentSales(r.Context(), filters, limit)
		if err != nil {
			writeServiceError(w, r, "vendas_recent_sales", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func VendasFilterOptions(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.TicketFilterOptions(r.Context(), filtersFromQuery(r, vendasFilterParams...))
		if err != nil {
			writeServiceError(w, r, "vendas_filters", err)
			return
		}
		writeJSON(w, r, options)
	})
}

func VendasReload(service aggregating.Aggregator) http.Handler {
	return reloadHandler(service, datasource.DatasetVendas)
}

func VendasCacheInfo(service aggregating.Aggregator) http.Handler {
	return cacheInfoHandler(service, datasource.DatasetVendas)
}

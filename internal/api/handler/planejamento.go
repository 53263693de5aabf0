package handler

import (
	"net/http"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
)

func PlanejamentoRows(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.PlanningRows(r.Context())
		if err != nil {
			writeServiceError(w, r, "planejamento_rows", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func PlanejamentoStats(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.PlanningStats(r.Context())
		if err != nil {
			writeServiceError(w, r, "planejamento_stats", err)
			return
		}
		writeJSON(w, r, stats)
	})
}

func PlanejamentoByCity(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.PlanningByCity(r.Context())
		if err != nil {
			writeServiceError(w, r, "planejamento_by_city", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func PlanejamentoByTipo(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.PlanningByActivity(r.Context())
		if err != nil {
			writeServiceError(w, r, "planejamento_by_tipo", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

func PlanejamentoReload(service aggregating.Aggregator) http.Handler {
	return reloadHandler(service, datasource.DatasetPlanejamento)
}

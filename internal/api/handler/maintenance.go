package handler

import (
	"net/http"

	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
	"github.com/grupo-onda/dashboard-api/pkg/log"
)

// reloadHandler invalida o cache do dataset e força a recarga da fonte
func reloadHandler(service aggregating.Aggregator, dataset string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).WithField("dataset", dataset).Info("Reload solicitado")

		result, err := service.Reload(r.Context(), dataset)
		if err != nil {
			writeServiceError(w, r, "reload", err)
			return
		}
		writeJSON(w, r, result)
	})
}

// cacheInfoHandler reporta o estado da tabela materializada do dataset
func cacheInfoHandler(service aggregating.Aggregator, dataset string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := service.CacheInfo(r.Context(), dataset)
		if err != nil {
			writeServiceError(w, r, "cache_info", err)
			return
		}
		writeJSON(w, r, info)
	})
}

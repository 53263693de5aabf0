package handler

import (
	"net/http"

	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
)

func HealthcheckHandler(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Health(r.Context()))
	})
}

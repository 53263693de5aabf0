package handler

import (
	"net/http"

	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
)

func Dashboard(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Dashboard(r.Context())
		if err != nil {
			writeServiceError(w, r, "dashboard", err)
			return
		}
		writeJSON(w, r, summary)
	})
}

func Sheets(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.SheetRows(r.Context())
		if err != nil {
			writeServiceError(w, r, "sheets", err)
			return
		}
		writeJSON(w, r, rows)
	})
}

package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/grupo-onda/dashboard-api/internal/domain"
	"github.com/grupo-onda/dashboard-api/pkg/apiErrors"
	"github.com/grupo-onda/dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// filtersFromQuery monta o FilterSet da requisição a partir dos parâmetros de
// query conhecidos do dataset. Valores são literais opacos; parâmetros ausentes
// ou vazios não restringem.
func filtersFromQuery(r *http.Request, params ...string) domain.FilterSet {
	filters := make(domain.FilterSet, 0, len(params))
	query := r.URL.Query()
	for _, param := range params {
		if value := query.Get(param); value != "" {
			filters = append(filters, domain.Filter{Name: param, Value: value})
		}
	}
	return filters
}

// queryInt lê um parâmetro inteiro da query; ausente ou inválido usa o padrão.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, r *http.Request, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar a resposta")
	}
}

// writeServiceError loga o erro com contexto e devolve o envelope padronizado
func writeServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	log.ForContext(r.Context()).WithField("operation", operation).
		WithError(err).Error("Erro ao computar a resposta")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao computar a resposta", nil)
}

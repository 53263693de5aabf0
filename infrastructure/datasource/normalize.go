package datasource

import (
	"fmt"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/grupo-onda/dashboard-api/internal/domain"
)

// NormalizeValue converte um valor nativo da fonte em um valor seguro para
// serialização: string, float64, bool, nil, lista ou mapa dos mesmos. Função
// pura; falhas de conversão degradam para a melhor representação textual
// disponível em vez de propagar.
func NormalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case bool:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case []byte:
		if !utf8.Valid(t) {
			return fmt.Sprintf("<%d bytes>", len(t))
		}
		// Drivers SQL entregam colunas NUMERIC/DECIMAL como os bytes do texto
		// decimal; valores monetários precisam chegar ao serviço como float
		s := string(t)
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
		return s
	case string:
		return t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = NormalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = NormalizeValue(val)
		}
		return out
	case fmt.Stringer:
		// UUIDs e outros identificadores opacos
		return t.String()
	default:
		return v
	}
}

// NormalizeRows converte linhas cruas (campo para valor nativo) em Records.
// Entrada vazia produz saída vazia; a normalização nunca descarta linhas.
func NormalizeRows(rows []map[string]any) []domain.Record {
	if len(rows) == 0 {
		return []domain.Record{}
	}

	normalized := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		rec := make(domain.Record, len(row))
		for k, v := range row {
			rec[k] = NormalizeValue(v)
		}
		normalized = append(normalized, rec)
	}
	return normalized
}

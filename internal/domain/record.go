package domain

import (
	"strconv"
	"time"
)

// Record é uma linha normalizada de um dataset: nome do campo para valor
// JSON-safe (string, float64, bool, nil). Toda normalização de tipos acontece
// na borda do adaptador de dados; os consumidores só enxergam Records.
type Record map[string]any

// Layouts aceitos ao interpretar campos de data vindos das fontes.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"02/01/2006",
}

// String retorna o valor do campo como texto; campos ausentes ou nulos viram "".
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Float retorna o valor numérico do campo; ausente, nulo ou não numérico vira 0.
func (r Record) Float(key string) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Bool interpreta o campo como booleano ("true"/"false" inclusive).
func (r Record) Bool(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false
		}
		return b
	case float64:
		return t != 0
	default:
		return false
	}
}

// Time interpreta o campo como instante; aceita time.Time ou string ISO-8601.
func (r Record) Time(key string) (time.Time, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// Date projeta o campo de timestamp para a data de calendário (YYYY-MM-DD).
func (r Record) Date(key string) (string, bool) {
	t, ok := r.Time(key)
	if !ok {
		return "", false
	}
	return t.Format(time.DateOnly), true
}

// IsNull informa se o campo está ausente ou é nulo.
func (r Record) IsNull(key string) bool {
	v, ok := r[key]
	return !ok || v == nil
}

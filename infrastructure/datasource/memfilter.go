package datasource

import (
	"sort"

	"github.com/grupo-onda/dashboard-api/internal/domain"
)

// MatchRow decide se uma linha satisfaz o predicado do dataset: o predicado
// padrão (estornos excluídos) e todos os filtros presentes, com igualdade
// exata de texto. Filtros de data comparam a projeção YYYY-MM-DD do campo.
// É o equivalente em memória do WHERE gerado por BuildSelect, usado pelas
// variantes de arquivo.
func MatchRow(spec TableSpec, filters domain.FilterSet, rec domain.Record) bool {
	if spec.RefundColumn != "" && rec.Bool(spec.RefundColumn) {
		return false
	}

	for _, f := range spec.Filters {
		value, ok := filters.Get(f.Param)
		if !ok {
			continue
		}
		if f.Date {
			date, ok := rec.Date(f.Column)
			if !ok || date != value {
				return false
			}
		} else if rec.String(f.Column) != value {
			return false
		}
	}

	return true
}

// ApplyOptions reproduz em memória a ordenação e a paginação que as variantes
// SQL empurram para o servidor. A ordenação é estável para preservar a ordem
// de entrada em empates.
func ApplyOptions(spec TableSpec, opts QueryOptions, rows []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(rows))
	for _, rec := range rows {
		if MatchRow(spec, opts.Filters, rec) {
			out = append(out, rec)
		}
	}

	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = spec.TimeColumn
	}
	if orderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			less := compareField(out[i], out[j], orderBy)
			if opts.Asc {
				return less < 0
			}
			return less > 0
		})
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []domain.Record{}
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}

	return out
}

// compareField compara o campo das duas linhas: como instante quando ambos
// são datas, como número quando ambos são numéricos, senão como texto.
func compareField(a, b domain.Record, field string) int {
	ta, aOk := a.Time(field)
	tb, bOk := b.Time(field)
	if aOk && bOk {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}

	if !a.IsNull(field) && !b.IsNull(field) {
		if fa, fb := a.Float(field), b.Float(field); fa != 0 || fb != 0 {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
		}
	}

	sa, sb := a.String(field), b.String(field)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

package datasource

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

// FilterColumn liga um parâmetro de filtro da API à coluna correspondente do
// dataset. Filtros de data comparam a projeção YYYY-MM-DD do timestamp, não a
// igualdade exata do instante.
type FilterColumn struct {
	Param  string
	Column string
	Date   bool
}

// TableSpec descreve um dataset: tabela de origem, coluna de tempo para
// ordenação padrão, filtros fixos aceitos e predicado padrão aplicado mesmo
// sem filtros (ex.: excluir transações estornadas).
type TableSpec struct {
	Dataset      string
	Table        string
	TimeColumn   string
	Filters      []FilterColumn
	RefundColumn string // coluna booleana de estorno; vazio quando não há
}

var tableSpecs = map[string]TableSpec{
	DatasetBar: {
		Dataset:      DatasetBar,
		Table:        "bar_zig",
		TimeColumn:   "transactionDate",
		RefundColumn: "isRefunded",
		Filters: []FilterColumn{
			{Param: "evento_tipo", Column: "_evento_tipo"},
			{Param: "event_name", Column: "eventName"},
			{Param: "event_date", Column: "eventDate", Date: true},
		},
	},
	DatasetVendas: {
		Dataset:    DatasetVendas,
		Table:      "vendas_ingresso",
		TimeColumn: "data_venda",
		Filters: []FilterColumn{
			{Param: "cidade", Column: "cidade_evento"},
			{Param: "evento", Column: "evento"},
			{Param: "base_responsavel", Column: "base_responsavel"},
			{Param: "ticketeira", Column: "ticketeira"},
			{Param: "data_evento", Column: "data_evento", Date: true},
		},
	},
	DatasetPlanejamento: {
		Dataset:    DatasetPlanejamento,
		Table:      "planejamento",
		TimeColumn: "data",
	},
}

// Spec retorna a descrição do dataset. Dataset desconhecido é erro de
// programação e atravessa a borda do adaptador.
func Spec(dataset string) (TableSpec, error) {
	spec, ok := tableSpecs[dataset]
	if !ok {
		return TableSpec{}, errors.Errorf("dataset desconhecido: %s", dataset)
	}
	return spec, nil
}

// Datasets lista os datasets conhecidos.
func Datasets() []string {
	return []string{DatasetBar, DatasetVendas, DatasetPlanejamento}
}

// BuildSelect monta o SELECT parametrizado de um dataset para as variantes
// SQL. Todos os valores de filtro entram como parâmetros vinculados, nunca
// interpolados no texto da query; os nomes de coluna vêm da TableSpec fixa,
// jamais da requisição.
func BuildSelect(spec TableSpec, opts QueryOptions, placeholder squirrel.PlaceholderFormat) (string, []any, error) {
	builder := squirrel.Select("*").From(spec.Table)

	if spec.RefundColumn != "" {
		builder = builder.Where(squirrel.Eq{spec.RefundColumn: false})
	}

	for _, f := range spec.Filters {
		value, ok := opts.Filters.Get(f.Param)
		if !ok {
			continue
		}
		if f.Date {
			builder = builder.Where(squirrel.Expr(
				fmt.Sprintf("CAST(%s AS DATE) = CAST(? AS DATE)", f.Column), value,
			))
		} else {
			builder = builder.Where(squirrel.Eq{f.Column: value})
		}
	}

	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = spec.TimeColumn
	}
	if orderBy != "" {
		direction := "DESC"
		if opts.Asc {
			direction = "ASC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", orderBy, direction))
	}

	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	query, args, err := builder.PlaceholderFormat(placeholder).ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao construir a query")
	}

	return query, args, nil
}

package datasource

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/grupo-onda/dashboard-api/internal/domain"
)

// ScanRows materializa um result set genérico em Records normalizados, sem
// conhecer o esquema de antemão. Compartilhado pelas variantes SQL.
func ScanRows(rows *sql.Rows) ([]domain.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler as colunas do result set")
	}

	raw := make([]map[string]any, 0)
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrap(err, "erro ao ler a linha do result set")
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		raw = append(raw, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar o result set")
	}

	return NormalizeRows(raw), nil
}

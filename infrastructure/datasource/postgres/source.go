package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/internal/domain"
	"github.com/grupo-onda/dashboard-api/pkg/log"
)

// undefinedTable é o código SQLSTATE do PostgreSQL para tabela inexistente
const undefinedTable = "42P01"

// Source lê os datasets do dashboard em um PostgreSQL, empurrando filtros,
// ordenação e paginação para o servidor. Toda agregação acontece no serviço.
type Source struct {
	db *sql.DB
}

func NewSource(db *sql.DB) *Source {
	return &Source{db: db}
}

func (s *Source) Name() string {
	return "postgres"
}

// Load executa o SELECT parametrizado do dataset e materializa o resultado.
// Tabela ausente ou banco inalcançável degrada para resultado vazio com log.
func (s *Source) Load(ctx context.Context, dataset string, opts datasource.QueryOptions) ([]domain.Record, error) {
	spec, err := datasource.Spec(dataset)
	if err != nil {
		return nil, err
	}

	query, args, err := datasource.BuildSelect(spec, opts, squirrel.Dollar)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logDegraded(ctx, dataset, err)
		return []domain.Record{}, nil
	}
	defer rows.Close()

	records, err := datasource.ScanRows(rows)
	if err != nil {
		s.logDegraded(ctx, dataset, err)
		return []domain.Record{}, nil
	}

	return records, nil
}

func (s *Source) logDegraded(ctx context.Context, dataset string, err error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"source":  s.Name(),
		"dataset": dataset,
	})
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == undefinedTable {
		logger.WithError(err).Warn("Tabela do dataset não existe, retornando vazio")
		return
	}
	logger.WithError(err).Error("Erro ao consultar o dataset, retornando vazio")
}

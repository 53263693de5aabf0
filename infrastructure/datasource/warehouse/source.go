package warehouse

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	// Driver do DuckDB registrado via database/sql
	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/pkg/errors"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/internal/domain"
	"github.com/grupo-onda/dashboard-api/pkg/log"
)

// Source lê os datasets de um arquivo DuckDB local, a variante analítica
// embarcada. Mesmo contrato da variante PostgreSQL: filtros e paginação
// empurrados para o motor, agregação no serviço.
type Source struct {
	db *sql.DB
}

// Open abre o arquivo do warehouse e valida a conectividade
func Open(path string) (*Source, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o warehouse")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao verificar o warehouse")
	}

	return &Source{db: db}, nil
}

func (s *Source) Name() string {
	return "warehouse"
}

// Load executa o SELECT parametrizado do dataset. Tabela ausente degrada para
// resultado vazio com log, mantendo o dashboard navegável.
func (s *Source) Load(ctx context.Context, dataset string, opts datasource.QueryOptions) ([]domain.Record, error) {
	spec, err := datasource.Spec(dataset)
	if err != nil {
		return nil, err
	}

	query, args, err := datasource.BuildSelect(spec, opts, squirrel.Question)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"source":  s.Name(),
			"dataset": dataset,
		}).WithError(err).Warn("Erro ao consultar o warehouse, retornando vazio")
		return []domain.Record{}, nil
	}
	defer rows.Close()

	records, err := datasource.ScanRows(rows)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"source":  s.Name(),
			"dataset": dataset,
		}).WithError(err).Error("Erro ao ler o resultado do warehouse, retornando vazio")
		return []domain.Record{}, nil
	}

	return records, nil
}

// Close encerra a conexão com o arquivo do warehouse
func (s *Source) Close() error {
	return s.db.Close()
}

package csvfile

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/internal/domain"
	"github.com/grupo-onda/dashboard-api/pkg/log"
)

// Source lê os datasets de arquivos CSV locais, a variante usada em
// desenvolvimento e nos exports avulsos. Cada dataset é materializado em
// memória na primeira leitura e reutilizado até um Reload explícito.
type Source struct {
	dir string

	mu     sync.RWMutex
	tables map[string]*table
}

type table struct {
	rows     []domain.Record
	loadedAt time.Time
}

func NewSource(dir string) *Source {
	return &Source{
		dir:    dir,
		tables: make(map[string]*table),
	}
}

func (s *Source) Name() string {
	return "csv"
}

// Load filtra, ordena e pagina em memória sobre a tabela materializada.
// Arquivo ausente ou malformado degrada para resultado vazio com log.
func (s *Source) Load(ctx context.Context, dataset string, opts datasource.QueryOptions) ([]domain.Record, error) {
	spec, err := datasource.Spec(dataset)
	if err != nil {
		return nil, err
	}

	tbl := s.ensureLoaded(ctx, dataset)
	return datasource.ApplyOptions(spec, opts, tbl.rows), nil
}

// Reload descarta a tabela materializada e relê o arquivo da origem
func (s *Source) Reload(ctx context.Context, dataset string) error {
	if _, err := datasource.Spec(dataset); err != nil {
		return err
	}

	tbl := s.readTable(ctx, dataset)

	s.mu.Lock()
	s.tables[dataset] = tbl
	s.mu.Unlock()

	return nil
}

// CacheInfo reporta o estado da tabela materializada do dataset
func (s *Source) CacheInfo(dataset string) domain.SourceCacheInfo {
	s.mu.RLock()
	tbl, ok := s.tables[dataset]
	s.mu.RUnlock()

	if !ok {
		return domain.SourceCacheInfo{Status: "not_loaded"}
	}

	status := "loaded"
	if len(tbl.rows) == 0 {
		status = "empty"
	}
	return domain.SourceCacheInfo{
		Status:   status,
		RowCount: len(tbl.rows),
		LoadedAt: tbl.loadedAt.Format(time.RFC3339),
	}
}

func (s *Source) ensureLoaded(ctx context.Context, dataset string) *table {
	s.mu.RLock()
	tbl, ok := s.tables[dataset]
	s.mu.RUnlock()
	if ok {
		return tbl
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tbl, ok := s.tables[dataset]; ok {
		return tbl
	}

	tbl = s.readTable(ctx, dataset)
	s.tables[dataset] = tbl
	return tbl
}

// readTable lê o arquivo do dataset. Qualquer falha vira tabela vazia com log;
// o dashboard continua navegável sem o dataset.
func (s *Source) readTable(ctx context.Context, dataset string) *table {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"source":  s.Name(),
		"dataset": dataset,
	})

	rows, path, err := s.readFile(dataset)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler o arquivo do dataset, tabela vazia")
		return &table{rows: []domain.Record{}, loadedAt: time.Now()}
	}

	logger.WithFields(log.Fields{"path": path, "rows": len(rows)}).
		Info("Dataset materializado a partir do CSV")
	return &table{rows: rows, loadedAt: time.Now()}
}

func (s *Source) readFile(dataset string) ([]domain.Record, string, error) {
	candidates := []string{
		dataset + "_rows.csv",
		dataset + "_rows.csv.gz",
		dataset + ".csv",
		dataset + ".csv.gz",
	}

	var lastErr error
	for _, name := range candidates {
		path := filepath.Join(s.dir, name)
		rows, err := readCSV(path)
		if err == nil {
			return rows, path, nil
		}
		if !os.IsNotExist(errors.Cause(err)) {
			return nil, path, err
		}
		lastErr = err
	}
	return nil, "", errors.Wrapf(lastErr, "nenhum arquivo encontrado para o dataset %s em %s", dataset, s.dir)
}

func readCSV(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo")
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao descomprimir o arquivo")
		}
		defer gz.Close()
		reader = gz
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1 // linhas curtas viram campos nulos

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return []domain.Record{}, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho")
	}

	rows := make([]domain.Record, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler a linha")
		}

		rec := make(domain.Record, len(header))
		for i, col := range header {
			if i >= len(record) {
				rec[col] = nil
				continue
			}
			rec[col] = coerceCell(col, record[i])
		}
		rows = append(rows, rec)
	}

	return rows, nil
}

// coerceCell interpreta a célula textual do CSV: vazio vira nulo, booleanos e
// números são convertidos, datas ficam como texto para manter a projeção
// YYYY-MM-DD estável.
func coerceCell(column, value string) any {
	if value == "" {
		return nil
	}

	lower := strings.ToLower(column)
	if strings.Contains(lower, "date") || strings.Contains(lower, "data") {
		return value
	}

	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return value
}

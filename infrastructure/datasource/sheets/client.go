package sheets

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/grupo-onda/dashboard-api/internal/domain"
	"github.com/grupo-onda/dashboard-api/pkg/log"
)

// tableTTL é a validade da tabela materializada; vencida, a próxima leitura
// rebusca a planilha.
const tableTTL = 30 * time.Minute

// Client busca a planilha publicada (export CSV) usada pela visão de
// acompanhamento manual. A tabela é materializada em memória e rebuscada
// quando vence, num Reload explícito ou no refresh agendado. Falhas de busca
// não são memoizadas: a última tabela boa continua servindo e a chamada
// seguinte tenta de novo.
type Client struct {
	url       string
	headerRow int
	ttl       time.Duration
	http      *http.Client

	mu    sync.RWMutex
	table *table
}

type table struct {
	rows     []domain.Record
	loadedAt time.Time
}

func NewClient(url string, headerRow int) *Client {
	if headerRow < 0 {
		headerRow = 0
	}
	return &Client{
		url:       url,
		headerRow: headerRow,
		ttl:       tableTTL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Rows retorna as linhas da planilha, buscando quando não há tabela válida.
// Falha de rede ou resposta inesperada degrada para a última tabela boa, ou
// para vazio quando nunca houve uma.
func (c *Client) Rows(ctx context.Context) []domain.Record {
	c.mu.RLock()
	tbl := c.table
	c.mu.RUnlock()
	if c.fresh(tbl) {
		return tbl.rows
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fresh(c.table) {
		return c.table.rows
	}

	logger := log.ForContext(ctx).WithField("source", "sheets")
	rows, err := c.download(ctx)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar a planilha")
		if c.table != nil {
			return c.table.rows
		}
		return []domain.Record{}
	}

	c.table = &table{rows: rows, loadedAt: time.Now()}
	logger.WithField("rows", len(rows)).Info("Planilha materializada")
	return rows
}

func (c *Client) fresh(tbl *table) bool {
	return tbl != nil && time.Since(tbl.loadedAt) < c.ttl
}

// Reload rebusca a planilha imediatamente; em caso de falha a tabela
// materializada anterior é mantida.
func (c *Client) Reload(ctx context.Context) error {
	rows, err := c.download(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.table = &table{rows: rows, loadedAt: time.Now()}
	c.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"source": "sheets",
		"rows":   len(rows),
	}).Info("Planilha materializada")
	return nil
}

// CacheInfo reporta o estado da tabela materializada da planilha
func (c *Client) CacheInfo() domain.SourceCacheInfo {
	c.mu.RLock()
	tbl := c.table
	c.mu.RUnlock()

	if tbl == nil {
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

func (c *Client) download(ctx context.Context) ([]domain.Record, error) {
	if c.url == "" {
		return nil, errors.New("URL da planilha não configurada")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a requisição da planilha")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a planilha")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("planilha respondeu com status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da planilha")
	}

	// Planilha não publicada redireciona para uma página de login em HTML
	trimmed := strings.TrimLeft(string(body), " \t\r\n")
	if strings.HasPrefix(trimmed, "<") {
		return nil, errors.New("planilha retornou HTML em vez de CSV; verifique a publicação")
	}

	return c.parse(trimmed)
}

func (c *Client) parse(body string) ([]domain.Record, error) {
	cr := csv.NewReader(strings.NewReader(body))
	cr.FieldsPerRecord = -1

	all, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar o CSV da planilha")
	}
	if len(all) <= c.headerRow {
		return []domain.Record{}, nil
	}

	header := all[c.headerRow]
	rows := make([]domain.Record, 0, len(all)-c.headerRow-1)
	for _, record := range all[c.headerRow+1:] {
		rec := make(domain.Record, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i >= len(record) {
				rec[col] = nil
				continue
			}
			rec[col] = coerceCell(record[i])
		}
		rows = append(rows, rec)
	}

	return rows, nil
}

// coerceCell interpreta a célula da planilha; NaN e infinito degradam para
// nulo para manter a serialização JSON válida.
func coerceCell(value string) any {
	if value == "" {
		return nil
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	}

	return value
}

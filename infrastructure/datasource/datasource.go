package datasource

import (
	"context"

	"github.com/grupo-onda/dashboard-api/internal/domain"
)

// Nomes dos datasets servidos pelo dashboard.
const (
	DatasetBar          = "bar_zig"
	DatasetVendas       = "vendas_ingresso"
	DatasetPlanejamento = "planejamento"
)

// QueryOptions delimita uma leitura: filtros, ordenação e paginação.
// Zero value significa leitura completa na ordenação padrão do dataset.
type QueryOptions struct {
	Filters domain.FilterSet
	OrderBy string // coluna de ordenação; vazio usa a coluna de tempo do dataset
	Asc     bool   // ordenação ascendente; padrão é descendente
	Limit   int    // 0 = sem limite
	Offset  int
}

// DataSource é o contrato comum dos backends de dados. Cada variante carrega
// as linhas de um dataset nomeado, já filtradas e normalizadas para Records.
//
// Política de erro: tabela/arquivo ausente ou endpoint inalcançável degrada
// para resultado vazio com log; apenas erros de programação (dataset
// desconhecido) atravessam a borda do adaptador.
type DataSource interface {
	Name() string
	Load(ctx context.Context, dataset string, opts QueryOptions) ([]domain.Record, error)
}

// Reloader é a capacidade opcional de recarregar os dados de um dataset a
// partir da origem. Descoberta por type assertion no serviço de agregação.
type Reloader interface {
	Reload(ctx context.Context, dataset string) error
}

// CacheReporter é a capacidade opcional de reportar o estado da tabela
// materializada de um dataset (variantes de arquivo).
type CacheReporter interface {
	CacheInfo(dataset string) domain.SourceCacheInfo
}

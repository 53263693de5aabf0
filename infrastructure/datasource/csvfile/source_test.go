package csvfile

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/internal/domain"
)

const barCSV = `transactionId,transactionDate,eventName,eventDate,_evento_tipo,productName,count,unitValue,discountValue,isRefunded
t1,2025-05-01T21:00:00,Festival de Inverno,2025-05-01,Show,Cerveja,2,1000,0,false
t2,2025-05-02T22:00:00,Festival de Inverno,2025-05-01,Show,Drink,1,500,100,false
t3,2025-05-02T23:00:00,Outro Evento,2025-05-02,Festa,Cerveja,1,1000,0,true
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func writeGzipFile(t *testing.T, dir, name, content string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
}

func TestSourceLoadCoercion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bar_zig_rows.csv", barCSV)
	source := NewSource(dir)

	rows, err := source.Load(context.Background(), datasource.DatasetBar, datasource.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2) // estornada fica de fora

	// Ordenação padrão: mais recente primeiro
	first := rows[0]
	assert.Equal(t, "t2", first.String("transactionId"))

	// Números viram float64, booleanos viram bool, datas ficam como texto
	assert.Equal(t, float64(500), first.Float("unitValue"))
	assert.Equal(t, false, first.Bool("isRefunded"))
	date, ok := first.Date("eventDate")
	require.True(t, ok)
	assert.Equal(t, "2025-05-01", date)
}

func TestSourceLoadFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bar_zig_rows.csv", barCSV)
	source := NewSource(dir)

	opts := datasource.QueryOptions{
		Filters: domain.FilterSet{{Name: "event_name", Value: "Festival de Inverno"}},
	}
	rows, err := source.Load(context.Background(), datasource.DatasetBar, opts)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	opts = datasource.QueryOptions{
		Filters: domain.FilterSet{{Name: "evento_tipo", Value: "Festa"}},
	}
	rows, err = source.Load(context.Background(), datasource.DatasetBar, opts)
	require.NoError(t, err)
	assert.Empty(t, rows) // a única linha de Festa é estornada
}

func TestSourceLoadPagination(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bar_zig_rows.csv", barCSV)
	source := NewSource(dir)

	rows, err := source.Load(context.Background(), datasource.DatasetBar, datasource.QueryOptions{
		Limit:  1,
		Offset: 1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "t1", rows[0].String("transactionId"))
}

func TestSourceGzip(t *testing.T) {
	dir := t.TempDir()
	writeGzipFile(t, dir, "bar_zig_rows.csv.gz", barCSV)
	source := NewSource(dir)

	rows, err := source.Load(context.Background(), datasource.DatasetBar, datasource.QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSourceMissingFileDegradesToEmpty(t *testing.T) {
	source := NewSource(t.TempDir())

	rows, err := source.Load(context.Background(), datasource.DatasetBar, datasource.QueryOptions{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	info := source.CacheInfo(datasource.DatasetBar)
	assert.Equal(t, "empty", info.Status)
}

func TestSourceUnknownDataset(t *testing.T) {
	source := NewSource(t.TempDir())

	_, err := source.Load(context.Background(), "nao_existe", datasource.QueryOptions{})
	assert.Error(t, err)

	assert.Error(t, source.Reload(context.Background(), "nao_existe"))
}

func TestSourceReload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bar_zig_rows.csv", barCSV)
	source := NewSource(dir)

	rows, err := source.Load(context.Background(), datasource.DatasetBar, datasource.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Arquivo novo só aparece depois do reload
	extra := barCSV + "t4,2025-05-03T20:00:00,Festival de Inverno,2025-05-01,Show,Agua,1,300,0,false\n"
	writeFile(t, dir, "bar_zig_rows.csv", extra)

	rows, err = source.Load(context.Background(), datasource.DatasetBar, datasource.QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, source.Reload(context.Background(), datasource.DatasetBar))

	rows, err = source.Load(context.Background(), datasource.DatasetBar, datasource.QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	info := source.CacheInfo(datasource.DatasetBar)
	assert.Equal(t, "loaded", info.Status)
	assert.Equal(t, 4, info.RowCount)
	assert.NotEmpty(t, info.LoadedAt)
}

func TestSourceCacheInfoNotLoaded(t *testing.T) {
	source := NewSource(t.TempDir())
	info := source.CacheInfo(datasource.DatasetBar)
	assert.Equal(t, "not_loaded", info.Status)
}

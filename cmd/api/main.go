package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grupo-onda/dashboard-api/infrastructure/database/postgres"
	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/infrastructure/datasource/csvfile"
	pgsource "github.com/grupo-onda/dashboard-api/infrastructure/datasource/postgres"
	"github.com/grupo-onda/dashboard-api/infrastructure/datasource/sheets"
	"github.com/grupo-onda/dashboard-api/infrastructure/datasource/warehouse"
	"github.com/grupo-onda/dashboard-api/internal/api"
	"github.com/grupo-onda/dashboard-api/internal/config"
	"github.com/grupo-onda/dashboard-api/internal/scheduler"
	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
	"github.com/grupo-onda/dashboard-api/pkg/cache"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := newDataSource(cfg)
	if closeSource != nil {
		defer closeSource()
	}

	responseCache := cache.New(time.Duration(cfg.Cache.DefaultTTLMinutes) * time.Minute)
	sheetClient := sheets.NewClient(cfg.Sheets.URL, cfg.Sheets.HeaderRow)

	aggregator := aggregating.NewService(source, sheetClient, responseCache)

	maintenance := scheduler.NewCacheMaintenanceService(responseCache, sheetClient, cfg)
	if err := maintenance.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a manutenção do cache")
	} else {
		logrus.Info("Manutenção do cache iniciada com sucesso")
	}

	server, err := api.New(cfg, aggregator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newDataSource seleciona o backend de dados pela configuração
func newDataSource(cfg *config.Config) (datasource.DataSource, func()) {
	switch cfg.DataSource {
	case config.SourcePostgres:
		conn, err := postgres.NewConnection(cfg)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return pgsource.NewSource(conn.DB), func() { conn.Close() }

	case config.SourceWarehouse:
		source, err := warehouse.Open(cfg.Warehouse.Path)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir o warehouse")
		}
		logrus.WithField("path", cfg.Warehouse.Path).Info("Warehouse aberto com sucesso")
		return source, func() { source.Close() }

	case config.SourceCSV:
		logrus.WithField("dir", cfg.CSV.Dir).Info("Usando arquivos CSV locais como fonte")
		return csvfile.NewSource(cfg.CSV.Dir), nil

	default:
		logrus.Fatalf("DATA_SOURCE desconhecido: %s", cfg.DataSource)
		return nil, nil
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Backends de dados suportados para os datasets do dashboard.
const (
	SourcePostgres  = "postgres"
	SourceWarehouse = "warehouse"
	SourceCSV       = "csv"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Warehouse    Warehouse    `mapstructure:",squash"`
	CSV          CSV          `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	CacheSweep   CacheSweep   `mapstructure:",squash"`
	SheetRefresh SheetRefresh `mapstructure:",squash"`
	DataSource   string       `mapstructure:"data_source"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Warehouse aponta para o arquivo DuckDB com as tabelas analíticas.
type Warehouse struct {
	Path string `mapstructure:"warehouse_path"`
}

type CSV struct {
	Dir string `mapstructure:"csv_dir"`
}

type Sheets struct {
	URL       string `mapstructure:"sheet_url"`
	HeaderRow int    `mapstructure:"sheet_header_row"`
}

type Cache struct {
	DefaultTTLMinutes int `mapstructure:"cache_default_ttl_minutes"`
}

type CacheSweep struct {
	IntervalMinutes int  `mapstructure:"cache_sweep_interval_minutes"`
	Enabled         bool `mapstructure:"cache_sweep_enabled"`
}

type SheetRefresh struct {
	CronSchedule string `mapstructure:"sheet_refresh_cron"`
	Enabled      bool   `mapstructure:"sheet_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 4000)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATA_SOURCE", SourceCSV)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WAREHOUSE_PATH", "./data/warehouse.duckdb")
	viper.SetDefault("CSV_DIR", "./data")

	viper.SetDefault("SHEET_URL", "")
	viper.SetDefault("SHEET_HEADER_ROW", 1) // linha 0 traz os agrupamentos, linha 1 os nomes das colunas

	viper.SetDefault("CACHE_DEFAULT_TTL_MINUTES", 5)

	viper.SetDefault("CACHE_SWEEP_INTERVAL_MINUTES", 10)
	viper.SetDefault("CACHE_SWEEP_ENABLED", true)

	viper.SetDefault("SHEET_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SHEET_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// statement_timeout limita agregações desgovernadas no servidor (10 minutos)
	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?options=-c%%20statement_timeout%%3D600000",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	// Driver do PostgreSQL registrado via database/sql
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/grupo-onda/dashboard-api/internal/config"
)

// Connection encapsula o pool de conexões com o PostgreSQL
type Connection struct {
	DB *sql.DB
}

// NewConnection abre o pool e valida a conectividade com um ping
func NewConnection(cfg *config.Config) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a conexão com o banco")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao verificar a conexão com o banco")
	}

	return &Connection{DB: db}, nil
}

// Close encerra o pool de conexões
func (c *Connection) Close() error {
	return c.DB.Close()
}

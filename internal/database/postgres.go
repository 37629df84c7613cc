package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Postgres owns the single database handle for the process's lifetime.
// Repositories receive the shared *sqlx.DB from DB(); they never open their
// own connections.
type Postgres struct {
	cfg PostgresConfig

	mu sync.Mutex
	db *sqlx.DB
}

// NewPostgres creates a manager in the disconnected state. No connection is
// attempted until Connect.
func NewPostgres(cfg PostgresConfig) *Postgres {
	return &Postgres{cfg: cfg}
}

// Connect opens and pings the connection pool. Calling it while already
// connected is a no-op. A failure wraps the underlying cause and is fatal
// for the caller to handle: this layer never retries.
func (p *Postgres) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return nil
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", p.cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	p.db = db
	return nil
}

// Disconnect closes the pool. Calling it while already disconnected is a
// no-op.
func (p *Postgres) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}

	err := p.db.Close()
	p.db = nil
	return err
}

// DB returns the shared handle, or nil before a successful Connect.
func (p *Postgres) DB() *sqlx.DB {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.db
}

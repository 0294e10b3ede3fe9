package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/localekit/pkg/prefstore"
)

// defaultTable is created by the embedded migration
const defaultTable = "locale_preferences"

// Store implements prefstore.Store backed by PostgreSQL
type Store struct {
	pool     *pgxpool.Pool
	getQuery string
	setQuery string
	delQuery string
}

// Option is a functional option for configuring the Store
type Option func(*storeConfig)

type storeConfig struct {
	table string
}

// WithTable sets the table preferences are stored in. The table needs the
// same shape the embedded migration creates.
func WithTable(table string) Option {
	return func(c *storeConfig) {
		if table == "" {
			return
		}
		c.table = table
	}
}

// New creates a PostgreSQL preference store over an existing pool
func New(pool *pgxpool.Pool, opts ...Option) *Store {
	cfg := &storeConfig{table: defaultTable}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Store{
		pool:     pool,
		getQuery: fmt.Sprintf(`SELECT value FROM %s WHERE subject = $1`, cfg.table),
		setQuery: fmt.Sprintf(`INSERT INTO %s (subject, value, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (subject) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, cfg.table),
		delQuery: fmt.Sprintf(`DELETE FROM %s WHERE subject = $1`, cfg.table),
	}
}

// Get retrieves the preference stored for a subject
func (s *Store) Get(ctx context.Context, subject string) (string, error) {
	if subject == "" {
		return "", prefstore.ErrEmptySubject
	}

	var value string
	err := s.pool.QueryRow(ctx, s.getQuery, subject).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", prefstore.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores the preference for a subject, replacing any previous value
func (s *Store) Set(ctx context.Context, subject, value string) error {
	if subject == "" {
		return prefstore.ErrEmptySubject
	}
	if value == "" {
		return prefstore.ErrEmptyValue
	}

	_, err := s.pool.Exec(ctx, s.setQuery, subject, value)
	return err
}

// Delete removes the preference stored for a subject
func (s *Store) Delete(ctx context.Context, subject string) error {
	if subject == "" {
		return prefstore.ErrEmptySubject
	}

	_, err := s.pool.Exec(ctx, s.delQuery, subject)
	return err
}

package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB *sql.DB
	db bob.DB
	Reader
	Statistics sqlconfig.IStatisticsReader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(env.PostgresMaxConns)
	return New(db), nil
}

// New wraps an open database handle.
func New(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:         db,
		db:         bobDB,
		Reader:     NewReader(bobDB),
		Statistics: sqlconfig.NewStatisticsReader(db),
	}
}

// Write begins a transaction and returns a Writer whose tables run inside it.
// The caller must Commit or Rollback the writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx, NewReader(tx)), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

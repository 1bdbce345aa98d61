package storage

import (
	"context"
)

// Tx is the unit of work a Writer finishes.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to an open transaction.
type Writer struct {
	tx Tx
	Reader
}

func NewWriter(tx Tx, reader Reader) *Writer {
	return &Writer{
		tx:     tx,
		Reader: reader,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

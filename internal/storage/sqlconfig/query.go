package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/scan"
)

const dateLayout = "2006-01-02"

// findOne runs q and maps the single resulting row onto T.
// A missing row is reported as (nil, nil).
func findOne[T any](ctx context.Context, exec bob.Executor, q bob.Query) (*T, error) {
	row, err := bob.One(ctx, exec, q, scan.StructMapper[T]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func findAll[T any](ctx context.Context, exec bob.Executor, q bob.Query) ([]*T, error) {
	rows, err := bob.All(ctx, exec, q, scan.StructMapper[T]())
	if err != nil {
		return nil, err
	}
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func count(ctx context.Context, exec bob.Executor, q bob.Query) (int64, error) {
	return bob.One(ctx, exec, q, scan.SingleColumnMapper[int64])
}

func insertReturningID(ctx context.Context, exec bob.Executor, q bob.Query) (int64, error) {
	id, err := bob.One(ctx, exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func exec(ctx context.Context, executor bob.Executor, q bob.Query) error {
	if _, err := bob.Exec(ctx, executor, q); err != nil {
		return translateError(err)
	}
	return nil
}

package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
)

var _ IAction = (*DeleteTransaction)(nil)

type DeleteTransaction struct {
	UserID int64
	ID     int64
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, t.UserID, t.ID)
	if err != nil {
		return domainerr.Store(err)
	}
	if existing == nil {
		return domainerr.NotFound(msgTransactionNotFound)
	}

	return domainerr.Store(writer.Transactions.Delete(ctx, t.UserID, t.ID))
}

package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ IAction = (*UpdateTransaction)(nil)

// UpdateTransaction changes the non-nil fields of Update.
type UpdateTransaction struct {
	UserID int64
	ID     int64
	Update sqlconfig.TransactionUpdate

	Updated *sqlconfig.Transaction
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, t.UserID, t.ID)
	if err != nil {
		return domainerr.Store(err)
	}
	if existing == nil {
		return domainerr.NotFound(msgTransactionNotFound)
	}

	if t.Update.CategoryID != nil {
		category, err := writer.Categories.FindByID(ctx, t.UserID, *t.Update.CategoryID)
		if err != nil {
			return domainerr.Store(err)
		}
		if category == nil {
			return categoryMissing()
		}
	}

	if t.Update.IsEmpty() {
		t.Updated = existing
		return nil
	}

	if err := writer.Transactions.Update(ctx, t.UserID, t.ID, &t.Update); err != nil {
		return classify(err, nil, categoryMissing)
	}

	updated, err := writer.Transactions.FindByID(ctx, t.UserID, t.ID)
	if err != nil {
		return domainerr.Store(err)
	}
	t.Updated = updated
	return nil
}

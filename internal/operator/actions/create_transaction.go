package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ IAction = (*CreateTransaction)(nil)

type CreateTransaction struct {
	UserID      int64
	CategoryID  int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Kind        sqlconfig.Kind

	// Created is set once Perform succeeds.
	Created *sqlconfig.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, t.UserID, t.CategoryID)
	if err != nil {
		return domainerr.Store(err)
	}
	if category == nil {
		return categoryMissing()
	}

	storageCreate := &sqlconfig.TransactionCreate{
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		Kind:        t.Kind,
	}
	id, err := writer.Transactions.Insert(ctx, storageCreate)
	if err != nil {
		return classify(err, nil, categoryMissing)
	}

	created, err := writer.Transactions.FindByID(ctx, t.UserID, id)
	if err != nil {
		return domainerr.Store(err)
	}
	t.Created = created
	return nil
}

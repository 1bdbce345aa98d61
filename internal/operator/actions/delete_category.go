package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
)

var _ IAction = (*DeleteCategory)(nil)

// DeleteCategory removes a category that no transaction references. The
// foreign key on transactions rejects the delete if one is added concurrently.
type DeleteCategory struct {
	UserID int64
	ID     int64
}

func (c *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.FindByID(ctx, c.UserID, c.ID)
	if err != nil {
		return domainerr.Store(err)
	}
	if existing == nil {
		return domainerr.NotFound(msgCategoryNotFound)
	}

	references, err := writer.Transactions.CountByCategory(ctx, c.UserID, c.ID)
	if err != nil {
		return domainerr.Store(err)
	}
	if references > 0 {
		return categoryHasReferences()
	}

	return classify(writer.Categories.Delete(ctx, c.UserID, c.ID), nil, categoryHasReferences)
}

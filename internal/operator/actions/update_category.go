package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ IAction = (*UpdateCategory)(nil)

type UpdateCategory struct {
	UserID int64
	ID     int64
	Update sqlconfig.CategoryUpdate

	Updated *sqlconfig.Category
}

func (c *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.FindByID(ctx, c.UserID, c.ID)
	if err != nil {
		return domainerr.Store(err)
	}
	if existing == nil {
		return domainerr.NotFound(msgCategoryNotFound)
	}
	if c.Update.IsEmpty() {
		c.Updated = existing
		return nil
	}

	if err := writer.Categories.Update(ctx, c.UserID, c.ID, &c.Update); err != nil {
		return classify(err, categoryDuplicate, nil)
	}

	updated, err := writer.Categories.FindByID(ctx, c.UserID, c.ID)
	if err != nil {
		return domainerr.Store(err)
	}
	c.Updated = updated
	return nil
}

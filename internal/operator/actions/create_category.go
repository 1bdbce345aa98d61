package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ IAction = (*CreateCategory)(nil)

type CreateCategory struct {
	UserID int64
	Name   string
	Kind   sqlconfig.Kind
	Color  string

	Created *sqlconfig.Category
}

// Perform checks for a category with the same name and kind first; the
// unique constraint covers concurrent creations that slip past the check.
func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	duplicate, err := writer.Categories.FindByNameAndKind(ctx, c.UserID, c.Name, c.Kind)
	if err != nil {
		return domainerr.Store(err)
	}
	if duplicate != nil {
		return categoryDuplicate()
	}

	id, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID: c.UserID,
		Name:   c.Name,
		Kind:   c.Kind,
		Color:  c.Color,
	})
	if err != nil {
		return classify(err, categoryDuplicate, nil)
	}

	created, err := writer.Categories.FindByID(ctx, c.UserID, id)
	if err != nil {
		return domainerr.Store(err)
	}
	c.Created = created
	return nil
}

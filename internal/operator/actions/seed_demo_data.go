package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ IAction = (*SeedDemoData)(nil)

// SeedDemoData makes sure the demo user exists and, when it has no
// categories yet, gives it the starter set. Running it again is a no-op.
type SeedDemoData struct {
	Username   string
	Email      string
	Categories []sqlconfig.CategoryCreate

	User              *sqlconfig.User
	CreatedCategories int
}

func (s *SeedDemoData) Perform(ctx context.Context, writer *storage.Writer) error {
	user, err := writer.Users.FindByUsername(ctx, s.Username)
	if err != nil {
		return domainerr.Store(err)
	}
	if user == nil {
		id, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{Username: s.Username, Email: s.Email})
		if err != nil {
			return domainerr.Store(err)
		}
		if user, err = writer.Users.FindByID(ctx, id); err != nil {
			return domainerr.Store(err)
		}
		if user == nil {
			return domainerr.Store(fmt.Errorf("user %d missing after insert", id))
		}
	}
	s.User = user

	existing, err := writer.Categories.Count(ctx, user.ID)
	if err != nil {
		return domainerr.Store(err)
	}
	if existing > 0 {
		return nil
	}

	for _, category := range s.Categories {
		category.UserID = user.ID
		if _, err := writer.Categories.Insert(ctx, &category); err != nil {
			return domainerr.Store(err)
		}
		s.CreatedCategories++
	}
	return nil
}

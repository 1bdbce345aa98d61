package service

import "github.com/carson-networks/finance-server/internal/storage/sqlconfig"

const DefaultCategoryColor = "#FF6B35"

// Category represents a category in the service layer.
type Category struct {
	ID     int64
	Name   string
	Kind   Kind
	Color  string
	UserID int64
}

// CategoryInput is the data for a new category. An empty Color means DefaultCategoryColor.
type CategoryInput struct {
	Name  string
	Kind  string
	Color string
}

// CategoryPatch carries the fields to change. Nil fields are kept and a
// Kind other than "ingreso" or "gasto" is ignored.
type CategoryPatch struct {
	Name  *string
	Kind  *string
	Color *string
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{
		ID:     row.ID,
		Name:   row.Name,
		Kind:   kindFromStorage(row.Kind),
		Color:  row.Color,
		UserID: row.UserID,
	}
}

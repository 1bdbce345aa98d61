package sqlconfig

import "context"

// Category represents a category record.
type Category struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Kind   Kind   `db:"kind"`
	Color  string `db:"color"`
	UserID int64  `db:"user_id"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID int64
	Name   string
	Kind   Kind
	Color  string
}

// CategoryUpdate carries the columns to change. Nil fields are left untouched.
type CategoryUpdate struct {
	Name  *string
	Kind  *Kind
	Color *string
}

func (u *CategoryUpdate) IsEmpty() bool {
	return u == nil || (u.Name == nil && u.Kind == nil && u.Color == nil)
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	UserID int64
	Kind   *Kind
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, userID, id int64) (*Category, error)
	FindByNameAndKind(ctx context.Context, userID int64, name string, kind Kind) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (int64, error)
	Update(ctx context.Context, userID, id int64, update *CategoryUpdate) error
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
	Count(ctx context.Context, userID int64) (int64, error)
}

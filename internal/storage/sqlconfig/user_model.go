package sqlconfig

import (
	"context"
	"time"
)

// User represents a user record.
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username string
	Email    string
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (int64, error)
}

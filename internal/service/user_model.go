package service

import (
	"time"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// User represents a user in the service layer.
type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}

func userFromStorage(row *sqlconfig.User) User {
	return User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}

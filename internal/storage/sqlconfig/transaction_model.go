package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record joined with the name and
// color of its category.
type Transaction struct {
	ID            int64           `db:"id"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Kind          Kind            `db:"kind"`
	CreatedAt     time.Time       `db:"created_at"`
	UserID        int64           `db:"user_id"`
	CategoryID    int64           `db:"category_id"`
	CategoryName  string          `db:"category_name"`
	CategoryColor string          `db:"category_color"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      int64
	CategoryID  int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Kind        Kind
}

// TransactionUpdate carries the columns to change. Nil fields are left untouched.
type TransactionUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Kind        *Kind
	CategoryID  *int64
}

func (u *TransactionUpdate) IsEmpty() bool {
	return u == nil || (u.Description == nil && u.Amount == nil && u.Date == nil &&
		u.Kind == nil && u.CategoryID == nil)
}

// TransactionFilter specifies filters for listing transactions.
// DateFrom and DateTo are inclusive.
type TransactionFilter struct {
	UserID     int64
	Kind       *Kind
	CategoryID *int64
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, userID, id int64) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	Update(ctx context.Context, userID, id int64, update *TransactionUpdate) error
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	CountByCategory(ctx context.Context, userID, categoryID int64) (int64, error)
}

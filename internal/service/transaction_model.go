package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID            int64
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	Kind          Kind
	CreatedAt     time.Time
	UserID        int64
	CategoryID    int64
	CategoryName  string
	CategoryColor string
}

// TransactionFilter narrows List. Empty fields do not filter; dates are
// inclusive and use the YYYY-MM-DD layout.
type TransactionFilter struct {
	Kind       string
	CategoryID int64
	DateFrom   string
	DateTo     string
}

// TransactionInput is the data for a new transaction. A nil or zero Amount
// or CategoryID counts as missing; an empty Date means today.
type TransactionInput struct {
	Description string
	Amount      *decimal.Decimal
	Date        string
	Kind        string
	CategoryID  *int64
}

// TransactionPatch carries the fields to change. Nil fields are kept and a
// Kind other than "ingreso" or "gasto" is ignored.
type TransactionPatch struct {
	Description *string
	Amount      *decimal.Decimal
	Date        *string
	Kind        *string
	CategoryID  *int64
}

// Dashboard is the landing page snapshot of the current month.
type Dashboard struct {
	TotalBalance       decimal.Decimal
	MonthIncome        decimal.Decimal
	MonthExpense       decimal.Decimal
	MonthBalance       decimal.Decimal
	RecentTransactions []Transaction
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:            row.ID,
		Description:   row.Description,
		Amount:        row.Amount,
		Date:          row.Date,
		Kind:          kindFromStorage(row.Kind),
		CreatedAt:     row.CreatedAt,
		UserID:        row.UserID,
		CategoryID:    row.CategoryID,
		CategoryName:  row.CategoryName,
		CategoryColor: row.CategoryColor,
	}
}

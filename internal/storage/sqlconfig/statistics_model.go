package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodTotals holds the income and expense sums of one calendar month.
type PeriodTotals struct {
	Year    int
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotals holds the sum and count of the transactions filed under one category.
type CategoryTotals struct {
	CategoryID int64
	Name       string
	Color      string
	Total      decimal.Decimal
	Count      int64
}

type KindTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type TransactionMetrics struct {
	Count          int64
	AverageIncome  decimal.Decimal
	AverageExpense decimal.Decimal
}

// CategoryTotalsFilter selects the transactions of one kind in a year and,
// optionally, a single month of it.
type CategoryTotalsFilter struct {
	UserID int64
	Kind   Kind
	Year   int
	Month  *int
}

// IStatisticsReader defines the aggregate queries behind reports and the dashboard.
//
//go:generate mockery --name IStatisticsReader --output mock_IStatisticsReader.go
type IStatisticsReader interface {
	// MonthlyTotals returns one entry per month of year that has transactions, in calendar order.
	MonthlyTotals(ctx context.Context, userID int64, year int) ([]*PeriodTotals, error)
	// CategoryTotals returns totals ordered by total descending, then category id.
	CategoryTotals(ctx context.Context, filter *CategoryTotalsFilter) ([]*CategoryTotals, error)
	// RecentPeriodTotals returns up to limit months with transactions, newest first.
	RecentPeriodTotals(ctx context.Context, userID int64, limit int) ([]*PeriodTotals, error)
	// KindTotals sums income and expense between the inclusive dates. Nil bounds are open.
	KindTotals(ctx context.Context, userID int64, from, to *time.Time) (*KindTotals, error)
	TransactionMetrics(ctx context.Context, userID int64) (*TransactionMetrics, error)
	// TopCategory returns the category with the highest total for kind, or nil when there is none.
	TopCategory(ctx context.Context, userID int64, kind Kind) (*CategoryTotals, error)
	// BestBalancePeriod returns the month with the highest income minus expense, or nil when there is none.
	BestBalancePeriod(ctx context.Context, userID int64) (*PeriodTotals, error)
}

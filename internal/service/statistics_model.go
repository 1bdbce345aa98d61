package service

import "github.com/shopspring/decimal"

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var monthAbbreviations = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// MonthSummary is one calendar month of MonthlySummary.
type MonthSummary struct {
	Month     int
	MonthName string
	Income    decimal.Decimal
	Expense   decimal.Decimal
	Balance   decimal.Decimal
}

// BreakdownQuery selects the window of CategoryBreakdown. Zero Year means
// the current year, zero Month the whole year and an empty Kind expenses.
type BreakdownQuery struct {
	Kind  string
	Year  int
	Month int
}

// CategoryBreakdown is the share of one category in a breakdown.
type CategoryBreakdown struct {
	CategoryID int64
	Category   string
	Color      string
	Total      decimal.Decimal
	Count      int64
	Percentage decimal.Decimal
}

// TrendPeriod is one month of Trend. Label reads like "Mar 2024".
type TrendPeriod struct {
	Label   string
	Year    int
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

type KeyMetrics struct {
	TransactionCount   int64
	AverageIncome      decimal.Decimal
	AverageExpense     decimal.Decimal
	TopExpenseCategory *CategoryTotal
	BestMonth          *PeriodBalance
}

type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// PeriodBalance is the balance of one month. Period reads like "2024-03".
type PeriodBalance struct {
	Period  string
	Balance decimal.Decimal
}

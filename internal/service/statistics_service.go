package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const trendPeriods = 6

var hundred = decimal.NewFromInt(100)

// StatisticsService builds the read-only reports. Sums and counts come from
// the store; bucketing, percentages and rounding happen here.
type StatisticsService struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewStatisticsService(store *storage.Storage) *StatisticsService {
	return &StatisticsService{storage: store, now: time.Now}
}

// MonthlySummary returns exactly twelve entries, January first. A zero year
// means the current one.
func (s *StatisticsService) MonthlySummary(ctx context.Context, userID int64, year int) ([]MonthSummary, error) {
	if year == 0 {
		year = s.now().Year()
	}
	if year < 0 {
		return nil, domainerr.Validation(msgYearInvalid)
	}

	rows, err := s.storage.Statistics.MonthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, domainerr.Store(err)
	}
	return buildMonthlySummary(rows), nil
}

func buildMonthlySummary(rows []*sqlconfig.PeriodTotals) []MonthSummary {
	summary := make([]MonthSummary, 12)
	for i := range summary {
		summary[i] = MonthSummary{
			Month:     i + 1,
			MonthName: monthNames[i],
			Income:    decimal.Zero,
			Expense:   decimal.Zero,
			Balance:   decimal.Zero,
		}
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		month := &summary[row.Month-1]
		month.Income = month.Income.Add(row.Income).Round(2)
		month.Expense = month.Expense.Add(row.Expense).Round(2)
		month.Balance = month.Income.Sub(month.Expense)
	}
	return summary
}

// CategoryBreakdown returns the categories with matching transactions,
// largest total first, each with its percentage of the grand total.
func (s *StatisticsService) CategoryBreakdown(ctx context.Context, userID int64, query BreakdownQuery) ([]CategoryBreakdown, error) {
	kind := Kind(query.Kind)
	if kind == "" {
		kind = KindExpense
	}
	if !kind.Valid() {
		return nil, domainerr.Validation(msgKindInvalid)
	}
	if query.Month < 0 || query.Month > 12 {
		return nil, domainerr.Validation(msgMonthInvalid)
	}
	year := query.Year
	if year == 0 {
		year = s.now().Year()
	}
	if year < 0 {
		return nil, domainerr.Validation(msgYearInvalid)
	}

	filter := &sqlconfig.CategoryTotalsFilter{
		UserID: userID,
		Kind:   kindToStorage(kind),
		Year:   year,
	}
	if query.Month != 0 {
		filter.Month = &query.Month
	}

	rows, err := s.storage.Statistics.CategoryTotals(ctx, filter)
	if err != nil {
		return nil, domainerr.Store(err)
	}
	return buildBreakdown(rows), nil
}

func buildBreakdown(rows []*sqlconfig.CategoryTotals) []CategoryBreakdown {
	grandTotal := decimal.Zero
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.Total)
	}

	breakdown := make([]CategoryBreakdown, len(rows))
	for i, row := range rows {
		percentage := decimal.Zero
		if grandTotal.IsPositive() {
			percentage = row.Total.Div(grandTotal).Mul(hundred).Round(2)
		}
		breakdown[i] = CategoryBreakdown{
			CategoryID: row.CategoryID,
			Category:   row.Name,
			Color:      row.Color,
			Total:      row.Total.Round(2),
			Count:      row.Count,
			Percentage: percentage,
		}
	}
	// Ties keep the category id order of the store.
	slices.SortStableFunc(breakdown, func(a, b CategoryBreakdown) int {
		return b.Total.Cmp(a.Total)
	})
	return breakdown
}

// Trend returns the most recent months that have transactions, up to six,
// oldest first.
func (s *StatisticsService) Trend(ctx context.Context, userID int64) ([]TrendPeriod, error) {
	rows, err := s.storage.Statistics.RecentPeriodTotals(ctx, userID, trendPeriods)
	if err != nil {
		return nil, domainerr.Store(err)
	}
	return buildTrend(rows), nil
}

func buildTrend(newestFirst []*sqlconfig.PeriodTotals) []TrendPeriod {
	if len(newestFirst) > trendPeriods {
		newestFirst = newestFirst[:trendPeriods]
	}
	trend := make([]TrendPeriod, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		row := newestFirst[i]
		income := row.Income.Round(2)
		expense := row.Expense.Round(2)
		trend = append(trend, TrendPeriod{
			Label:   fmt.Sprintf("%s %d", monthAbbreviation(row.Month), row.Year),
			Year:    row.Year,
			Month:   row.Month,
			Income:  income,
			Expense: expense,
			Balance: income.Sub(expense),
		})
	}
	return trend
}

// KeyMetrics returns the all-time counters of userID. Ties for the top
// category and the best month go to the one whose first transaction came first.
func (s *StatisticsService) KeyMetrics(ctx context.Context, userID int64) (*KeyMetrics, error) {
	metrics, err := s.storage.Statistics.TransactionMetrics(ctx, userID)
	if err != nil {
		return nil, domainerr.Store(err)
	}
	topCategory, err := s.storage.Statistics.TopCategory(ctx, userID, sqlconfig.KindExpense)
	if err != nil {
		return nil, domainerr.Store(err)
	}
	bestPeriod, err := s.storage.Statistics.BestBalancePeriod(ctx, userID)
	if err != nil {
		return nil, domainerr.Store(err)
	}

	result := &KeyMetrics{
		TransactionCount: metrics.Count,
		AverageIncome:    metrics.AverageIncome.Round(2),
		AverageExpense:   metrics.AverageExpense.Round(2),
	}
	if topCategory != nil {
		result.TopExpenseCategory = &CategoryTotal{
			Name:  topCategory.Name,
			Total: topCategory.Total.Round(2),
		}
	}
	if bestPeriod != nil {
		result.BestMonth = &PeriodBalance{
			Period:  fmt.Sprintf("%d-%02d", bestPeriod.Year, bestPeriod.Month),
			Balance: bestPeriod.Income.Sub(bestPeriod.Expense).Round(2),
		}
	}
	return result, nil
}

func monthAbbreviation(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthAbbreviations[month-1]
}

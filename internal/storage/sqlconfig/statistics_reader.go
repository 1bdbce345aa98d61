package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

var _ IStatisticsReader = (*StatisticsReader)(nil)

var psq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var (
	incomeSum  = fmt.Sprintf("COALESCE(SUM(amount) FILTER (WHERE kind = '%s'), 0)", KindIncome)
	expenseSum = fmt.Sprintf("COALESCE(SUM(amount) FILTER (WHERE kind = '%s'), 0)", KindExpense)
)

const (
	yearExpr  = "EXTRACT(YEAR FROM date)::int"
	monthExpr = "EXTRACT(MONTH FROM date)::int"
)

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// StatisticsReader runs the aggregate queries used by reports. The
// aggregation stays in postgres; callers only bucket and round.
type StatisticsReader struct {
	db queryer
}

func NewStatisticsReader(db *sql.DB) *StatisticsReader {
	return &StatisticsReader{db: db}
}

func periodTotalsQuery(userID int64) squirrel.SelectBuilder {
	return psq.Select(
		yearExpr+" AS year",
		monthExpr+" AS month",
		incomeSum+" AS income",
		expenseSum+" AS expense",
	).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("year", "month")
}

func (r *StatisticsReader) MonthlyTotals(ctx context.Context, userID int64, year int) ([]*PeriodTotals, error) {
	q := periodTotalsQuery(userID).
		Where("EXTRACT(YEAR FROM date) = ?", year).
		OrderBy("year", "month")
	return r.queryPeriods(ctx, q)
}

func (r *StatisticsReader) RecentPeriodTotals(ctx context.Context, userID int64, limit int) ([]*PeriodTotals, error) {
	q := periodTotalsQuery(userID).
		OrderBy("year DESC", "month DESC").
		Limit(uint64(limit))
	return r.queryPeriods(ctx, q)
}

func (r *StatisticsReader) BestBalancePeriod(ctx context.Context, userID int64) (*PeriodTotals, error) {
	q := periodTotalsQuery(userID).
		OrderBy("("+incomeSum+" - "+expenseSum+") DESC", "MIN(id) ASC").
		Limit(1)
	periods, err := r.queryPeriods(ctx, q)
	if err != nil || len(periods) == 0 {
		return nil, err
	}
	return periods[0], nil
}

func (r *StatisticsReader) queryPeriods(ctx context.Context, q squirrel.SelectBuilder) ([]*PeriodTotals, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*PeriodTotals
	for rows.Next() {
		p := &PeriodTotals{}
		if err := rows.Scan(&p.Year, &p.Month, &p.Income, &p.Expense); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func categoryTotalsQuery(userID int64, kind Kind) squirrel.SelectBuilder {
	return psq.Select(
		"categories.id",
		"categories.name",
		"categories.color",
		"SUM(transactions.amount) AS total",
		"COUNT(transactions.id) AS count",
	).
		From("categories").
		Join("transactions ON transactions.category_id = categories.id").
		Where(squirrel.Eq{
			"transactions.user_id": userID,
			"transactions.kind":    string(kind),
		}).
		GroupBy("categories.id", "categories.name", "categories.color")
}

func (r *StatisticsReader) CategoryTotals(ctx context.Context, filter *CategoryTotalsFilter) ([]*CategoryTotals, error) {
	q := categoryTotalsQuery(filter.UserID, filter.Kind).
		Where("EXTRACT(YEAR FROM transactions.date) = ?", filter.Year)
	if filter.Month != nil {
		q = q.Where("EXTRACT(MONTH FROM transactions.date) = ?", *filter.Month)
	}
	q = q.OrderBy("total DESC", "categories.id ASC")
	return r.queryCategories(ctx, q)
}

func (r *StatisticsReader) TopCategory(ctx context.Context, userID int64, kind Kind) (*CategoryTotals, error) {
	q := categoryTotalsQuery(userID, kind).
		OrderBy("total DESC", "MIN(transactions.id) ASC").
		Limit(1)
	categories, err := r.queryCategories(ctx, q)
	if err != nil || len(categories) == 0 {
		return nil, err
	}
	return categories[0], nil
}

func (r *StatisticsReader) queryCategories(ctx context.Context, q squirrel.SelectBuilder) ([]*CategoryTotals, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*CategoryTotals
	for rows.Next() {
		c := &CategoryTotals{}
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Color, &c.Total, &c.Count); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *StatisticsReader) KindTotals(ctx context.Context, userID int64, from, to *time.Time) (*KindTotals, error) {
	q := psq.Select(incomeSum, expenseSum).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID})
	if from != nil {
		q = q.Where(squirrel.GtOrEq{"date": from.Format(dateLayout)})
	}
	if to != nil {
		q = q.Where(squirrel.LtOrEq{"date": to.Format(dateLayout)})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	totals := &KindTotals{}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&totals.Income, &totals.Expense); err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *StatisticsReader) TransactionMetrics(ctx context.Context, userID int64) (*TransactionMetrics, error) {
	q := psq.Select(
		"COUNT(*)",
		fmt.Sprintf("COALESCE(AVG(amount) FILTER (WHERE kind = '%s'), 0)", KindIncome),
		fmt.Sprintf("COALESCE(AVG(amount) FILTER (WHERE kind = '%s'), 0)", KindExpense),
	).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID})
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	metrics := &TransactionMetrics{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&metrics.Count, &metrics.AverageIncome, &metrics.AverageExpense)
	if errors.Is(err, sql.ErrNoRows) {
		return metrics, nil
	}
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

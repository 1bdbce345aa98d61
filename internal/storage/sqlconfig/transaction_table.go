package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{
	"transactions.id",
	"transactions.description",
	"transactions.amount",
	"transactions.date",
	"transactions.kind",
	"transactions.created_at",
	"transactions.user_id",
	"transactions.category_id",
	"categories.name AS category_name",
	"categories.color AS category_color",
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

func (t *TransactionsTable) selectMods() []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.InnerJoin("categories").On(
			psql.Quote("categories", "id").EQ(psql.Quote("transactions", "category_id")),
		),
	}
}

// FindByID retrieves a transaction owned by userID. Returns nil when no transaction matches.
func (t *TransactionsTable) FindByID(ctx context.Context, userID, id int64) (*Transaction, error) {
	queryMods := append(t.selectMods(),
		sm.Where(psql.Quote("transactions", "id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("transactions", "user_id").EQ(psql.Arg(userID))),
	)
	return findOne[Transaction](ctx, t.exec, psql.Select(queryMods...))
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	q := psql.Insert(
		im.Into("transactions", "description", "amount", "date", "kind", "user_id", "category_id"),
		im.Values(psql.Arg(
			create.Description,
			create.Amount,
			create.Date.Format(dateLayout),
			string(create.Kind),
			create.UserID,
			create.CategoryID,
		)),
		im.Returning("id"),
	)
	return insertReturningID(ctx, t.exec, q)
}

func (t *TransactionsTable) Update(ctx context.Context, userID, id int64, update *TransactionUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table("transactions")}
	if update.Description != nil {
		queryMods = append(queryMods, um.SetCol("description").ToArg(*update.Description))
	}
	if update.Amount != nil {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(*update.Amount))
	}
	if update.Date != nil {
		queryMods = append(queryMods, um.SetCol("date").ToArg(update.Date.Format(dateLayout)))
	}
	if update.Kind != nil {
		queryMods = append(queryMods, um.SetCol("kind").ToArg(string(*update.Kind)))
	}
	if update.CategoryID != nil {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(*update.CategoryID))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return exec(ctx, t.exec, psql.Update(queryMods...))
}

func (t *TransactionsTable) Delete(ctx context.Context, userID, id int64) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return exec(ctx, t.exec, q)
}

// List returns transactions matching the filter, newest date first.
// A zero Limit returns every match.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := append(t.selectMods(),
		sm.Where(psql.Quote("transactions", "user_id").EQ(psql.Arg(filter.UserID))),
	)
	if filter.Kind != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "kind").EQ(psql.Arg(string(*filter.Kind)))))
	}
	if filter.CategoryID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.DateFrom != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "date").GTE(psql.Arg(filter.DateFrom.Format(dateLayout)))))
	}
	if filter.DateTo != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "date").LTE(psql.Arg(filter.DateTo.Format(dateLayout)))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transactions", "date")).Desc(),
		sm.OrderBy(psql.Quote("transactions", "id")).Desc(),
	)
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	return findAll[Transaction](ctx, t.exec, psql.Select(queryMods...))
}

// CountByCategory reports how many transactions of userID reference categoryID.
func (t *TransactionsTable) CountByCategory(ctx context.Context, userID, categoryID int64) (int64, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	return count(ctx, t.exec, q)
}

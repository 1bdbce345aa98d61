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

var _ ICategoryTable = (*CategoriesTable)(nil)

var categoryColumns = []any{"id", "name", "kind", "color", "user_id"}

type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves a category owned by userID. Returns nil when no category matches.
func (t *CategoriesTable) FindByID(ctx context.Context, userID, id int64) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return findOne[Category](ctx, t.exec, q)
}

func (t *CategoriesTable) FindByNameAndKind(ctx context.Context, userID int64, name string, kind Kind) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Quote("kind").EQ(psql.Arg(string(kind)))),
	)
	return findOne[Category](ctx, t.exec, q)
}

// Insert creates a new category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (int64, error) {
	q := psql.Insert(
		im.Into("categories", "name", "kind", "color", "user_id"),
		im.Values(psql.Arg(create.Name, string(create.Kind), create.Color, create.UserID)),
		im.Returning("id"),
	)
	return insertReturningID(ctx, t.exec, q)
}

func (t *CategoriesTable) Update(ctx context.Context, userID, id int64, update *CategoryUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table("categories")}
	if update.Name != nil {
		queryMods = append(queryMods, um.SetCol("name").ToArg(*update.Name))
	}
	if update.Kind != nil {
		queryMods = append(queryMods, um.SetCol("kind").ToArg(string(*update.Kind)))
	}
	if update.Color != nil {
		queryMods = append(queryMods, um.SetCol("color").ToArg(*update.Color))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return exec(ctx, t.exec, psql.Update(queryMods...))
}

func (t *CategoriesTable) Delete(ctx context.Context, userID, id int64) error {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return exec(ctx, t.exec, q)
}

// List returns the categories of filter.UserID ordered by name.
func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Kind != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(string(*filter.Kind)))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return findAll[Category](ctx, t.exec, psql.Select(queryMods...))
}

func (t *CategoriesTable) Count(ctx context.Context, userID int64) (int64, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return count(ctx, t.exec, q)
}

package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

var _ IUserTable = (*UsersTable)(nil)

var userColumns = []any{"id", "username", "email", "created_at"}

type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key. Returns nil when no user matches.
func (t *UsersTable) FindByID(ctx context.Context, id int64) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return findOne[User](ctx, t.exec, q)
}

func (t *UsersTable) FindByUsername(ctx context.Context, username string) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("username").EQ(psql.Arg(username))),
	)
	return findOne[User](ctx, t.exec, q)
}

// Insert creates a new user and returns its generated ID.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (int64, error) {
	q := psql.Insert(
		im.Into("users", "username", "email"),
		im.Values(psql.Arg(create.Username, create.Email)),
		im.Returning("id"),
	)
	return insertReturningID(ctx, t.exec, q)
}

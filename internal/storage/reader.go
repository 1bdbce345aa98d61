package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Reader bundles the table accessors bound to one executor, either the
// shared pool or an open transaction.
type Reader struct {
	Users        sqlconfig.IUserTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
}

func NewReader(exec bob.Executor) Reader {
	return Reader{
		Users:        sqlconfig.NewUsersTable(exec),
		Categories:   sqlconfig.NewCategoriesTable(exec),
		Transactions: sqlconfig.NewTransactionsTable(exec),
	}
}

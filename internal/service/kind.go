package service

import "github.com/carson-networks/finance-server/internal/storage/sqlconfig"

// Kind classifies a transaction or category as income or expense.
type Kind string

const (
	KindIncome  Kind = "ingreso"
	KindExpense Kind = "gasto"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

func kindToStorage(k Kind) sqlconfig.Kind {
	switch k {
	case KindIncome:
		return sqlconfig.KindIncome
	case KindExpense:
		return sqlconfig.KindExpense
	}
	return sqlconfig.Kind(k)
}

func kindFromStorage(k sqlconfig.Kind) Kind {
	switch k {
	case sqlconfig.KindIncome:
		return KindIncome
	case sqlconfig.KindExpense:
		return KindExpense
	}
	return Kind(k)
}

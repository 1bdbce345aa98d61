package sqlconfig

// Kind is the stored classification of a transaction or category.
type Kind string

const (
	KindIncome  Kind = "ingreso"
	KindExpense Kind = "gasto"
)

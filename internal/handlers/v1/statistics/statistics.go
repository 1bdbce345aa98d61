package statistics

// MonthSummary is one calendar month of the monthly summary.
type MonthSummary struct {
	MonthName string  `json:"mes" doc:"Spanish month name"`
	Month     int     `json:"numero_mes" minimum:"1" maximum:"12" doc:"Month number"`
	Income    float64 `json:"ingresos" doc:"Income of the month"`
	Expense   float64 `json:"gastos" doc:"Expense of the month"`
	Balance   float64 `json:"balance" doc:"Income minus expense"`
}

// CategoryShare is one category of the breakdown.
type CategoryShare struct {
	CategoryID int64   `json:"categoria_id" doc:"Category id"`
	Category   string  `json:"categoria" doc:"Category name"`
	Color      string  `json:"color" doc:"Category color"`
	Total      float64 `json:"total" doc:"Sum of the matching transactions"`
	Count      int64   `json:"cantidad" doc:"Number of matching transactions"`
	Percentage float64 `json:"porcentaje" doc:"Share of the grand total, two decimals"`
}

// TrendPeriod is one month of the trend.
type TrendPeriod struct {
	Label   string  `json:"periodo" doc:"Short label, e.g. Mar 2024"`
	Year    int     `json:"año" doc:"Year"`
	Month   int     `json:"mes" doc:"Month number"`
	Income  float64 `json:"ingresos" doc:"Income of the month"`
	Expense float64 `json:"gastos" doc:"Expense of the month"`
	Balance float64 `json:"balance" doc:"Income minus expense"`
}

type TopCategory struct {
	Name  string  `json:"nombre" doc:"Category name"`
	Total float64 `json:"total" doc:"All-time expense of the category"`
}

type BestMonth struct {
	Period  string  `json:"periodo" doc:"Month, YYYY-MM"`
	Savings float64 `json:"ahorro" doc:"Income minus expense of the month"`
}

// KeyMetrics are the all-time counters of the acting user.
type KeyMetrics struct {
	TransactionCount   int64        `json:"total_transacciones" doc:"Number of transactions"`
	AverageIncome      float64      `json:"promedio_ingreso" doc:"Average income amount"`
	AverageExpense     float64      `json:"promedio_gasto" doc:"Average expense amount"`
	TopExpenseCategory *TopCategory `json:"categoria_mas_gastada" doc:"Category with the highest expense, null without expenses"`
	BestMonth          *BestMonth   `json:"mes_mayor_ahorro" doc:"Month with the highest balance, null without transactions"`
}

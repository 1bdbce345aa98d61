package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// DashboardBody is the landing page summary.
type DashboardBody struct {
	TotalBalance       float64       `json:"balance_total" doc:"All-time income minus expense"`
	MonthIncome        float64       `json:"ingresos_mes" doc:"Income of the current month"`
	MonthExpense       float64       `json:"gastos_mes" doc:"Expense of the current month"`
	MonthBalance       float64       `json:"balance_mes" doc:"Income minus expense of the current month"`
	RecentTransactions []Transaction `json:"ultimas_transacciones" doc:"The five most recent transactions"`
}

type DashboardOutput struct {
	Body DashboardBody
}

type dashboardReader interface {
	Dashboard(ctx context.Context, userID int64) (*service.Dashboard, error)
}

// DashboardHandler handles GET /api/dashboard.
type DashboardHandler struct {
	TransactionService dashboardReader
}

func NewDashboardHandler(svc dashboardReader) *DashboardHandler {
	return &DashboardHandler{TransactionService: svc}
}

func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Dashboard",
		Description: "Returns the balances of the current month, the all-time balance and the latest transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DashboardHandler) handle(ctx context.Context, _ *struct{}) (*DashboardOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("dashboardMs")
	dashboard, err := h.TransactionService.Dashboard(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	return &DashboardOutput{Body: DashboardBody{
		TotalBalance:       dashboard.TotalBalance.InexactFloat64(),
		MonthIncome:        dashboard.MonthIncome.InexactFloat64(),
		MonthExpense:       dashboard.MonthExpense.InexactFloat64(),
		MonthBalance:       dashboard.MonthBalance.InexactFloat64(),
		RecentTransactions: transactionsFromService(dashboard.RecentTransactions),
	}}, nil
}

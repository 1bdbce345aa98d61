package statistics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

type MonthlySummaryInput struct {
	Year int `query:"año" doc:"Calendar year, defaults to the current one"`
}

type MonthlySummaryOutput struct {
	Body []MonthSummary
}

type monthlySummarizer interface {
	MonthlySummary(ctx context.Context, userID int64, year int) ([]service.MonthSummary, error)
}

// MonthlySummaryHandler handles GET /api/estadisticas/resumen-mensual.
type MonthlySummaryHandler struct {
	StatisticsService monthlySummarizer
}

func NewMonthlySummaryHandler(svc monthlySummarizer) *MonthlySummaryHandler {
	return &MonthlySummaryHandler{StatisticsService: svc}
}

func (h *MonthlySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-monthly-summary",
		Method:      http.MethodGet,
		Path:        "/api/estadisticas/resumen-mensual",
		Summary:     "Monthly summary",
		Description: "Returns income, expense and balance for each of the twelve months of a year.",
		Tags:        []string{"Statistics"},
	}, h.handle)
}

func (h *MonthlySummaryHandler) handle(ctx context.Context, input *MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("monthlySummaryMs")
	months, err := h.StatisticsService.MonthlySummary(ctx, userID, input.Year)
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	resp := make([]MonthSummary, len(months))
	for i, month := range months {
		resp[i] = MonthSummary{
			MonthName: month.MonthName,
			Month:     month.Month,
			Income:    month.Income.InexactFloat64(),
			Expense:   month.Expense.InexactFloat64(),
			Balance:   month.Balance.InexactFloat64(),
		}
	}
	return &MonthlySummaryOutput{Body: resp}, nil
}

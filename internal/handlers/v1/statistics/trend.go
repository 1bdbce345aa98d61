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

type TrendOutput struct {
	Body []TrendPeriod
}

type trendReader interface {
	Trend(ctx context.Context, userID int64) ([]service.TrendPeriod, error)
}

// TrendHandler handles GET /api/estadisticas/tendencias.
type TrendHandler struct {
	StatisticsService trendReader
}

func NewTrendHandler(svc trendReader) *TrendHandler {
	return &TrendHandler{StatisticsService: svc}
}

func (h *TrendHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-trend",
		Method:      http.MethodGet,
		Path:        "/api/estadisticas/tendencias",
		Summary:     "Trend",
		Description: "Returns up to six of the most recent months with transactions, oldest first.",
		Tags:        []string{"Statistics"},
	}, h.handle)
}

func (h *TrendHandler) handle(ctx context.Context, _ *struct{}) (*TrendOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("trendMs")
	periods, err := h.StatisticsService.Trend(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	resp := make([]TrendPeriod, len(periods))
	for i, period := range periods {
		resp[i] = TrendPeriod{
			Label:   period.Label,
			Year:    period.Year,
			Month:   period.Month,
			Income:  period.Income.InexactFloat64(),
			Expense: period.Expense.InexactFloat64(),
			Balance: period.Balance.InexactFloat64(),
		}
	}
	return &TrendOutput{Body: resp}, nil
}

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

type KeyMetricsOutput struct {
	Body KeyMetrics
}

type keyMetricsReader interface {
	KeyMetrics(ctx context.Context, userID int64) (*service.KeyMetrics, error)
}

// KeyMetricsHandler handles GET /api/estadisticas/metricas.
type KeyMetricsHandler struct {
	StatisticsService keyMetricsReader
}

func NewKeyMetricsHandler(svc keyMetricsReader) *KeyMetricsHandler {
	return &KeyMetricsHandler{StatisticsService: svc}
}

func (h *KeyMetricsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-key-metrics",
		Method:      http.MethodGet,
		Path:        "/api/estadisticas/metricas",
		Summary:     "Key metrics",
		Tags:        []string{"Statistics"},
	}, h.handle)
}

func (h *KeyMetricsHandler) handle(ctx context.Context, _ *struct{}) (*KeyMetricsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("keyMetricsMs")
	metrics, err := h.StatisticsService.KeyMetrics(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	resp := KeyMetrics{
		TransactionCount: metrics.TransactionCount,
		AverageIncome:    metrics.AverageIncome.InexactFloat64(),
		AverageExpense:   metrics.AverageExpense.InexactFloat64(),
	}
	if metrics.TopExpenseCategory != nil {
		resp.TopExpenseCategory = &TopCategory{
			Name:  metrics.TopExpenseCategory.Name,
			Total: metrics.TopExpenseCategory.Total.InexactFloat64(),
		}
	}
	if metrics.BestMonth != nil {
		resp.BestMonth = &BestMonth{
			Period:  metrics.BestMonth.Period,
			Savings: metrics.BestMonth.Balance.InexactFloat64(),
		}
	}
	return &KeyMetricsOutput{Body: resp}, nil
}

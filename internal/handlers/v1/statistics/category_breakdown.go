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

type CategoryBreakdownInput struct {
	Kind  string `query:"tipo" doc:"ingreso or gasto, defaults to gasto"`
	Month int    `query:"mes" doc:"Month number 1-12, the whole year when omitted"`
	Year  int    `query:"año" doc:"Calendar year, defaults to the current one"`
}

type CategoryBreakdownOutput struct {
	Body []CategoryShare
}

type categoryBreakdowner interface {
	CategoryBreakdown(ctx context.Context, userID int64, query service.BreakdownQuery) ([]service.CategoryBreakdown, error)
}

// CategoryBreakdownHandler handles GET /api/estadisticas/por-categoria.
type CategoryBreakdownHandler struct {
	StatisticsService categoryBreakdowner
}

func NewCategoryBreakdownHandler(svc categoryBreakdowner) *CategoryBreakdownHandler {
	return &CategoryBreakdownHandler{StatisticsService: svc}
}

func (h *CategoryBreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category-breakdown",
		Method:      http.MethodGet,
		Path:        "/api/estadisticas/por-categoria",
		Summary:     "Category breakdown",
		Description: "Returns the total, count and share of each category for one kind in a year or month.",
		Tags:        []string{"Statistics"},
	}, h.handle)
}

func (h *CategoryBreakdownHandler) handle(ctx context.Context, input *CategoryBreakdownInput) (*CategoryBreakdownOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("categoryBreakdownMs")
	shares, err := h.StatisticsService.CategoryBreakdown(ctx, userID, service.BreakdownQuery{
		Kind:  input.Kind,
		Year:  input.Year,
		Month: input.Month,
	})
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	logData.AddData("categoryCount", len(shares))
	resp := make([]CategoryShare, len(shares))
	for i, share := range shares {
		resp[i] = CategoryShare{
			CategoryID: share.CategoryID,
			Category:   share.Category,
			Color:      share.Color,
			Total:      share.Total.InexactFloat64(),
			Count:      share.Count,
			Percentage: share.Percentage.InexactFloat64(),
		}
	}
	return &CategoryBreakdownOutput{Body: resp}, nil
}

package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Kind string `query:"tipo" doc:"Only categories of this kind; any other value lists all"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []Category
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	List(ctx context.Context, userID int64, kind string) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /api/categorias.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/categorias",
		Summary:     "List categories",
		Description: "Returns the categories of the acting user ordered by name.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("listCategoriesMs")
	categories, err := h.CategoryService.List(ctx, userID, input.Kind)
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	logData.AddData("categoryCount", len(categories))
	resp := make([]Category, len(categories))
	for i, c := range categories {
		resp[i] = categoryFromService(c)
	}
	return &ListCategoriesOutput{Body: resp}, nil
}

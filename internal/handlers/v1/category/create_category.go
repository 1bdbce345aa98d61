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

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	_     struct{} `json:"-" additionalProperties:"true"`
	Name  string   `json:"nombre,omitempty" maxLength:"100" doc:"Category name"`
	Kind  string   `json:"tipo,omitempty" doc:"ingreso or gasto"`
	Color string   `json:"color,omitempty" maxLength:"7" doc:"Hex color, defaults to #FF6B35"`
}

type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type CreateCategoryOutput struct {
	Status int
	Body   Category
}

type categoryCreator interface {
	Create(ctx context.Context, userID int64, input service.CategoryInput) (*service.Category, error)
}

// CreateCategoryHandler handles POST /api/categorias.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/api/categorias",
		Summary:       "Create category",
		Description:   "Creates a category. Name and kind must be unique per user.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	created, err := h.CategoryService.Create(ctx, userID, service.CategoryInput{
		Name:  input.Body.Name,
		Kind:  input.Body.Kind,
		Color: input.Body.Color,
	})
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	logData.AddData("categoryID", created.ID)
	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   categoryFromService(*created),
	}, nil
}

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

// UpdateCategoryBody lists the fields to change; omitted fields are kept.
type UpdateCategoryBody struct {
	_     struct{} `json:"-" additionalProperties:"true"`
	Name  *string  `json:"nombre,omitempty" maxLength:"100" doc:"Category name"`
	Kind  *string  `json:"tipo,omitempty" doc:"ingreso or gasto, other values are ignored"`
	Color *string  `json:"color,omitempty" maxLength:"7" doc:"Hex color"`
}

type UpdateCategoryInput struct {
	ID   int64 `path:"id" doc:"Category id"`
	Body UpdateCategoryBody
}

type UpdateCategoryOutput struct {
	Body Category
}

type categoryUpdater interface {
	Update(ctx context.Context, userID, id int64, patch service.CategoryPatch) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT /api/categorias/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/api/categorias/{id}",
		Summary:     "Update category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	logging.GetLogData(ctx).AddData("categoryID", input.ID)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	updated, err := h.CategoryService.Update(ctx, userID, input.ID, service.CategoryPatch{
		Name:  input.Body.Name,
		Kind:  input.Body.Kind,
		Color: input.Body.Color,
	})
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}
	return &UpdateCategoryOutput{Body: categoryFromService(*updated)}, nil
}

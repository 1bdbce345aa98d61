package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
)

const msgCategoryDeleted = "Categoría eliminada correctamente"

type DeleteCategoryInput struct {
	ID int64 `path:"id" doc:"Category id"`
}

type DeleteCategoryOutput struct {
	Body MessageResponse
}

type categoryDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// DeleteCategoryHandler handles DELETE /api/categorias/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/api/categorias/{id}",
		Summary:     "Delete category",
		Description: "Deletes a category that no transaction references.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	logging.GetLogData(ctx).AddData("categoryID", input.ID)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	if err := h.CategoryService.Delete(ctx, userID, input.ID); err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}
	return &DeleteCategoryOutput{Body: MessageResponse{Message: msgCategoryDeleted}}, nil
}

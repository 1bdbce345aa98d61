package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
)

const msgTransactionDeleted = "Transacción eliminada correctamente"

type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

type DeleteTransactionOutput struct {
	Body MessageResponse
}

type transactionDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// DeleteTransactionHandler handles DELETE /api/transacciones/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/transacciones/{id}",
		Summary:     "Delete transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("transactionID", input.ID)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	if err := h.TransactionService.Delete(ctx, userID, input.ID); err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}
	return &DeleteTransactionOutput{Body: MessageResponse{Message: msgTransactionDeleted}}, nil
}

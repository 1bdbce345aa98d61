package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateTransactionBody lists the fields to change; omitted fields are kept.
type UpdateTransactionBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Description *string  `json:"descripcion,omitempty" maxLength:"200" doc:"Description"`
	Amount      *float64 `json:"monto,omitempty" doc:"Amount, rounded to two decimals"`
	Date        *string  `json:"fecha,omitempty" doc:"Transaction date, YYYY-MM-DD"`
	Kind        *string  `json:"tipo,omitempty" doc:"ingreso or gasto, other values are ignored"`
	CategoryID  *int64   `json:"categoria_id,omitempty" doc:"Category id"`
}

type UpdateTransactionInput struct {
	ID   int64 `path:"id" doc:"Transaction id"`
	Body UpdateTransactionBody
}

type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	Update(ctx context.Context, userID, id int64, patch service.TransactionPatch) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /api/transacciones/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transacciones/{id}",
		Summary:     "Update transaction",
		Description: "Changes the given fields of a transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) service.TransactionPatch {
	patch := service.TransactionPatch{
		Description: input.Body.Description,
		Date:        input.Body.Date,
		Kind:        input.Body.Kind,
		CategoryID:  input.Body.CategoryID,
	}
	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		patch.Amount = &amount
	}
	return patch
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("transactionID", input.ID)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("updateTransactionMs")
	updated, err := h.TransactionService.Update(ctx, userID, input.ID, parseUpdateTransactionInput(input))
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	return &UpdateTransactionOutput{Body: transactionFromService(*updated)}, nil
}

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

// CreateTransactionBody is the request body for creating a transaction.
// Required fields are checked by the service so that the messages match the
// rest of the API.
type CreateTransactionBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Description string   `json:"descripcion,omitempty" maxLength:"200" doc:"Description"`
	Amount      *float64 `json:"monto,omitempty" nullable:"true" doc:"Amount, rounded to two decimals"`
	Date        string   `json:"fecha,omitempty" doc:"Transaction date, YYYY-MM-DD, defaults to today"`
	Kind        string   `json:"tipo,omitempty" doc:"ingreso or gasto"`
	CategoryID  *int64   `json:"categoria_id,omitempty" nullable:"true" doc:"Category id"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, userID int64, input service.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /api/transacciones.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/transacciones",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction for the acting user.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) service.TransactionInput {
	parsed := service.TransactionInput{
		Description: input.Body.Description,
		Date:        input.Body.Date,
		Kind:        input.Body.Kind,
		CategoryID:  input.Body.CategoryID,
	}
	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		parsed.Amount = &amount
	}
	return parsed
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("createTransactionMs")
	created, err := h.TransactionService.Create(ctx, userID, parseCreateTransactionInput(input))
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	logData.AddData("transactionID", created.ID)
	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionFromService(*created),
	}, nil
}

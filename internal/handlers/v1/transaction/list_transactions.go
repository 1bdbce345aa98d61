package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Kind       string `query:"tipo" doc:"Only transactions of this kind (ingreso or gasto)"`
	CategoryID int64  `query:"categoria_id" doc:"Only transactions of this category"`
	DateFrom   string `query:"fecha_inicio" doc:"Inclusive lower bound, YYYY-MM-DD"`
	DateTo     string `query:"fecha_fin" doc:"Inclusive upper bound, YYYY-MM-DD"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, userID int64, filter service.TransactionFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /api/transacciones.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transacciones",
		Summary:     "List transactions",
		Description: "Returns the transactions of the acting user, newest first, optionally filtered by kind, category and date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) service.TransactionFilter {
	return service.TransactionFilter{
		Kind:       input.Kind,
		CategoryID: input.CategoryID,
		DateFrom:   input.DateFrom,
		DateTo:     input.DateTo,
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	transactions, err := h.TransactionService.List(ctx, userID, parseListTransactionsInput(input))
	stopTimer()
	if err != nil {
		return nil, apierror.FromDomain(ctx, err)
	}

	logData.AddData("transactionCount", len(transactions))
	return &ListTransactionsOutput{Body: transactionsFromService(transactions)}, nil
}

package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/service"
)

const testUserID int64 = 1

// mockTransactionService is a mock for all transaction service interfaces.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) List(ctx context.Context, userID int64, filter service.TransactionFilter) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	transactions, _ := args.Get(0).([]service.Transaction)
	return transactions, args.Error(1)
}

func (m *mockTransactionService) Create(ctx context.Context, userID int64, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, userID, input)
	created, _ := args.Get(0).(*service.Transaction)
	return created, args.Error(1)
}

func (m *mockTransactionService) Update(ctx context.Context, userID, id int64, patch service.TransactionPatch) (*service.Transaction, error) {
	args := m.Called(ctx, userID, id, patch)
	updated, _ := args.Get(0).(*service.Transaction)
	return updated, args.Error(1)
}

func (m *mockTransactionService) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockTransactionService) Dashboard(ctx context.Context, userID int64) (*service.Dashboard, error) {
	args := m.Called(ctx, userID)
	dashboard, _ := args.Get(0).(*service.Dashboard)
	return dashboard, args.Error(1)
}

// newTestAPI registers every transaction handler against a humatest API
// whose requests act as testUserID.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	config := huma.DefaultConfig("Finanzas API", "1.0.0")
	config.CreateHooks = nil
	_, api := humatest.New(t, config)
	api.UseMiddleware(identity.Middleware(testUserID))
	NewListTransactionsHandler(svc).Register(api)
	NewCreateTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	NewDashboardHandler(svc).Register(api)
	return api
}

func sampleTransaction(id int64) service.Transaction {
	return service.Transaction{
		ID:            id,
		Description:   "Supermercado",
		Amount:        decimal.RequireFromString("45.50"),
		Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Kind:          service.KindExpense,
		CreatedAt:     time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		UserID:        testUserID,
		CategoryID:    3,
		CategoryName:  "Alimentación",
		CategoryColor: "#FF6B35",
	}
}

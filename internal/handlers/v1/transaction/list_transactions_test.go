package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/service"
)

func TestParseListTransactionsInput(t *testing.T) {
	filter := parseListTransactionsInput(&ListTransactionsInput{
		Kind:       "gasto",
		CategoryID: 3,
		DateFrom:   "2024-03-01",
		DateTo:     "2024-03-31",
	})

	assert.Equal(t, service.TransactionFilter{
		Kind:       "gasto",
		CategoryID: 3,
		DateFrom:   "2024-03-01",
		DateTo:     "2024-03-31",
	}, filter)
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("List", mock.Anything, testUserID, service.TransactionFilter{Kind: "gasto", CategoryID: 3}).
		Return([]service.Transaction{sampleTransaction(2), sampleTransaction(1)}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/transacciones?tipo=gasto&categoria_id=3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, float64(2), body[0]["id"])
	assert.Equal(t, "Supermercado", body[0]["descripcion"])
	assert.Equal(t, 45.5, body[0]["monto"])
	assert.Equal(t, "2024-03-15", body[0]["fecha"])
	assert.Equal(t, "gasto", body[0]["tipo"])
	assert.Equal(t, "2024-03-15T09:30:00Z", body[0]["fecha_creacion"])
	assert.Equal(t, float64(1), body[0]["usuario_id"])
	assert.Equal(t, float64(3), body[0]["categoria_id"])
	assert.Equal(t, "Alimentación", body[0]["categoria_nombre"])
	assert.Equal(t, "#FF6B35", body[0]["categoria_color"])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("List", mock.Anything, testUserID, service.TransactionFilter{}).
		Return([]service.Transaction{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/transacciones")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestHTTP_ListTransactions_MalformedDate(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("List", mock.Anything, testUserID, mock.Anything).
		Return(nil, domainerr.Format("Formato de fecha inválido, use AAAA-MM-DD", errors.New("parse")))

	resp := newTestAPI(t, mockSvc).Get("/api/transacciones?fecha_inicio=01-03-2024")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Formato de fecha inválido, use AAAA-MM-DD"}`, resp.Body.String())
}

func TestHTTP_ListTransactions_InvalidCategoryID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Get("/api/transacciones?categoria_id=abc")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "List")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("List", mock.Anything, testUserID, mock.Anything).
		Return(nil, domainerr.Store(errors.New("database unavailable")))

	resp := newTestAPI(t, mockSvc).Get("/api/transacciones")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"error interno del servidor"}`, resp.Body.String())
}

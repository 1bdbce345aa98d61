package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

type inlineProcessor struct {
	writer *storage.Writer
}

func (p inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.writer)
}

func newTestServer(t *testing.T, pingErr error) (*httptest.Server, *sqlconfig.MockICategoryTable) {
	t.Helper()
	categories := sqlconfig.NewMockICategoryTable(t)
	store := &storage.Storage{
		Reader: storage.Reader{
			Users:        sqlconfig.NewMockIUserTable(t),
			Categories:   categories,
			Transactions: sqlconfig.NewMockITransactionTable(t),
		},
		Statistics: sqlconfig.NewMockIStatisticsReader(t),
	}
	processor := inlineProcessor{writer: storage.NewWriter(nil, store.Reader)}

	logger := logging.SetupLogging()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)

	rest := &Rest{
		Logger:         logger,
		Service:        service.NewService(store, processor, nil),
		UserID:         7,
		AllowedOrigins: []string{"http://localhost:5173"},
		Pinger:         fakePinger{err: pingErr},
	}
	server := httptest.NewServer(rest.Handler())
	t.Cleanup(server.Close)
	return server, categories
}

func TestStatus(t *testing.T) {
	server, _ := newTestServer(t, nil)

	resp, err := http.Get(server.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatus_DatabaseDown(t *testing.T) {
	server, _ := newTestServer(t, errors.New("connection refused"))

	resp, err := http.Get(server.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAPI_UsesConfiguredIdentity(t *testing.T) {
	server, categories := newTestServer(t, nil)
	categories.EXPECT().List(mock.Anything, &sqlconfig.CategoryFilter{UserID: 7}).Return([]*sqlconfig.Category{
		{ID: 1, Name: "Salud", Kind: sqlconfig.KindExpense, Color: "#FF6348", UserID: 7},
	}, nil)

	resp, err := http.Get(server.URL + "/api/categorias")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(logging.RequestIDHeader))
	assert.JSONEq(t, `[{"id":1,"nombre":"Salud","tipo":"gasto","color":"#FF6348","usuario_id":7}]`, string(body))
}

func TestAPI_CORSPreflight(t *testing.T) {
	server, _ := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/transacciones", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestAPI_OpenAPIDocument(t *testing.T) {
	server, _ := newTestServer(t, nil)

	resp, err := http.Get(server.URL + "/openapi.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/api/estadisticas/resumen-mensual")
}

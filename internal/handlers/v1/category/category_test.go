package category

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/service"
)

const testUserID int64 = 1

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) List(ctx context.Context, userID int64, kind string) ([]service.Category, error) {
	args := m.Called(ctx, userID, kind)
	categories, _ := args.Get(0).([]service.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryService) Create(ctx context.Context, userID int64, input service.CategoryInput) (*service.Category, error) {
	args := m.Called(ctx, userID, input)
	created, _ := args.Get(0).(*service.Category)
	return created, args.Error(1)
}

func (m *mockCategoryService) Update(ctx context.Context, userID, id int64, patch service.CategoryPatch) (*service.Category, error) {
	args := m.Called(ctx, userID, id, patch)
	updated, _ := args.Get(0).(*service.Category)
	return updated, args.Error(1)
}

func (m *mockCategoryService) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func newTestAPI(t *testing.T, svc *mockCategoryService) humatest.TestAPI {
	t.Helper()
	config := huma.DefaultConfig("Finanzas API", "1.0.0")
	config.CreateHooks = nil
	_, api := humatest.New(t, config)
	api.UseMiddleware(identity.Middleware(testUserID))
	NewListCategoriesHandler(svc).Register(api)
	NewCreateCategoryHandler(svc).Register(api)
	NewUpdateCategoryHandler(svc).Register(api)
	NewDeleteCategoryHandler(svc).Register(api)
	return api
}

func TestHTTP_ListCategories(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("List", mock.Anything, testUserID, "ingreso").Return([]service.Category{
		{ID: 7, Name: "Freelance", Kind: service.KindIncome, Color: "#27AE60", UserID: testUserID},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/categorias?tipo=ingreso")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"id":7,"nombre":"Freelance","tipo":"ingreso","color":"#27AE60","usuario_id":1}]`, resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCategories_ServiceError(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("List", mock.Anything, testUserID, "").Return(nil, domainerr.Store(errors.New("down")))

	resp := newTestAPI(t, mockSvc).Get("/api/categorias")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Create", mock.Anything, testUserID, service.CategoryInput{Name: "Mascotas", Kind: "gasto"}).
		Return(&service.Category{ID: 9, Name: "Mascotas", Kind: service.KindExpense, Color: service.DefaultCategoryColor, UserID: testUserID}, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/categorias", map[string]any{"nombre": "Mascotas", "tipo": "gasto"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(9), body.ID)
	assert.Equal(t, "#FF6B35", body.Color)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_Duplicate(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Create", mock.Anything, testUserID, mock.Anything).
		Return(nil, domainerr.Conflict("Ya existe una categoría con ese nombre y tipo"))

	resp := newTestAPI(t, mockSvc).Post("/api/categorias", map[string]any{"nombre": "Alimentación", "tipo": "gasto"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Ya existe una categoría con ese nombre y tipo"}`, resp.Body.String())
}

func TestHTTP_CategoryBodyLimits(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   map[string]any
	}{
		{"create name", http.MethodPost, "/api/categorias", map[string]any{"nombre": strings.Repeat("n", 101), "tipo": "gasto"}},
		{"create color", http.MethodPost, "/api/categorias", map[string]any{"nombre": "Viajes", "tipo": "gasto", "color": "#FF6B35FF"}},
		{"update name", http.MethodPut, "/api/categorias/5", map[string]any{"nombre": strings.Repeat("n", 101)}},
		{"update color", http.MethodPut, "/api/categorias/5", map[string]any{"color": "#FF6B35FF"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(mockCategoryService)

			resp := newTestAPI(t, mockSvc).Do(tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.True(t, strings.HasPrefix(resp.Body.String(), `{"error":`))
			mockSvc.AssertNotCalled(t, "Create")
			mockSvc.AssertNotCalled(t, "Update")
		})
	}
}

func TestHTTP_UpdateCategory(t *testing.T) {
	color := "#000000"
	mockSvc := new(mockCategoryService)
	mockSvc.On("Update", mock.Anything, testUserID, int64(5), service.CategoryPatch{Color: &color}).
		Return(&service.Category{ID: 5, Name: "Salud", Kind: service.KindExpense, Color: color, UserID: testUserID}, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/categorias/5", map[string]any{"color": color})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, color, body.Color)
}

func TestHTTP_UpdateCategory_NotFound(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Update", mock.Anything, testUserID, int64(5), mock.Anything).
		Return(nil, domainerr.NotFound("Categoría no encontrada"))

	resp := newTestAPI(t, mockSvc).Put("/api/categorias/5", map[string]any{"nombre": "Médico"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteCategory(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Delete", mock.Anything, testUserID, int64(8)).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/categorias/8")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Categoría eliminada correctamente"}`, resp.Body.String())
}

func TestHTTP_DeleteCategory_InUse(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Delete", mock.Anything, testUserID, int64(1)).
		Return(domainerr.Conflict("No se puede eliminar una categoría que tiene transacciones asociadas"))

	resp := newTestAPI(t, mockSvc).Delete("/api/categorias/1")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"No se puede eliminar una categoría que tiene transacciones asociadas"}`, resp.Body.String())
}

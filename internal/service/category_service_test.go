package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/events"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func newTestCategoryService(t *testing.T) (*CategoryService, *testDeps) {
	t.Helper()
	store, deps := newTestDeps(t)
	return NewCategoryService(store, deps.processor, deps.publisher), deps
}

func TestCategoryList_FiltersValidKind(t *testing.T) {
	svc, deps := newTestCategoryService(t)
	deps.categories.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.CategoryFilter) bool {
		return f.UserID == 1 && f.Kind != nil && *f.Kind == sqlconfig.KindIncome
	})).Return([]*sqlconfig.Category{
		{ID: 7, Name: "Freelance", Kind: sqlconfig.KindIncome, Color: "#27AE60", UserID: 1},
		{ID: 6, Name: "Salario", Kind: sqlconfig.KindIncome, Color: "#2ECC71", UserID: 1},
	}, nil)

	categories, err := svc.List(context.Background(), 1, "ingreso")

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Freelance", categories[0].Name)
	assert.Equal(t, KindIncome, categories[0].Kind)
}

func TestCategoryList_IgnoresInvalidKind(t *testing.T) {
	svc, deps := newTestCategoryService(t)
	deps.categories.EXPECT().List(mock.Anything, &sqlconfig.CategoryFilter{UserID: 1}).Return(nil, nil)

	categories, err := svc.List(context.Background(), 1, "otro")

	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryCreate_DefaultColor(t *testing.T) {
	svc, deps := newTestCategoryService(t)
	deps.categories.EXPECT().FindByNameAndKind(mock.Anything, int64(1), "Mascotas", sqlconfig.KindExpense).Return(nil, nil)
	deps.categories.EXPECT().Insert(mock.Anything, &sqlconfig.CategoryCreate{
		UserID: 1,
		Name:   "Mascotas",
		Kind:   sqlconfig.KindExpense,
		Color:  DefaultCategoryColor,
	}).Return(int64(9), nil)
	deps.categories.EXPECT().FindByID(mock.Anything, int64(1), int64(9)).Return(&sqlconfig.Category{
		ID: 9, Name: "Mascotas", Kind: sqlconfig.KindExpense, Color: DefaultCategoryColor, UserID: 1,
	}, nil)

	created, err := svc.Create(context.Background(), 1, CategoryInput{Name: "Mascotas", Kind: "gasto"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, DefaultCategoryColor, created.Color)
	assert.Equal(t, []events.Type{events.CategoryCreated}, deps.publisher.types())
}

func TestCategoryCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   CategoryInput
		message string
	}{
		{"empty name", CategoryInput{Name: "", Kind: "gasto"}, "El nombre es requerido"},
		{"name too long", CategoryInput{Name: strings.Repeat("n", 101), Kind: "gasto"}, "El nombre no puede superar los 100 caracteres"},
		{"color too long", CategoryInput{Name: "Viajes", Kind: "gasto", Color: "#FF6B35A"}, "El color no puede superar los 7 caracteres"},
		{"bad kind", CategoryInput{Name: "Viajes", Kind: "expense"}, `El tipo debe ser "ingreso" o "gasto"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestCategoryService(t)

			_, err := svc.Create(context.Background(), 1, tt.input)

			assert.ErrorIs(t, err, domainerr.ErrValidation)
			assert.Equal(t, tt.message, domainerr.Message(err))
			assert.Empty(t, deps.processor.processed)
		})
	}
}

func TestCategoryCreate_Duplicate(t *testing.T) {
	svc, deps := newTestCategoryService(t)
	deps.categories.EXPECT().FindByNameAndKind(mock.Anything, int64(1), "Salud", sqlconfig.KindExpense).
		Return(&sqlconfig.Category{ID: 5}, nil)

	_, err := svc.Create(context.Background(), 1, CategoryInput{Name: "Salud", Kind: "gasto"})

	assert.ErrorIs(t, err, domainerr.ErrConflict)
	assert.Empty(t, deps.publisher.types())
}

func TestCategoryUpdate(t *testing.T) {
	svc, deps := newTestCategoryService(t)
	color := "#000000"
	deps.categories.EXPECT().FindByID(mock.Anything, int64(1), int64(5)).Return(&sqlconfig.Category{
		ID: 5, Name: "Salud", Kind: sqlconfig.KindExpense, Color: color, UserID: 1,
	}, nil)
	deps.categories.EXPECT().Update(mock.Anything, int64(1), int64(5), &sqlconfig.CategoryUpdate{Color: &color}).Return(nil)

	updated, err := svc.Update(context.Background(), 1, 5, CategoryPatch{Color: &color, Kind: ptr("x")})

	require.NoError(t, err)
	assert.Equal(t, color, updated.Color)
	assert.Equal(t, []events.Type{events.CategoryUpdated}, deps.publisher.types())
}

func TestCategoryUpdate_RejectsValuesPastTheLimits(t *testing.T) {
	tests := []struct {
		name    string
		patch   CategoryPatch
		message string
	}{
		{"name", CategoryPatch{Name: ptr(strings.Repeat("n", 101))}, "El nombre no puede superar los 100 caracteres"},
		{"color", CategoryPatch{Color: ptr("#00000000")}, "El color no puede superar los 7 caracteres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestCategoryService(t)

			_, err := svc.Update(context.Background(), 1, 5, tt.patch)

			assert.ErrorIs(t, err, domainerr.ErrValidation)
			assert.Equal(t, tt.message, domainerr.Message(err))
			assert.Empty(t, deps.processor.processed)
		})
	}
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	svc, deps := newTestCategoryService(t)
	deps.categories.EXPECT().FindByID(mock.Anything, int64(1), int64(5)).Return(nil, nil)

	_, err := svc.Update(context.Background(), 1, 5, CategoryPatch{Name: ptr("Médico")})

	assert.ErrorIs(t, err, domainerr.ErrNotFound)
	assert.Equal(t, "Categoría no encontrada", domainerr.Message(err))
}

func TestCategoryDelete(t *testing.T) {
	svc, deps := newTestCategoryService(t)
	deps.categories.EXPECT().FindByID(mock.Anything, int64(1), int64(8)).Return(&sqlconfig.Category{ID: 8}, nil)
	deps.transactions.EXPECT().CountByCategory(mock.Anything, int64(1), int64(8)).Return(int64(0), nil)
	deps.categories.EXPECT().Delete(mock.Anything, int64(1), int64(8)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1, 8))
	assert.Equal(t, []events.Type{events.CategoryDeleted}, deps.publisher.types())
}

func TestCategoryDelete_InUse(t *testing.T) {
	svc, deps := newTestCategoryService(t)
	deps.categories.EXPECT().FindByID(mock.Anything, int64(1), int64(1)).Return(&sqlconfig.Category{ID: 1}, nil)
	deps.transactions.EXPECT().CountByCategory(mock.Anything, int64(1), int64(1)).Return(int64(4), nil)

	err := svc.Delete(context.Background(), 1, 1)

	assert.ErrorIs(t, err, domainerr.ErrConflict)
	assert.Equal(t, "No se puede eliminar una categoría que tiene transacciones asociadas", domainerr.Message(err))
	assert.Empty(t, deps.publisher.types())
}

package domainerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("La descripción es requerida"), http.StatusBadRequest},
		{"reference", Reference("La categoría no existe"), http.StatusBadRequest},
		{"conflict", Conflict("Ya existe una categoría con ese nombre y tipo"), http.StatusBadRequest},
		{"format", Format("Fecha inválida", errors.New("parse")), http.StatusBadRequest},
		{"not found", NotFound("Transacción no encontrada"), http.StatusNotFound},
		{"store", Store(errors.New("connection refused")), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("creating: %w", Conflict("dup")), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestStore(t *testing.T) {
	assert.NoError(t, Store(nil))

	conflict := Conflict("dup")
	assert.Same(t, conflict, Store(conflict))

	cause := errors.New("connection refused")
	err := Store(cause)
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "error interno del servidor: connection refused", err.Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "La categoría no existe", Message(Reference("La categoría no existe")))
	assert.Equal(t, "Fecha inválida", Message(Format("Fecha inválida", errors.New("parse"))))
	assert.Equal(t, "error interno del servidor", Message(errors.New("pq: connection refused")))
}

func TestIs_DistinguishesKinds(t *testing.T) {
	err := NotFound("Categoría no encontrada")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrStore)
}

package apierror

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-server/internal/domainerr"
)

func TestNew_ValidationBecomesBadRequest(t *testing.T) {
	err := huma.NewError(http.StatusUnprocessableEntity, "validation failed", &huma.ErrorDetail{
		Message:  "expected number",
		Location: "body.monto",
	})

	assert.Equal(t, http.StatusBadRequest, err.GetStatus())
	assert.Contains(t, err.Error(), "validation failed: expected number")
}

func TestNew_HidesCauseOfServerErrors(t *testing.T) {
	err := New(http.StatusInternalServerError, "failed", errors.New("dial tcp: refused"))

	assert.Equal(t, http.StatusInternalServerError, err.GetStatus())
	assert.Equal(t, "failed", err.Error())
}

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", domainerr.Validation("El nombre es requerido"), http.StatusBadRequest, "El nombre es requerido"},
		{"conflict", domainerr.Conflict("duplicada"), http.StatusBadRequest, "duplicada"},
		{"not found", domainerr.NotFound("Categoría no encontrada"), http.StatusNotFound, "Categoría no encontrada"},
		{"store", domainerr.Store(errors.New("connection reset")), http.StatusInternalServerError, "error interno del servidor"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "error interno del servidor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromDomain(context.Background(), tt.err)

			var apiErr *Error
			assert.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.GetStatus())
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

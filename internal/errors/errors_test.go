package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "backoffice/internal/errors"
)

func TestMapToHTTPStatus_TypedErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
		message  string
	}{
		{"validation", apperror.NewValidationError("Username is required"), http.StatusBadRequest, apperror.CategoryValidation, "Username is required"},
		{"not found", apperror.NewNotFoundError("Seller not found"), http.StatusNotFound, apperror.CategoryNotFound, "Seller not found"},
		{"missing token", apperror.NewMissingTokenError(), http.StatusUnauthorized, apperror.CategoryMissingToken, "No token provided"},
		{"invalid token", apperror.NewInvalidTokenError(), http.StatusUnauthorized, apperror.CategoryInvalidToken, "Invalid token"},
		{"invalid credentials", apperror.NewInvalidCredentialsError(), http.StatusUnauthorized, apperror.CategoryInvalidCredentials, "Invalid credentials"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, message := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestMapToHTTPStatus_InternalHidesCause(t *testing.T) {
	err := apperror.NewDBError("Falha ao buscar vendedor", fmt.Errorf("pq: relation \"sellers\" does not exist"))

	status, category, message := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apperror.CategoryInternal, category)
	assert.Equal(t, "Internal server error", message)
	assert.NotContains(t, message, "pq:")
	// A causa continua disponível para o log.
	assert.Contains(t, err.Error(), "relation \"sellers\" does not exist")
}

func TestMapToHTTPStatus_WrappedAndUntyped(t *testing.T) {
	wrapped := fmt.Errorf("camada de serviço: %w", apperror.NewNotFoundError("Event not found"))
	status, _, message := apperror.MapToHTTPStatus(wrapped)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Event not found", message)

	status, category, message := apperror.MapToHTTPStatus(fmt.Errorf("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apperror.CategoryInternal, category)
	assert.Equal(t, "Internal server error", message)
}

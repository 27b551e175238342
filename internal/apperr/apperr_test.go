package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"catalog/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Status(t *testing.T) {
	tests := []struct {
		name string
		err  *apperr.Error
		want int
	}{
		{"invalid combination", apperr.NewInvalidCombination("cannot send name with price"), http.StatusBadRequest},
		{"missing parameter", apperr.NewMissingParameter("parameter cannot be missing"), http.StatusBadRequest},
		{"empty parameter", apperr.NewEmptyParameter("parameter cannot be empty"), http.StatusBadRequest},
		{"negative value", apperr.NewNegativeValue("price cannot be less than zero"), http.StatusBadRequest},
		{"validation failed", apperr.NewValidationFailed("item could not be created", nil), http.StatusBadRequest},
		{"not found", apperr.NewNotFound("Item", 3), http.StatusNotFound},
		{"store not found", apperr.NewStoreNotFound("Item", 3, nil), http.StatusNotFound},
		{"internal", apperr.NewInternal("boom", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status(false))
			assert.Equal(t, tt.want, tt.err.Status(true))
		})
	}
}

func TestError_LegacyStatusOverride(t *testing.T) {
	err := apperr.NewValidationFailed("item could not be updated", nil).WithLegacyStatus(http.StatusNotFound)

	assert.Equal(t, http.StatusBadRequest, err.Status(false))
	assert.Equal(t, http.StatusNotFound, err.Status(true))
}

func TestError_MessagesReferenceID(t *testing.T) {
	assert.Equal(t, "Merchant with id 42 does not exist", apperr.NewNotFound("Merchant", 42).Message)
	assert.Equal(t, "Couldn't find Item with 'id'=7", apperr.NewStoreNotFound("Item", 7, nil).Message)
}

func TestAsAndIsKind(t *testing.T) {
	cause := errors.New("record not found")
	wrapped := fmt.Errorf("loading merchant: %w", apperr.NewStoreNotFound("Merchant", 1, cause))

	appErr, ok := apperr.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, apperr.OriginStore, appErr.Origin)
	assert.True(t, apperr.IsKind(wrapped, apperr.NotFound))
	assert.False(t, apperr.IsKind(wrapped, apperr.ValidationFailed))
	assert.ErrorIs(t, wrapped, cause)

	_, ok = apperr.As(errors.New("plain"))
	assert.False(t, ok)
}

func TestKind_Code(t *testing.T) {
	assert.Equal(t, "NEGATIVE_VALUE", apperr.NegativeValue.Code())
	assert.Equal(t, "INTERNAL_SERVER_ERROR", apperr.Kind(99).Code())
}

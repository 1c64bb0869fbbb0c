package errx_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/errx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", fmt.Errorf("username is empty: %w", domain.ErrInvalidInput), http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not authenticated", domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{"duplicate username", fmt.Errorf("username[bob]: %w", domain.ErrDuplicateUsername), http.StatusConflict},
		{"checkout in progress", domain.ErrCheckoutInProgress, http.StatusConflict},
		{"empty cart", domain.ErrEmptyCart, http.StatusUnprocessableEntity},
		{"not found", fmt.Errorf("order[1]: %w", domain.ErrNotFound), http.StatusNotFound},
		{"storage", fmt.Errorf("q.InsertOrder: %w: %w", domain.ErrStorage, errors.New("boom")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"redis failure", errx.WrapRedis(errors.New("dial tcp")), http.StatusBadGateway},
		{"redis nil", errx.WrapRedis(redis.Nil), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := errx.From(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantStatus, appErr.Status)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestFromNil(t *testing.T) {
	assert.Nil(t, errx.From(nil))
	assert.NoError(t, errx.WrapRedis(nil))
}

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "cart is empty", errx.New(nil, http.StatusUnprocessableEntity, "cart is empty").Error())
	assert.Equal(t, "not found: boom", errx.New(errors.New("boom"), http.StatusNotFound, "not found").Error())
}

func TestFromInvalidInputMessage(t *testing.T) {
	appErr := errx.From(fmt.Errorf("product id: %w", domain.ErrInvalidInput))
	assert.Equal(t, "invalid input", appErr.Message)

	// a call site may attach its own message
	wrapped := fmt.Errorf("register: %w", errx.New(domain.ErrInvalidInput, http.StatusBadRequest, "username and password are required"))
	assert.Equal(t, "username and password are required", errx.From(wrapped).Message)
}

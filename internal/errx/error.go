package errx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// SystemErrorMessage is the user-facing fallback for internal errors.
	SystemErrorMessage = "something went wrong, please try again"
	// RedisErrorMessage describes session store failures.
	RedisErrorMessage = "session store unavailable"
	// RedisNotFoundMessage is used when a key is missing.
	RedisNotFoundMessage = "session not found"
)

// AppError wraps an underlying error with an HTTP status and a safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// WrapRedis maps redis errors to AppError; redis.Nil becomes 404.
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		return New(err, http.StatusNotFound, RedisNotFoundMessage)
	}

	return New(err, http.StatusBadGateway, RedisErrorMessage)
}

// From converts any error into an AppError, classifying storefront error kinds.
// An AppError already in the chain is returned as is.
func From(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return New(err, http.StatusBadRequest, "invalid input")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return New(err, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrNotAuthenticated):
		return New(err, http.StatusUnauthorized, "please log in")
	case errors.Is(err, domain.ErrDuplicateUsername):
		return New(err, http.StatusConflict, "username already exists")
	case errors.Is(err, domain.ErrCheckoutInProgress):
		return New(err, http.StatusConflict, "checkout already in progress")
	case errors.Is(err, domain.ErrEmptyCart):
		return New(err, http.StatusUnprocessableEntity, "cart is empty")
	case errors.Is(err, domain.ErrNotFound):
		return New(err, http.StatusNotFound, "not found")
	default:
		return New(err, http.StatusInternalServerError, SystemErrorMessage)
	}
}

package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrStorage            = errors.New("storage failure")
	ErrNotFound           = errors.New("not found")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

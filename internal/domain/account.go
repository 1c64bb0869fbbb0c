package domain

type Account struct {
	ID       int64
	Username string
	// Password is stored and compared as an opaque string.
	Password string
}

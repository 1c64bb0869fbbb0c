package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

const uniqueViolation = "23505"

type accountRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewAccount(pool *pgxpool.Pool) port.AccountRepository {
	return &accountRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewAccountWithTx(tx pgx.Tx) port.AccountRepository {
	return &accountRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// Register trims the username; the password is stored as given.
func (r *accountRepository) Register(ctx context.Context, username, password string) (domain.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Account{}, fmt.Errorf("username is empty: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(password) == "" {
		return domain.Account{}, fmt.Errorf("password is empty: %w", domain.ErrInvalidInput)
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Account, error) {
		_, err := q.GetAccountByUsername(ctx, username)
		switch {
		case err == nil:
			return domain.Account{}, fmt.Errorf("username[%s]: %w", username, domain.ErrDuplicateUsername)
		case !errors.Is(err, pgx.ErrNoRows):
			return domain.Account{}, storageError("q.GetAccountByUsername", err)
		}

		row, err := q.InsertAccount(ctx, db.InsertAccountParams{
			Username: username,
			Password: password,
		})
		if err != nil {
			// a concurrent registration may win between the lookup and the insert
			if isUniqueViolation(err) {
				return domain.Account{}, fmt.Errorf("username[%s]: %w", username, domain.ErrDuplicateUsername)
			}
			return domain.Account{}, storageError("q.InsertAccount", err)
		}

		return mapAccountToDomain(row), nil
	})
}

func (r *accountRepository) Authenticate(ctx context.Context, username, password string) (domain.Account, bool, error) {
	if username == "" || password == "" {
		return domain.Account{}, false, nil
	}

	row, err := r.q.GetAccountByCredentials(ctx, db.GetAccountByCredentialsParams{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, false, nil
		}
		return domain.Account{}, false, storageError("q.GetAccountByCredentials", err)
	}

	return mapAccountToDomain(row), true, nil
}

func mapAccountToDomain(row db.Account) domain.Account {
	return domain.Account{
		ID:       row.ID,
		Username: row.Username,
		Password: row.Password,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type AccountRepository interface {
	Register(ctx context.Context, username, password string) (domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (domain.Account, bool, error)
}

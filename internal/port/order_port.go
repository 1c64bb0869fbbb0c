package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderRepository interface {
	Append(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, orderID int64) (domain.Order, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Order, error)
}

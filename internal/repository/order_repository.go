package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// Append stores order and returns it with the id and creation time assigned by the database.
func (r *orderRepository) Append(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.Username == "" {
		return domain.Order{}, fmt.Errorf("username is empty: %w", domain.ErrInvalidInput)
	}
	if order.Items == "" {
		return domain.Order{}, fmt.Errorf("items are empty: %w", domain.ErrInvalidInput)
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		row, err := q.InsertOrder(ctx, db.InsertOrderParams{
			Username:      order.Username,
			TotalAmount:   order.Total.Amount,
			TotalCurrency: order.Total.Currency.String(),
			Items:         order.Items,
		})
		if err != nil {
			return domain.Order{}, storageError("q.InsertOrder", err)
		}

		result, err := mapOrderToDomain(row)
		if err != nil {
			return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
		}

		return result, nil
	})
}

func (r *orderRepository) Get(ctx context.Context, orderID int64) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("order[%d]: %w", orderID, domain.ErrNotFound)
		}
		return domain.Order{}, storageError("q.GetOrder", err)
	}

	order, err := mapOrderToDomain(row)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListByUsername(ctx context.Context, username string) ([]domain.Order, error) {
	if username == "" {
		return nil, fmt.Errorf("username is empty: %w", domain.ErrInvalidInput)
	}

	rows, err := r.q.ListOrdersByUsername(ctx, username)
	if err != nil {
		return nil, storageError("q.ListOrdersByUsername", err)
	}

	orders, err := mapOrdersToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapOrdersToDomain: %w", err)
	}

	return orders, nil
}

func mapOrderToDomain(row db.Order) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(row.TotalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.TotalCurrency, err)
	}

	return domain.Order{
		ID:        row.ID,
		Username:  row.Username,
		Total:     domain.Money{Amount: row.TotalAmount, Currency: parsedCurrency},
		Items:     row.Items,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapOrdersToDomain(rows []db.Order) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(rows))

	for _, row := range rows {
		order, err := mapOrderToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderToDomain: %w", err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

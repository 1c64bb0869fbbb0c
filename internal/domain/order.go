package domain

import (
	"fmt"
	"strings"
	"time"
)

const itemsDelimiter = ", "

type Order struct {
	ID       int64
	Username string
	Total    Money
	Items    string

	CreatedAt time.Time
}

// NewOrder builds an unsaved order from resolved products. Total is the exact sum
// of the product prices and Items lists them in the same order.
func NewOrder(username string, products []Product) (Order, error) {
	if len(products) == 0 {
		return Order{}, ErrEmptyCart
	}

	total, err := Total(products)
	if err != nil {
		return Order{}, err
	}

	return Order{
		Username: username,
		Total:    total,
		Items:    FormatItems(products),
	}, nil
}

// Total sums product prices. An empty list yields a zero amount without currency.
func Total(products []Product) (Money, error) {
	if len(products) == 0 {
		return Money{}, nil
	}

	total := Money{Currency: products[0].Price.Currency}
	for _, p := range products {
		var err error
		if total, err = total.Add(p.Price); err != nil {
			return Money{}, fmt.Errorf("product[%d]: %w", p.ID, err)
		}
	}

	return total, nil
}

// FormatItems renders products as "Name (INR 999), Other (INR 1299)".
func FormatItems(products []Product) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, p.Name+" ("+p.Price.String()+")")
	}

	return strings.Join(parts, itemsDelimiter)
}

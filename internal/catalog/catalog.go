// Package catalog holds the fixed, read-only product list of the store.
package catalog

import (
	"cmp"
	"slices"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type staticCatalog struct {
	products []domain.Product
	byID     map[domain.ProductID]domain.Product
}

// New builds a catalog from products. Later duplicates of an id are ignored.
func New(products ...domain.Product) port.Catalog {
	c := &staticCatalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[domain.ProductID]domain.Product, len(products)),
	}

	for _, p := range products {
		if _, ok := c.byID[p.ID]; ok {
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}

	return c
}

// List returns a copy of all products. Ties keep catalog order.
func (c *staticCatalog) List(sort port.SortKey) []domain.Product {
	items := slices.Clone(c.products)

	switch sort {
	case port.SortPriceAsc:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case port.SortPriceDesc:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return b.Price.Amount.Cmp(a.Price.Amount)
		})
	case port.SortNew:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	default:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return cmp.Compare(b.Popularity, a.Popularity)
		})
	}

	return items
}

func (c *staticCatalog) Get(id domain.ProductID) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *staticCatalog) Exists(id domain.ProductID) bool {
	_, ok := c.byID[id]
	return ok
}

// GetMany resolves ids in input order, keeping duplicates and dropping unknown ids.
func (c *staticCatalog) GetMany(ids []domain.ProductID) []domain.Product {
	result := make([]domain.Product, 0, len(ids))

	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			result = append(result, p)
		}
	}

	return result
}

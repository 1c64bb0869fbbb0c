package catalog_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestList(t *testing.T) {
	c := catalog.Default(currency.INR)

	tests := []struct {
		name    string
		sort    port.SortKey
		wantIDs []domain.ProductID
	}{
		{
			name:    "popularity",
			sort:    port.SortPopularity,
			wantIDs: []domain.ProductID{2, 6, 7, 3, 5, 1, 8, 4},
		},
		{
			name:    "unknown key falls back to popularity",
			sort:    port.ParseSortKey("bogus"),
			wantIDs: []domain.ProductID{2, 6, 7, 3, 5, 1, 8, 4},
		},
		{
			name:    "price ascending keeps catalog order on ties",
			sort:    port.SortPriceAsc,
			wantIDs: []domain.ProductID{5, 1, 6, 2, 4, 3, 8, 7},
		},
		{
			name:    "price descending keeps catalog order on ties",
			sort:    port.SortPriceDesc,
			wantIDs: []domain.ProductID{7, 3, 8, 4, 2, 6, 1, 5},
		},
		{
			name:    "newest first",
			sort:    port.SortNew,
			wantIDs: []domain.ProductID{8, 4, 2, 7, 6, 3, 5, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIDs, ids(c.List(tt.sort)))
		})
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := catalog.Default(currency.INR)

	items := c.List(port.SortPopularity)
	items[0].Name = "mutated"

	p, ok := c.Get(items[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", p.Name)
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]port.SortKey{
		"":           port.SortPopularity,
		"popularity": port.SortPopularity,
		"price_asc":  port.SortPriceAsc,
		"price_desc": port.SortPriceDesc,
		"new":        port.SortNew,
		"PRICE_ASC":  port.SortPopularity,
	}

	for in, want := range tests {
		assert.Equal(t, want, port.ParseSortKey(in), "input %q", in)
	}
}

func TestExists(t *testing.T) {
	c := catalog.Default(currency.INR)

	assert.True(t, c.Exists(1))
	assert.True(t, c.Exists(8))
	assert.False(t, c.Exists(0))
	assert.False(t, c.Exists(9))
}

func TestGetMany(t *testing.T) {
	c := catalog.Default(currency.INR)

	tests := []struct {
		name    string
		in      []domain.ProductID
		wantIDs []domain.ProductID
	}{
		{
			name:    "preserves input order",
			in:      []domain.ProductID{3, 2},
			wantIDs: []domain.ProductID{3, 2},
		},
		{
			name:    "keeps duplicates",
			in:      []domain.ProductID{2, 2, 5},
			wantIDs: []domain.ProductID{2, 2, 5},
		},
		{
			name:    "drops unknown ids",
			in:      []domain.ProductID{42, 1, 0, 4},
			wantIDs: []domain.ProductID{1, 4},
		},
		{
			name:    "empty input",
			in:      nil,
			wantIDs: []domain.ProductID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIDs, ids(c.GetMany(tt.in)))
		})
	}
}

func TestNewIgnoresDuplicateIDs(t *testing.T) {
	first := domain.Product{ID: 1, Name: "first", Price: domain.NewMoney(1, currency.INR)}
	second := domain.Product{ID: 1, Name: "second", Price: domain.NewMoney(2, currency.INR)}

	c := catalog.New(first, second)

	require.Len(t, c.List(port.SortPopularity), 1)
	p, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "first", p.Name)
}

func ids(products []domain.Product) []domain.ProductID {
	result := make([]domain.ProductID, 0, len(products))
	for _, p := range products {
		result = append(result, p.ID)
	}
	return result
}

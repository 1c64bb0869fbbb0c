package port

import "github.com/nikolayk812/storefront/internal/domain"

type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortNew        SortKey = "new"
)

// ParseSortKey falls back to SortPopularity for empty or unknown values.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortNew:
		return k
	default:
		return SortPopularity
	}
}

type Catalog interface {
	List(sort SortKey) []domain.Product
	Get(id domain.ProductID) (domain.Product, bool)
	Exists(id domain.ProductID) bool
	GetMany(ids []domain.ProductID) []domain.Product
}

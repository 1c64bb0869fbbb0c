package catalog

import (
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

// Default returns the store's product line priced in unit.
func Default(unit currency.Unit) port.Catalog {
	return New(DefaultProducts(unit)...)
}

func DefaultProducts(unit currency.Unit) []domain.Product {
	product := func(id domain.ProductID, name string, price int64, image string, popularity, day int) domain.Product {
		return domain.Product{
			ID:         id,
			Name:       name,
			Price:      domain.NewMoney(price, unit),
			Image:      image,
			Popularity: popularity,
			CreatedAt:  time.Date(2025, time.August, day, 0, 0, 0, 0, time.UTC),
		}
	}

	return []domain.Product{
		product(1, "Casual Shirt", 799, "blackshirt.jpeg", 72, 1),
		product(2, "Formal Shirt", 999, "maroonshirt.jpeg", 95, 18),
		product(3, "Denim Jeans", 1299, "blackpant.jpeg", 81, 10),
		product(4, "Chinos Pant", 1199, "greypant.jpeg", 65, 20),
		product(5, "Casual T-Shirt", 699, "BlackTshirt.jpg", 75, 2),
		product(6, "Formal T-Shirt", 899, "maroonTshirt.jpg", 92, 12),
		product(7, "Denim cargo", 1499, "Blackcargo.jpg", 84, 15),
		product(8, "Trousers", 1299, "Trousers.jpg", 67, 24),
	}
}

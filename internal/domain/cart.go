package domain

// Cart is a session cart resolved against the catalog.
type Cart struct {
	OwnerID  string
	Products []Product
	Total    Money
}

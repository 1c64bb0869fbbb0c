package domain

import "time"

type ProductID int64

type Product struct {
	ID         ProductID
	Name       string
	Price      Money
	Image      string
	Popularity int
	CreatedAt  time.Time
}

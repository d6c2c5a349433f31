package domain

import "time"

// Product is the read-only catalog record served by the listing.
type Product struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Price       float64
	Image       *string
	Stock       bool
	OnSale      bool
	CategoryID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category is a catalog category with the number of products counted for it.
type Category struct {
	ID            string
	Name          string
	Image         *string
	ProductsCount int64
}

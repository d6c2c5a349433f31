package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID   string             `spanner:"product_id"`
	CategoryID  spanner.NullString `spanner:"category_id"`
	Name        string             `spanner:"name"`
	Slug        string             `spanner:"slug"`
	Description string             `spanner:"description"`
	Price       float64            `spanner:"price"`
	Image       spanner.NullString `spanner:"image"`
	Stock       bool               `spanner:"stock"`
	OnSale      bool               `spanner:"on_sale"`
	CreatedAt   time.Time          `spanner:"created_at"`
	UpdatedAt   time.Time          `spanner:"updated_at"`
}

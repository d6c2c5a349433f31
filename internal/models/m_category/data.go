package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the categories table.
type Data struct {
	CategoryID string             `spanner:"category_id"`
	Name       string             `spanner:"name"`
	Image      spanner.NullString `spanner:"image"`
	UpdatedAt  time.Time          `spanner:"updated_at"`
}

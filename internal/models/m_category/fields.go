package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID = "category_id"
	Name       = "name"
	Image      = "image"
	UpdatedAt  = "updated_at"
)

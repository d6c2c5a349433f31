package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID   = "product_id"
	CategoryID  = "category_id"
	Name        = "name"
	Slug        = "slug"
	Description = "description"
	Price       = "price"
	Image       = "image"
	Stock       = "stock"
	OnSale      = "on_sale"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// Columns lists the readable columns in table order.
func Columns() []string {
	return []string{
		ProductID,
		CategoryID,
		Name,
		Slug,
		Description,
		Price,
		Image,
		Stock,
		OnSale,
		CreatedAt,
		UpdatedAt,
	}
}

// QualifiedColumns lists the readable columns prefixed with a table alias.
func QualifiedColumns(alias string) []string {
	cols := Columns()
	for i, col := range cols {
		cols[i] = alias + "." + col
	}
	return cols
}

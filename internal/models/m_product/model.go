package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting or replacing a product.
// CreatedAt is taken from data so seeded catalogs keep a meaningful order;
// UpdatedAt is always the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.ProductID,
			data.CategoryID,
			data.Name,
			data.Slug,
			data.Description,
			data.Price,
			data.Image,
			data.Stock,
			data.OnSale,
			data.CreatedAt,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

package m_category

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting or replacing a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{CategoryID, Name, Image, UpdatedAt},
		[]interface{}{data.CategoryID, data.Name, data.Image, spanner.CommitTimestamp},
	)
}

// DeleteMut creates a Spanner mutation for deleting a category.
func (m *Model) DeleteMut(categoryID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{categoryID})
}

package domain

import "slices"

// Group names a field-visibility group of the public representation.
type Group string

const (
	// GroupProducts is the product listing representation.
	GroupProducts Group = "getProducts"
	// GroupCategories is the category listing representation.
	GroupCategories Group = "getCategories"
)

// DateFormat is the layout of dates in views.
const DateFormat = "2006-01-02"

// View is the externally visible representation of a record.
// Fields outside the requested group are absent, not null.
type View map[string]any

type viewField[T any] struct {
	name   string
	groups []Group
	value  func(T) any
}

var productFields = []viewField[Product]{
	{name: "id", groups: []Group{GroupProducts}, value: func(p Product) any { return p.ID }},
	{name: "name", groups: []Group{GroupProducts, GroupCategories}, value: func(p Product) any { return p.Name }},
	{name: "slug", groups: []Group{GroupProducts, GroupCategories}, value: func(p Product) any { return p.Slug }},
	{name: "description", groups: []Group{GroupProducts, GroupCategories}, value: func(p Product) any { return p.Description }},
	{name: "price", groups: []Group{GroupProducts, GroupCategories}, value: func(p Product) any { return p.Price }},
	{name: "image", groups: []Group{GroupProducts, GroupCategories}, value: func(p Product) any { return optional(p.Image) }},
	{name: "createdAt", groups: []Group{GroupProducts, GroupCategories}, value: func(p Product) any { return p.CreatedAt.UTC().Format(DateFormat) }},
	{name: "stock", groups: []Group{GroupProducts, GroupCategories}, value: func(p Product) any { return p.Stock }},
	{name: "onSale", groups: []Group{GroupProducts, GroupCategories}, value: func(p Product) any { return p.OnSale }},
}

var categoryFields = []viewField[Category]{
	{name: "id", groups: []Group{GroupProducts, GroupCategories}, value: func(c Category) any { return c.ID }},
	{name: "name", groups: []Group{GroupProducts, GroupCategories}, value: func(c Category) any { return c.Name }},
	{name: "image", groups: []Group{GroupCategories}, value: func(c Category) any { return optional(c.Image) }},
	{name: "productsCount", groups: []Group{GroupCategories}, value: func(c Category) any { return c.ProductsCount }},
}

// ProjectProduct maps a product to the given group and injects categoryId,
// which is null for products without a category.
func ProjectProduct(p Product, group Group) View {
	view := project(p, productFields, group)
	view["categoryId"] = optional(p.CategoryID)
	return view
}

// ProjectCategory maps a category to the given group.
func ProjectCategory(c Category, group Group) View {
	return project(c, categoryFields, group)
}

func project[T any](record T, fields []viewField[T], group Group) View {
	view := make(View, len(fields)+1)
	for _, f := range fields {
		if slices.Contains(f.groups, group) {
			view[f.name] = f.value(record)
		}
	}
	return view
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

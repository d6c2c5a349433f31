package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

const productColumns = "p.product_id, p.category_id, p.name, p.slug, p.description, p.price, p.image, p.stock, p.on_sale, p.created_at, p.updated_at"

func price(v float64) *float64 { return &v }

func TestProductsQuery_FetchAll(t *testing.T) {
	stmt := productsQuery(domain.BuildPlan(domain.FilterSpec{})).Build()

	assert.Equal(t, "SELECT "+productColumns+" FROM products p", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestProductsQuery_FullPlan(t *testing.T) {
	spec := domain.FilterSpec{
		Category:        "Shoes",
		Term:            "Red",
		OnSale:          domain.True,
		Stock:           domain.False,
		MinPrice:        price(10),
		MaxPrice:        price(50),
		SortBy:          domain.SortPriceDesc,
		SortByCreatedAt: domain.SortCreatedAtAsc,
	}

	stmt := productsQuery(domain.BuildPlan(spec)).Build()

	expected := "SELECT " + productColumns + " FROM products p" +
		" LEFT JOIN categories c ON c.category_id = p.category_id" +
		" WHERE LOWER(c.name) LIKE @p0" +
		" AND (LOWER(p.name) LIKE @p1 OR LOWER(p.slug) LIKE @p2 OR LOWER(p.description) LIKE @p3)" +
		" AND p.on_sale = @p4 AND p.stock = @p5 AND p.price >= @p6 AND p.price <= @p7" +
		" ORDER BY p.price DESC, p.created_at ASC"
	assert.Equal(t, expected, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "%shoes%",
		"p1": "%red%",
		"p2": "%red%",
		"p3": "%red%",
		"p4": true,
		"p5": false,
		"p6": 10.0,
		"p7": 50.0,
	}, stmt.Params)
}

func TestProductsQuery_NoJoinWithoutCategory(t *testing.T) {
	sql, args := productsQuery(domain.BuildPlan(domain.FilterSpec{Stock: domain.True, SortBy: domain.SortPriceAsc})).BuildSQL()

	assert.Equal(t, "SELECT "+productColumns+" FROM products p WHERE p.stock = ? ORDER BY p.price ASC", sql)
	assert.Equal(t, []interface{}{true}, args)
}

func TestProductByIDQuery(t *testing.T) {
	sql, args := productByIDQuery("abc").BuildSQL()

	assert.Equal(t, "SELECT "+productColumns+" FROM products p WHERE p.product_id = ? LIMIT ?", sql)
	assert.Equal(t, []interface{}{"abc", int64(1)}, args)
}

func TestCategoriesQuery(t *testing.T) {
	const head = "SELECT c.category_id, c.name, c.image, COUNT(p.product_id) AS products_count FROM categories c" +
		" LEFT JOIN products p ON p.category_id = c.category_id"
	const group = " GROUP BY c.category_id, c.name, c.image"

	tests := []struct {
		name   string
		filter domain.CategoryFilter
		sql    string
		args   []interface{}
	}{
		{
			name:   "no filter lists everything",
			filter: domain.CategoryFilter{},
			sql:    head + group,
		},
		{
			name:   "name",
			filter: domain.CategoryFilter{Name: "Home"},
			sql:    head + " WHERE LOWER(c.name) LIKE ?" + group,
			args:   []interface{}{"%home%"},
		},
		{
			name:   "most products",
			filter: domain.CategoryFilter{MostProducts: domain.True},
			sql:    head + group + " ORDER BY products_count DESC",
		},
		{
			name:   "most on sale",
			filter: domain.CategoryFilter{MostOnSale: domain.True},
			sql:    head + " WHERE p.on_sale = ?" + group + " ORDER BY products_count DESC",
			args:   []interface{}{true},
		},
		{
			name:   "out of stock",
			filter: domain.CategoryFilter{OutOfStock: domain.True},
			sql:    head + " WHERE p.stock = ?" + group,
			args:   []interface{}{false},
		},
		{
			name:   "false flags are ignored",
			filter: domain.CategoryFilter{MostProducts: domain.False, OutOfStock: domain.False},
			sql:    head + group,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := categoriesQuery(tt.filter).BuildSQL()
			assert.Equal(t, tt.sql, sql)
			if tt.args == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

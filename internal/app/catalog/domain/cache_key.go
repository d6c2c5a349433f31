package domain

import (
	"strconv"
	"strings"
)

const nullToken = "null"

// ProductsCacheKey derives the cache key of one listing page.
// Fields appear in a fixed order, strings are quoted so separators inside
// values cannot make two different filters collide, and unset fields use
// the null token. Every FilterSpec field must be part of the key.
func ProductsCacheKey(f FilterSpec, page int) string {
	parts := []string{
		"products",
		"category=" + stringToken(f.Category),
		"term=" + stringToken(f.Term),
		"onSale=" + f.OnSale.String(),
		"stock=" + f.Stock.String(),
		"minPrice=" + floatToken(f.MinPrice),
		"maxPrice=" + floatToken(f.MaxPrice),
		"sortBy=" + stringToken(string(f.SortBy)),
		"sortByCreatedAt=" + stringToken(string(f.SortByCreatedAt)),
		"page=" + strconv.Itoa(page),
	}
	return strings.Join(parts, "|")
}

// CategoriesCacheKey derives the cache key of a category listing.
func CategoriesCacheKey(f CategoryFilter) string {
	parts := []string{
		"categories",
		"name=" + stringToken(f.Name),
		"mostProducts=" + f.MostProducts.String(),
		"mostOnSale=" + f.MostOnSale.String(),
		"outOfStock=" + f.OutOfStock.String(),
	}
	return strings.Join(parts, "|")
}

func stringToken(s string) string {
	if s == "" {
		return nullToken
	}
	return strconv.Quote(s)
}

func floatToken(v *float64) string {
	if v == nil {
		return nullToken
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

package repo

import (
	"strings"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
	"github.com/light-bringer/shopcat-service/internal/models/m_category"
	"github.com/light-bringer/shopcat-service/internal/models/m_product"
	"github.com/light-bringer/shopcat-service/internal/pkg/query"
)

const (
	productsFrom   = m_product.TableName + " p"
	categoriesFrom = m_category.TableName + " c"
	categoryJoinOn = "c.category_id = p.category_id"
	productJoinOn  = "p.category_id = c.category_id"
	countAlias     = "products_count"
)

// productsQuery translates a plan into a single SELECT over products.
// Both the Spanner and database/sql sources render this same builder.
func productsQuery(plan domain.Plan) *query.Builder {
	b := query.From(productsFrom).Select(m_product.QualifiedColumns("p")...)
	if plan.FetchAll() {
		return b
	}

	if plan.JoinsCategory() {
		b = b.LeftJoin(categoriesFrom, categoryJoinOn)
	}

	for _, c := range plan.Constraints {
		switch c.Kind {
		case domain.CategoryNameContains:
			b = b.Where(query.Like("LOWER(c.name)", containsPattern(c.Text)))
		case domain.TermContains:
			pattern := containsPattern(c.Text)
			b = b.Where(query.Or(
				query.Like("LOWER(p.name)", pattern),
				query.Like("LOWER(p.slug)", pattern),
				query.Like("LOWER(p.description)", pattern),
			))
		case domain.OnSaleEquals:
			b = b.Where(query.Eq("p.on_sale", c.Flag))
		case domain.StockEquals:
			b = b.Where(query.Eq("p.stock", c.Flag))
		case domain.PriceAtLeast:
			b = b.Where(query.Gte("p.price", c.Amount))
		case domain.PriceAtMost:
			b = b.Where(query.Lte("p.price", c.Amount))
		case domain.OrderByPrice:
			b = b.OrderBy("p.price", direction(c.Descending))
		case domain.OrderByCreatedAt:
			b = b.OrderBy("p.created_at", direction(c.Descending))
		}
	}

	return b
}

// productByIDQuery selects one product by primary key.
func productByIDQuery(productID string) *query.Builder {
	return query.From(productsFrom).
		Select(m_product.QualifiedColumns("p")...).
		Where(query.Eq("p.product_id", productID)).
		Limit(1)
}

// categoriesQuery counts the products joined to each category.
// Filters on product flags restrict which products are counted, and
// categories without a matching product drop out of the result.
func categoriesQuery(f domain.CategoryFilter) *query.Builder {
	b := query.From(categoriesFrom).
		Select("c.category_id", "c.name", "c.image", "COUNT(p.product_id) AS "+countAlias).
		LeftJoin(productsFrom, productJoinOn)

	if f.Name != "" {
		b = b.Where(query.Like("LOWER(c.name)", containsPattern(strings.ToLower(f.Name))))
	}
	if f.MostOnSale == domain.True {
		b = b.Where(query.Eq("p.on_sale", true))
	}
	if f.OutOfStock == domain.True {
		b = b.Where(query.Eq("p.stock", false))
	}

	b = b.GroupBy("c.category_id", "c.name", "c.image")

	if f.MostProducts == domain.True || f.MostOnSale == domain.True {
		b = b.OrderBy(countAlias, query.Desc)
	}

	return b
}

func containsPattern(text string) string {
	return "%" + text + "%"
}

func direction(descending bool) query.Direction {
	if descending {
		return query.Desc
	}
	return query.Asc
}

package domain

import "strings"

// ConstraintKind identifies one step of a product query plan.
type ConstraintKind int

const (
	// CategoryNameContains joins categories and matches the category name.
	CategoryNameContains ConstraintKind = iota
	// TermContains matches name, slug or description.
	TermContains
	// OnSaleEquals matches the on-sale flag.
	OnSaleEquals
	// StockEquals matches the stock flag.
	StockEquals
	// PriceAtLeast keeps products priced at or above Amount.
	PriceAtLeast
	// PriceAtMost keeps products priced at or below Amount.
	PriceAtMost
	// OrderByPrice sorts by price.
	OrderByPrice
	// OrderByCreatedAt sorts by creation time.
	OrderByCreatedAt
)

var constraintNames = map[ConstraintKind]string{
	CategoryNameContains: "category_name_contains",
	TermContains:         "term_contains",
	OnSaleEquals:         "on_sale_equals",
	StockEquals:          "stock_equals",
	PriceAtLeast:         "price_at_least",
	PriceAtMost:          "price_at_most",
	OrderByPrice:         "order_by_price",
	OrderByCreatedAt:     "order_by_created_at",
}

// String returns a stable name for logs and tests.
func (k ConstraintKind) String() string {
	if name, ok := constraintNames[k]; ok {
		return name
	}
	return "unknown"
}

// Constraint is one descriptor of a product query plan.
// Only the field relevant to Kind is populated.
type Constraint struct {
	Kind       ConstraintKind
	Text       string  // lower-cased substring for *Contains kinds
	Flag       bool    // value for *Equals kinds
	Amount     float64 // bound for Price* kinds
	Descending bool    // direction for OrderBy* kinds
}

// Plan is the ordered list of constraints derived from a FilterSpec.
type Plan struct {
	Constraints []Constraint
}

// FetchAll reports whether the plan is unconstrained and unordered.
// Data sources must then read every product without joins.
func (p Plan) FetchAll() bool {
	return len(p.Constraints) == 0
}

// JoinsCategory reports whether the plan needs the categories table.
func (p Plan) JoinsCategory() bool {
	for _, c := range p.Constraints {
		if c.Kind == CategoryNameContains {
			return true
		}
	}
	return false
}

// BuildPlan translates a FilterSpec into constraints. The order is fixed:
// category, term, on-sale, stock, min price, max price, price order,
// created-at order. Price ordering is therefore the primary sort key when
// both orderings are requested.
func BuildPlan(f FilterSpec) Plan {
	if f.IsEmpty() {
		return Plan{}
	}

	constraints := make([]Constraint, 0, 8)

	if f.Category != "" {
		constraints = append(constraints, Constraint{Kind: CategoryNameContains, Text: strings.ToLower(f.Category)})
	}
	if f.Term != "" {
		constraints = append(constraints, Constraint{Kind: TermContains, Text: strings.ToLower(f.Term)})
	}
	if f.OnSale.IsSet() {
		constraints = append(constraints, Constraint{Kind: OnSaleEquals, Flag: f.OnSale.Bool()})
	}
	if f.Stock.IsSet() {
		constraints = append(constraints, Constraint{Kind: StockEquals, Flag: f.Stock.Bool()})
	}
	if f.MinPrice != nil {
		constraints = append(constraints, Constraint{Kind: PriceAtLeast, Amount: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		constraints = append(constraints, Constraint{Kind: PriceAtMost, Amount: *f.MaxPrice})
	}
	switch f.SortBy {
	case SortPriceAsc:
		constraints = append(constraints, Constraint{Kind: OrderByPrice})
	case SortPriceDesc:
		constraints = append(constraints, Constraint{Kind: OrderByPrice, Descending: true})
	}
	switch f.SortByCreatedAt {
	case SortCreatedAtAsc:
		constraints = append(constraints, Constraint{Kind: OrderByCreatedAt})
	case SortCreatedAtDesc:
		constraints = append(constraints, Constraint{Kind: OrderByCreatedAt, Descending: true})
	}

	return Plan{Constraints: constraints}
}

package get_product

import (
	"context"
	"strings"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/contracts"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	source contracts.ProductSource
}

// NewQuery creates a new get product query.
func NewQuery(source contracts.ProductSource) *Query {
	return &Query{
		source: source,
	}
}

// Execute retrieves a product by ID in its listing representation.
func (q *Query) Execute(ctx context.Context, req *Request) (domain.View, error) {
	id := strings.TrimSpace(req.ProductID)
	if id == "" {
		return nil, domain.ErrProductNotFound
	}

	product, err := q.source.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return domain.ProjectProduct(*product, domain.GroupProducts), nil
}

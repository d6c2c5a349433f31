package list_products

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/contracts"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// Request carries the raw listing parameters, including "page".
type Request struct {
	Params domain.Params
}

// Result is one page of the product listing.
type Result struct {
	Products  []domain.View `json:"products"`
	Page      int           `json:"page"`
	CountPage int           `json:"countPage"`
}

// Query handles the product listing use case.
type Query struct {
	source contracts.ProductSource
	cache  contracts.ResultCache
}

// NewQuery creates a new list products query.
func NewQuery(source contracts.ProductSource, cache contracts.ResultCache) *Query {
	return &Query{
		source: source,
		cache:  cache,
	}
}

// Execute validates the filter and returns the requested page, served from
// the cache when an entry for the same filter and page exists.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Parse and validate; rejected filters never reach the source
	filter, err := domain.ParseFilter(req.Params)
	if err != nil {
		return nil, err
	}
	page := domain.ParsePage(req.Params.Get("page"))

	// 2. Derive the cache key
	key := domain.ProductsCacheKey(filter, page)

	// 3. Look up or compute the serialized page
	data, err := q.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		return q.compute(ctx, filter, page)
	})
	if err != nil {
		return nil, err
	}

	// 4. Decode; hits and misses go through the same bytes
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode product page: %w", err)
	}

	return &result, nil
}

func (q *Query) compute(ctx context.Context, filter domain.FilterSpec, page int) ([]byte, error) {
	products, err := q.source.FindByPlan(ctx, domain.BuildPlan(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	paged := domain.Paginate(products, page, domain.PageSize)

	views := make([]domain.View, 0, len(paged.Items))
	for _, p := range paged.Items {
		views = append(views, domain.ProjectProduct(p, domain.GroupProducts))
	}

	data, err := json.Marshal(Result{
		Products:  views,
		Page:      paged.Page,
		CountPage: paged.CountPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode product page: %w", err)
	}

	return data, nil
}

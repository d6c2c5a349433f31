package list_categories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/contracts"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// Request carries the raw category filter parameters.
type Request struct {
	Params domain.Params
}

// Query handles the category listing use case.
type Query struct {
	source contracts.CategorySource
	cache  contracts.ResultCache
}

// NewQuery creates a new list categories query.
func NewQuery(source contracts.CategorySource, cache contracts.ResultCache) *Query {
	return &Query{
		source: source,
		cache:  cache,
	}
}

// Execute returns the categories matching the filter with their product counts.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.View, error) {
	filter, err := domain.ParseCategoryFilter(req.Params)
	if err != nil {
		return nil, err
	}

	data, err := q.cache.GetOrLoad(ctx, domain.CategoriesCacheKey(filter), func(ctx context.Context) ([]byte, error) {
		categories, err := q.source.FindCategories(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to find categories: %w", err)
		}

		views := make([]domain.View, 0, len(categories))
		for _, c := range categories {
			views = append(views, domain.ProjectCategory(c, domain.GroupCategories))
		}
		return json.Marshal(views)
	})
	if err != nil {
		return nil, err
	}

	views := make([]domain.View, 0)
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return views, nil
}

package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// FakeCatalogSource is an in-memory product and category source that records its calls.
// FindByPlan returns Products as they are; filtering is the real sources' job.
type FakeCatalogSource struct {
	mu sync.Mutex

	Products   []domain.Product
	Categories []domain.Category
	Err        error
	// Delay blocks each FindByPlan call, for concurrency tests.
	Delay time.Duration

	Plans           []domain.Plan
	CategoryFilters []domain.CategoryFilter
}

func (f *FakeCatalogSource) FindByPlan(ctx context.Context, plan domain.Plan) ([]domain.Product, error) {
	f.mu.Lock()
	f.Plans = append(f.Plans, plan)
	delay := f.Delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if f.Err != nil {
		return nil, f.Err
	}
	return append([]domain.Product(nil), f.Products...), nil
}

func (f *FakeCatalogSource) FindByID(_ context.Context, productID string) (*domain.Product, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, p := range f.Products {
		if p.ID == productID {
			product := p
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *FakeCatalogSource) FindCategories(_ context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	f.mu.Lock()
	f.CategoryFilters = append(f.CategoryFilters, filter)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return append([]domain.Category(nil), f.Categories...), nil
}

// PlanCalls returns how many times FindByPlan ran.
func (f *FakeCatalogSource) PlanCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Plans)
}

// MakeProducts builds n products priced from start in steps of step.
func MakeProducts(n int, start, step float64, onSale bool) []domain.Product {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.Product{
			ID:        fmt.Sprintf("prod-%02d", i),
			Name:      fmt.Sprintf("Product %d", i),
			Slug:      fmt.Sprintf("product-%d", i),
			Price:     start + float64(i)*step,
			Stock:     true,
			OnSale:    onSale,
			CreatedAt: created.Add(time.Duration(i) * time.Hour),
			UpdatedAt: created,
		})
	}
	return products
}

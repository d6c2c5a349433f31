package contracts

import (
	"context"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// ProductSource reads catalog products from the backing store.
type ProductSource interface {
	// FindByPlan returns the products matching the plan, ordered as the plan requires.
	// An unconstrained plan returns every product in store order.
	FindByPlan(ctx context.Context, plan domain.Plan) ([]domain.Product, error)

	// FindByID returns a single product or domain.ErrProductNotFound.
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
}

// CategorySource reads categories with their product counts.
type CategorySource interface {
	FindCategories(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error)
}

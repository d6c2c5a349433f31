package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/contracts"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
	"github.com/light-bringer/shopcat-service/internal/models/m_product"
)

// SpannerSource reads products and categories from Cloud Spanner.
type SpannerSource struct {
	client *spanner.Client
}

var (
	_ contracts.ProductSource  = (*SpannerSource)(nil)
	_ contracts.CategorySource = (*SpannerSource)(nil)
)

// NewSpannerSource creates a Spanner-backed catalog source.
func NewSpannerSource(client *spanner.Client) *SpannerSource {
	return &SpannerSource{
		client: client,
	}
}

// FindByPlan retrieves the products matching the plan.
func (s *SpannerSource) FindByPlan(ctx context.Context, plan domain.Plan) ([]domain.Product, error) {
	stmt := productsQuery(plan).Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		products = append(products, productFromData(&data))
	}

	return products, nil
}

// FindByID retrieves a product by primary key.
func (s *SpannerSource) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := s.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	product := productFromData(&data)
	return &product, nil
}

// FindCategories retrieves categories with their product counts.
func (s *SpannerSource) FindCategories(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	stmt := categoriesQuery(filter).Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	categories := make([]domain.Category, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}

		var (
			id, name string
			image    spanner.NullString
			count    int64
		)
		if err := row.Columns(&id, &name, &image, &count); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}

		categories = append(categories, domain.Category{
			ID:            id,
			Name:          name,
			Image:         nullableString(image),
			ProductsCount: count,
		})
	}

	return categories, nil
}

// productFromData converts a products row to the catalog record.
func productFromData(data *m_product.Data) domain.Product {
	return domain.Product{
		ID:          data.ProductID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Price:       data.Price,
		Image:       nullableString(data.Image),
		Stock:       data.Stock,
		OnSale:      data.OnSale,
		CategoryID:  nullableString(data.CategoryID),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func nullableString(s spanner.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.StringVal
	return &v
}

package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopcat-service/internal/models/m_category"
	"github.com/light-bringer/shopcat-service/internal/models/m_product"
	"github.com/light-bringer/shopcat-service/internal/pkg/committer"
)

// ProductFixture describes a product row to insert. Zero values get defaults.
type ProductFixture struct {
	ID          string
	CategoryID  string
	Name        string
	Slug        string
	Description string
	Price       float64
	Stock       bool
	OnSale      bool
	CreatedAt   time.Time
}

// CreateTestCategory inserts a category and returns its id.
func CreateTestCategory(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	categoryID := uuid.New().String()
	plan := committer.NewPlan()
	plan.Add(m_category.NewModel().InsertMut(&m_category.Data{
		CategoryID: categoryID,
		Name:       name,
	}))

	require.NoError(t, committer.NewCommitter(client).Apply(context.Background(), plan), "failed to create test category")
	return categoryID
}

// CreateTestProducts inserts the fixtures in one commit and returns their ids in order.
func CreateTestProducts(t *testing.T, client *spanner.Client, fixtures ...ProductFixture) []string {
	t.Helper()

	model := m_product.NewModel()
	plan := committer.NewPlan()
	ids := make([]string, 0, len(fixtures))

	for _, f := range fixtures {
		if f.ID == "" {
			f.ID = uuid.New().String()
		}
		if f.Slug == "" {
			f.Slug = f.ID
		}
		if f.CreatedAt.IsZero() {
			f.CreatedAt = time.Now().UTC()
		}

		data := &m_product.Data{
			ProductID:   f.ID,
			Name:        f.Name,
			Slug:        f.Slug,
			Description: f.Description,
			Price:       f.Price,
			Stock:       f.Stock,
			OnSale:      f.OnSale,
			CreatedAt:   f.CreatedAt,
		}
		if f.CategoryID != "" {
			data.CategoryID = spanner.NullString{StringVal: f.CategoryID, Valid: true}
		}

		plan.Add(model.InsertMut(data))
		ids = append(ids, f.ID)
	}

	require.NoError(t, committer.NewCommitter(client).Apply(context.Background(), plan), "failed to create test products")
	return ids
}

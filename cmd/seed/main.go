package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/shopcat-service/internal/models/m_category"
	"github.com/light-bringer/shopcat-service/internal/models/m_product"
	"github.com/light-bringer/shopcat-service/internal/pkg/clock"
	"github.com/light-bringer/shopcat-service/internal/pkg/committer"
)

var (
	spannerDB   = flag.String("database", getEnvOrDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/shopcat-db"), "Spanner database path")
	perCategory = flag.Int("products", 25, "Products per category")
	seed        = flag.Uint64("seed", 1, "Random seed")
)

var categoryNames = []string{
	"Running Shoes",
	"Home & Garden",
	"Kitchen",
	"Outdoor",
	"Books",
	"Toys",
}

var adjectives = []string{"Classic", "Red", "Compact", "Deluxe", "Vintage", "Eco", "Travel", "Pro"}

func main() {
	flag.Parse()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	plan := buildPlan(clock.NewRealClock(), rand.New(rand.NewPCG(*seed, *seed)), *perCategory)

	log.Printf("Seeding %d mutations into %s...", plan.Count(), *spannerDB)

	if err := committer.NewCommitter(client).Apply(ctx, plan); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed successfully!")
}

// buildPlan creates every category followed by its products. Creation times
// step back one hour per product so created-at ordering is stable.
func buildPlan(clk clock.Clock, rng *rand.Rand, perCategory int) *committer.Plan {
	categories := m_category.NewModel()
	products := m_product.NewModel()
	plan := committer.NewPlan()

	created := clk.Now().UTC().Truncate(time.Hour)

	for _, categoryName := range categoryNames {
		categoryID := uuid.New().String()
		plan.Add(categories.InsertMut(&m_category.Data{
			CategoryID: categoryID,
			Name:       categoryName,
		}))

		noun := strings.Fields(categoryName)[0]
		for i := 0; i < perCategory; i++ {
			name := fmt.Sprintf("%s %s %d", adjectives[rng.IntN(len(adjectives))], noun, i+1)
			created = created.Add(-time.Hour)

			plan.Add(products.InsertMut(&m_product.Data{
				ProductID:   uuid.New().String(),
				CategoryID:  spanner.NullString{StringVal: categoryID, Valid: true},
				Name:        name,
				Slug:        slugify(name),
				Description: fmt.Sprintf("A %s item from the %s range.", strings.ToLower(noun), categoryName),
				Price:       float64(rng.IntN(20000)+99) / 100,
				Stock:       rng.IntN(5) != 0,
				OnSale:      rng.IntN(3) == 0,
				CreatedAt:   created,
			}))
		}
	}

	return plan
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

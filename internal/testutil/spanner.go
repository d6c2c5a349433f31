package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopcat-service/internal/models/m_category"
	"github.com/light-bringer/shopcat-service/internal/models/m_product"
)

const defaultTestSpannerDB = "projects/test-project/instances/test-instance/databases/shopcat-test"

// SetupSpannerTest creates a Spanner client against the emulator and empties the catalog tables.
func SetupSpannerTest(t *testing.T) *spanner.Client {
	t.Helper()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	t.Cleanup(func() {
		CleanDatabase(t, client)
		client.Close()
	})

	return client
}

// GetTestSpannerDB returns the test Spanner database string.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return defaultTestSpannerDB
}

// CleanDatabase deletes every catalog row. Products go first since they reference categories.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		spanner.Delete(m_product.TableName, spanner.AllKeys()),
		spanner.Delete(m_category.TableName, spanner.AllKeys()),
	})
	require.NoError(t, err, "failed to clean database")
}

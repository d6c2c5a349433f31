package list_products

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
	"github.com/light-bringer/shopcat-service/internal/pkg/cache"
	"github.com/light-bringer/shopcat-service/internal/testutil"
)

func newQuery(source *testutil.FakeCatalogSource) *Query {
	return NewQuery(source, cache.NewMemory(64, time.Minute))
}

func request(query string) *Request {
	values, err := url.ParseQuery(query)
	if err != nil {
		panic(err)
	}
	return &Request{Params: values}
}

func kinds(plan domain.Plan) []domain.ConstraintKind {
	out := make([]domain.ConstraintKind, 0, len(plan.Constraints))
	for _, c := range plan.Constraints {
		out = append(out, c.Kind)
	}
	return out
}

func TestQuery_Execute_OnSalePriceBand(t *testing.T) {
	source := &testutil.FakeCatalogSource{Products: testutil.MakeProducts(20, 10, 2, true)}
	q := newQuery(source)

	result, err := q.Execute(context.Background(), request("onSale=true&minPrice=10&maxPrice=50"))

	require.NoError(t, err)
	assert.Len(t, result.Products, 9)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 3, result.CountPage)

	require.Len(t, source.Plans, 1)
	assert.Equal(t, []domain.ConstraintKind{
		domain.OnSaleEquals,
		domain.PriceAtLeast,
		domain.PriceAtMost,
	}, kinds(source.Plans[0]))
}

func TestQuery_Execute_NoMatches(t *testing.T) {
	source := &testutil.FakeCatalogSource{}
	q := newQuery(source)

	result, err := q.Execute(context.Background(), request("term=nothing-matches-this"))

	require.NoError(t, err)
	assert.NotNil(t, result.Products)
	assert.Empty(t, result.Products)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 0, result.CountPage)
}

func TestQuery_Execute_RejectsInvalidFilter(t *testing.T) {
	source := &testutil.FakeCatalogSource{Products: testutil.MakeProducts(3, 1, 1, false)}
	q := newQuery(source)

	_, err := q.Execute(context.Background(), request("minPrice=-5&sortBy=cheapest"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	verrs, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs.Messages(), "minPrice: must be ≥ 0")
	assert.Contains(t, verrs.Messages(), "sortBy: must be one of: price_asc, price_desc")
	assert.Equal(t, 0, source.PlanCalls())
}

func TestQuery_Execute_ConcurrentColdRequests(t *testing.T) {
	source := &testutil.FakeCatalogSource{
		Products: testutil.MakeProducts(12, 5, 1, true),
		Delay:    50 * time.Millisecond,
	}
	q := newQuery(source)

	const workers = 10
	results := make([]*Result, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := q.Execute(context.Background(), request("onSale=true&sortBy=price_desc"))
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
	assert.Equal(t, 1, source.PlanCalls())
}

func TestQuery_Execute_CacheIsTransparent(t *testing.T) {
	source := &testutil.FakeCatalogSource{Products: testutil.MakeProducts(11, 1, 1, false)}
	q := newQuery(source)
	ctx := context.Background()

	miss, err := q.Execute(ctx, request("stock=true&page=2"))
	require.NoError(t, err)
	hit, err := q.Execute(ctx, request("stock=yes&page=2"))
	require.NoError(t, err)

	assert.Equal(t, miss, hit)
	assert.Equal(t, 1, source.PlanCalls())

	uncached := NewQuery(source, cache.NewNoop())
	direct, err := uncached.Execute(ctx, request("stock=true&page=2"))
	require.NoError(t, err)
	assert.Equal(t, miss, direct)
}

func TestQuery_Execute_Pages(t *testing.T) {
	source := &testutil.FakeCatalogSource{Products: testutil.MakeProducts(20, 1, 1, false)}
	q := newQuery(source)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		page      int
		items     int
		firstID   string
		countPage int
	}{
		{name: "default page", query: "", page: 1, items: 9, firstID: "prod-00", countPage: 3},
		{name: "last page is partial", query: "page=3", page: 3, items: 2, firstID: "prod-18", countPage: 3},
		{name: "past the end is empty", query: "page=7", page: 7, items: 0, countPage: 3},
		{name: "malformed page is the first", query: "page=abc", page: 1, items: 9, firstID: "prod-00", countPage: 3},
		{name: "zero clamps to the first", query: "page=0", page: 1, items: 9, firstID: "prod-00", countPage: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := q.Execute(ctx, request(tt.query))
			require.NoError(t, err)
			assert.Equal(t, tt.page, result.Page)
			assert.Equal(t, tt.countPage, result.CountPage)
			require.Len(t, result.Products, tt.items)
			if tt.items > 0 {
				assert.Equal(t, tt.firstID, result.Products[0]["id"])
			}
		})
	}
}

func TestQuery_Execute_ProjectsListingView(t *testing.T) {
	categoryID := "cat-1"
	products := testutil.MakeProducts(1, 19.5, 0, true)
	products[0].CategoryID = &categoryID
	source := &testutil.FakeCatalogSource{Products: products}

	result, err := newQuery(source).Execute(context.Background(), request(""))

	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	view := result.Products[0]
	assert.Equal(t, "prod-00", view["id"])
	assert.Equal(t, 19.5, view["price"])
	assert.Equal(t, "2024-03-01", view["createdAt"])
	assert.Equal(t, "cat-1", view["categoryId"])
	assert.Equal(t, true, view["onSale"])
	assert.Contains(t, view, "image")
	assert.Nil(t, view["image"])
	assert.NotContains(t, view, "updatedAt")
}

func TestQuery_Execute_SourceFailure(t *testing.T) {
	source := &testutil.FakeCatalogSource{Err: errors.New("deadline exceeded")}
	q := newQuery(source)
	ctx := context.Background()

	_, err := q.Execute(ctx, request("onSale=true"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find products")
	assert.NotErrorIs(t, err, domain.ErrInvalidFilter)

	_, err = q.Execute(ctx, request("onSale=true"))
	require.Error(t, err)
	assert.Equal(t, 2, source.PlanCalls())
}

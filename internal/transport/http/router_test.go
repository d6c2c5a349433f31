package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/shopcat-service/internal/pkg/cache"
	"github.com/light-bringer/shopcat-service/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(source *testutil.FakeCatalogSource, origins ...string) *gin.Engine {
	c := cache.NewMemory(32, time.Minute)
	logger := slog.New(slog.DiscardHandler)
	h := NewCatalogHandler(
		list_products.NewQuery(source, c),
		get_product.NewQuery(source),
		list_categories.NewQuery(source, c),
		logger,
	)
	return NewRouter(h, RouterConfig{AllowedOrigins: origins, Logger: logger})
}

func get(t *testing.T, r *gin.Engine, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(stdhttp.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListProducts(t *testing.T) {
	source := &testutil.FakeCatalogSource{Products: testutil.MakeProducts(20, 10, 2, true)}
	r := newTestRouter(source)

	t.Run("first page", func(t *testing.T) {
		w := get(t, r, "/api/products?onSale=true&minPrice=10&maxPrice=50")

		require.Equal(t, stdhttp.StatusOK, w.Code)
		body := decode(t, w)
		assert.Len(t, body["products"], 9)
		assert.Equal(t, 1.0, body["page"])
		assert.Equal(t, 3.0, body["countPage"])
	})

	t.Run("validation errors", func(t *testing.T) {
		calls := source.PlanCalls()
		w := get(t, r, "/api/products?minPrice=-5&maxPrice=abc")

		require.Equal(t, stdhttp.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.ElementsMatch(t, []any{"maxPrice: must be a number", "minPrice: must be ≥ 0"}, body["errors"])
		assert.Equal(t, calls, source.PlanCalls())
	})

	t.Run("empty result", func(t *testing.T) {
		r := newTestRouter(&testutil.FakeCatalogSource{})
		w := get(t, r, "/api/products?term=zzz")

		require.Equal(t, stdhttp.StatusOK, w.Code)
		assert.JSONEq(t, `{"products":[],"page":1,"countPage":0}`, w.Body.String())
	})

	t.Run("source failure hides details", func(t *testing.T) {
		r := newTestRouter(&testutil.FakeCatalogSource{Err: errors.New("spanner: session pool exhausted")})
		w := get(t, r, "/api/products", "X-Request-ID", "req-42")

		require.Equal(t, stdhttp.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "internal server error", body["error"])
		assert.Equal(t, "req-42", body["request_id"])
		assert.NotContains(t, w.Body.String(), "spanner")
	})
}

func TestGetProduct(t *testing.T) {
	r := newTestRouter(&testutil.FakeCatalogSource{Products: testutil.MakeProducts(2, 5, 1, false)})

	w := get(t, r, "/api/product/prod-01")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "prod-01", body["id"])
	assert.Equal(t, 6.0, body["price"])

	w = get(t, r, "/api/product/unknown")
	assert.Equal(t, stdhttp.StatusNotFound, w.Code)
	assert.Equal(t, "product not found", decode(t, w)["error"])
}

func TestListCategories(t *testing.T) {
	source := &testutil.FakeCatalogSource{Categories: []domain.Category{{ID: "c-1", Name: "Shoes", ProductsCount: 3}}}
	r := newTestRouter(source)

	w := get(t, r, "/api/categories?mostProducts=true")

	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"c-1","name":"Shoes","image":null,"productsCount":3}]`, w.Body.String())
	require.Len(t, source.CategoryFilters, 1)
	assert.Equal(t, domain.True, source.CategoryFilters[0].MostProducts)
}

func TestMiddleware(t *testing.T) {
	r := newTestRouter(&testutil.FakeCatalogSource{}, "https://shop.example.com")

	t.Run("health", func(t *testing.T) {
		w := get(t, r, "/health")
		assert.Equal(t, stdhttp.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("request id is generated", func(t *testing.T) {
		w := get(t, r, "/health")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("request id is propagated", func(t *testing.T) {
		w := get(t, r, "/health", "X-Request-ID", "abc-123")
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("allowed origin", func(t *testing.T) {
		w := get(t, r, "/health", "Origin", "https://shop.example.com")
		assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown route", func(t *testing.T) {
		w := get(t, r, "/api/nope")
		assert.Equal(t, stdhttp.StatusNotFound, w.Code)
		assert.Equal(t, "route not found", decode(t, w)["error"])
	})
}

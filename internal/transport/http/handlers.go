package http

import (
	"log/slog"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/list_products"
)

// CatalogHandler serves the public catalog endpoints.
type CatalogHandler struct {
	listProducts   *list_products.Query
	getProduct     *get_product.Query
	listCategories *list_categories.Query
	logger         *slog.Logger
}

// NewCatalogHandler creates the HTTP catalog handler.
func NewCatalogHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	listCategories *list_categories.Query,
	logger *slog.Logger,
) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{
		listProducts:   listProducts,
		getProduct:     getProduct,
		listCategories: listCategories,
		logger:         logger,
	}
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	result, err := h.listProducts.Execute(c.Request.Context(), &list_products.Request{
		Params: c.Request.URL.Query(),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(stdhttp.StatusOK, result)
}

// GetProduct handles GET /api/product/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	view, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{
		ProductID: c.Param("id"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(stdhttp.StatusOK, view)
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.listCategories.Execute(c.Request.Context(), &list_categories.Request{
		Params: c.Request.URL.Query(),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(stdhttp.StatusOK, views)
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(stdhttp.StatusOK, gin.H{"status": "ok"})
}

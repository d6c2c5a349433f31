// Package http exposes the catalog over a gin router.
package http

import (
	"log/slog"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig configures cross-origin access and logging.
type RouterConfig struct {
	// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter builds the gin engine with middleware and catalog routes.
func NewRouter(h *CatalogHandler, cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(RequestID(), Logger(cfg.Logger), gin.Recovery(), cors.New(corsConfig(cfg.AllowedOrigins)))

	if err := r.SetTrustedProxies(nil); err != nil {
		cfg.Logger.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", Health)

	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/product/:id", h.GetProduct)
		api.GET("/categories", h.ListCategories)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{stdhttp.MethodGet, stdhttp.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

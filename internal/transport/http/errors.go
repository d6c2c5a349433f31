package http

import (
	"errors"
	"log/slog"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// respondError maps query errors to HTTP responses.
// Validation failures list every rejected field; anything unexpected is
// logged and reported without details.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	if verrs, ok := domain.AsValidationErrors(err); ok {
		c.JSON(stdhttp.StatusBadRequest, gin.H{"errors": verrs.Messages()})
		return
	}

	reqID := GetRequestID(c)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(stdhttp.StatusNotFound, gin.H{"error": "product not found", "request_id": reqID})
	default:
		logger.ErrorContext(c.Request.Context(), "request failed", "request_id", reqID, "path", c.Request.URL.Path, "error", err)
		c.JSON(stdhttp.StatusInternalServerError, gin.H{"error": "internal server error", "request_id": reqID})
	}
}

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront-api/internal/domain"
	"storefront-api/internal/validation"
)

// idParam parses a decimal path parameter. Non-numeric ids are a 404, the
// same way a typed route converter would never match them.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "resource not found"})
		return 0, false
	}
	return id, true
}

// respondBindError turns a binding/validation failure into a 400 with a
// per-field message body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, validation.Messages(err))
}

// respondError maps domain errors to status codes. Anything unrecognized is
// logged with the request id and reported as a generic 500.
func respondError(c *gin.Context, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrProductInCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product already in cart"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken"})
	case errors.Is(err, domain.ErrNoOpenOrder):
		c.JSON(http.StatusNotFound, gin.H{"message": "No open order"})
	case errors.Is(err, domain.ErrProductNotInCart):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not in cart"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "resource not found"})
	default:
		logger.Error().Err(err).
			Str("request_id", requestIDFrom(c)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	cartsvc "storefront-api/internal/service/cart"
)

type addProductRequest struct {
	ProductID *int64 `json:"product_id" binding:"required"`
}

func getCartHandler(svc *cartsvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		order, err := svc.Get(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		// An empty cart is a 200 with a message, not a 404.
		if order == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Cart is empty"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func addProductToOrderHandler(svc *cartsvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req addProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		order, err := svc.AddProduct(c.Request.Context(), customerID, *req.ProductID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func removeProductFromOrderHandler(svc *cartsvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		productID, ok := idParam(c, "productId")
		if !ok {
			return
		}
		if err := svc.RemoveProduct(c.Request.Context(), customerID, productID); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

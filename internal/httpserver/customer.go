package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	customersvc "storefront-api/internal/service/customer"
)

type createCustomerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Age         *int    `json:"age" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
	Email       string  `json:"email" binding:"required"`
}

type updateCustomerRequest struct {
	Name        *string `json:"name"`
	Age         *int    `json:"age"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}

func createCustomerHandler(svc *customersvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		created, err := svc.Create(c.Request.Context(), customersvc.CreateInput{
			Name:        req.Name,
			Age:         *req.Age,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listCustomersHandler(svc *customersvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

func getCustomerHandler(svc *customersvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		customer, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func updateCustomerHandler(svc *customersvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req updateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		updated, err := svc.Update(c.Request.Context(), id, customersvc.UpdateInput{
			Name:        req.Name,
			Age:         req.Age,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteCustomerHandler(svc *customersvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

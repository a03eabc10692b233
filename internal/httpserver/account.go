package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	accountsvc "storefront-api/internal/service/account"
)

type createAccountRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type updateAccountRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

func createAccountHandler(svc *accountsvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req createAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		created, err := svc.Create(c.Request.Context(), customerID, accountsvc.CreateInput{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func getAccountHandler(svc *accountsvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		account, err := svc.Get(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

func updateAccountHandler(svc *accountsvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req updateAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		updated, err := svc.Update(c.Request.Context(), customerID, accountsvc.UpdateInput{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteAccountHandler(svc *accountsvc.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), customerID); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	accountsvc "storefront-api/internal/service/account"
	cartsvc "storefront-api/internal/service/cart"
	customersvc "storefront-api/internal/service/customer"
	productsvc "storefront-api/internal/service/product"
	"storefront-api/internal/validation"
)

// Deps carries the services the router dispatches to.
type Deps struct {
	CustomerSvc *customersvc.Service
	ProductSvc  *productsvc.Service
	CartSvc     *cartsvc.Service
	AccountSvc  *accountsvc.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.UseJSONTagNames(v)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger), cors.Default())

	router.GET("/", welcomeHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/customer", createCustomerHandler(deps.CustomerSvc, logger))
	router.GET("/customers", listCustomersHandler(deps.CustomerSvc, logger))
	router.GET("/customer/:id", getCustomerHandler(deps.CustomerSvc, logger))
	router.PUT("/customer/:id", updateCustomerHandler(deps.CustomerSvc, logger))
	router.DELETE("/customers/:id", deleteCustomerHandler(deps.CustomerSvc, logger))

	router.POST("/products", createProductHandler(deps.ProductSvc, logger))
	router.GET("/products", listProductsHandler(deps.ProductSvc, logger))
	router.GET("/product/:id", getProductHandler(deps.ProductSvc, logger))
	router.DELETE("/product/:id", deleteProductHandler(deps.ProductSvc, logger))

	router.GET("/customer/:id/cart", getCartHandler(deps.CartSvc, logger))
	router.POST("/customers/:id/orders", addProductToOrderHandler(deps.CartSvc, logger))
	router.DELETE("/customers/:id/orders/:productId", removeProductFromOrderHandler(deps.CartSvc, logger))

	router.POST("/customer/:id/account", createAccountHandler(deps.AccountSvc, logger))
	router.GET("/customer/:id/account", getAccountHandler(deps.AccountSvc, logger))
	router.PUT("/customer/:id/account", updateAccountHandler(deps.AccountSvc, logger))
	router.DELETE("/customer/:id/account", deleteAccountHandler(deps.AccountSvc, logger))

	return router
}

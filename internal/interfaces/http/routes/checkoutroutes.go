package routes

import (
	"github.com/gin-gonic/gin"

	"bookstore/internal/interfaces/http/handlers"
)

// CheckoutRouteConfig holds dependencies for checkout routes.
type CheckoutRouteConfig struct {
	CheckoutHandler *handlers.CheckoutHandler
	AuthMiddleware  gin.HandlerFunc
}

// SetupCheckoutRoutes configures checkout routes. The callback endpoints
// stay public: the gateway authenticates itself with the secure hash, not a
// bearer token.
func SetupCheckoutRoutes(group *gin.RouterGroup, cfg *CheckoutRouteConfig) {
	checkout := group.Group("/checkout")
	{
		checkout.GET("/vnpay-return", cfg.CheckoutHandler.VNPayReturn)
		checkout.GET("/vnpay-ipn", cfg.CheckoutHandler.VNPayIPN)

		protected := checkout.Group("")
		protected.Use(cfg.AuthMiddleware)
		{
			protected.POST("/vnpay", cfg.CheckoutHandler.CreatePaymentURL)
		}
	}
}

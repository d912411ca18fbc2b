package routes

import (
	"github.com/gin-gonic/gin"

	"bookstore/internal/interfaces/http/handlers"
)

// OrderRouteConfig holds dependencies for order routes.
type OrderRouteConfig struct {
	OrderHandler   *handlers.OrderHandler
	AuthMiddleware gin.HandlerFunc
}

// SetupOrderRoutes configures order history routes.
func SetupOrderRoutes(group *gin.RouterGroup, cfg *OrderRouteConfig) {
	orders := group.Group("/orders")
	orders.Use(cfg.AuthMiddleware)
	{
		orders.GET("", cfg.OrderHandler.ListOrders)
		orders.GET("/:id", cfg.OrderHandler.GetOrder)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"bookstore/internal/interfaces/http/handlers"
)

// CartRouteConfig holds dependencies for cart routes.
type CartRouteConfig struct {
	CartHandler    *handlers.CartHandler
	AuthMiddleware gin.HandlerFunc
}

// SetupCartRoutes configures cart routes.
func SetupCartRoutes(group *gin.RouterGroup, cfg *CartRouteConfig) {
	cart := group.Group("/cart")
	cart.Use(cfg.AuthMiddleware)
	{
		cart.GET("", cfg.CartHandler.GetCart)
		cart.POST("/items", cfg.CartHandler.AddItem)
		cart.DELETE("/items/:productId", cfg.CartHandler.RemoveItem)
	}
}

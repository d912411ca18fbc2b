package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	checkoutUsecases "bookstore/internal/application/checkout/usecases"
	"bookstore/internal/domain/shared/services"
	"bookstore/internal/infrastructure/auth"
	"bookstore/internal/infrastructure/cache"
	"bookstore/internal/infrastructure/pubsub"
	"bookstore/internal/infrastructure/repository"
	"bookstore/internal/infrastructure/vnpay"
	"bookstore/internal/interfaces/http/handlers"
	"bookstore/internal/interfaces/http/middleware"
	"bookstore/internal/interfaces/http/routes"
	appConfig "bookstore/internal/shared/config"
	"bookstore/internal/shared/db"
	"bookstore/internal/shared/logger"

	_ "bookstore/docs"
)

// Router wires the HTTP surface together: repositories, usecases, handlers
// and middleware.
type Router struct {
	engine    *gin.Engine
	publisher *pubsub.KafkaOrderPublisher
}

// Config carries everything the router needs to assemble the application.
type Config struct {
	Server   appConfig.ServerConfig
	Auth     appConfig.AuthConfig
	VNPay    appConfig.VNPayConfig
	Kafka    appConfig.KafkaConfig
	Database *gorm.DB
	Redis    *redis.Client
	Logger   logger.Interface
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg Config) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	gateway, err := vnpay.NewClient(cfg.VNPay)
	if err != nil {
		return nil, fmt.Errorf("failed to create vnpay client: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to create jwt service: %w", err)
	}

	orderRepo := repository.NewOrderRepository(cfg.Database)
	cartRepo := repository.NewCartRepository(cfg.Database)
	intentStore := cache.NewRedisPaymentIntentStore(cfg.Redis)
	txManager := db.NewTransactionManager(cfg.Database)
	refGen := services.NewPaymentReferenceGenerator()

	createPaymentURLUC := checkoutUsecases.NewCreatePaymentURLUseCase(cartRepo, gateway, intentStore, refGen, cfg.Logger)
	settleOrderUC := checkoutUsecases.NewSettleOrderUseCase(orderRepo, cartRepo, gateway, intentStore, txManager, cfg.Logger)
	listOrdersUC := checkoutUsecases.NewListOrdersUseCase(orderRepo, cfg.Logger)
	getOrderUC := checkoutUsecases.NewGetOrderUseCase(orderRepo, cfg.Logger)
	addItemUC := checkoutUsecases.NewAddCartItemUseCase(cartRepo, cfg.Logger)
	removeItemUC := checkoutUsecases.NewRemoveCartItemUseCase(cartRepo, cfg.Logger)
	getCartUC := checkoutUsecases.NewGetCartUseCase(cartRepo, cfg.Logger)

	r := &Router{}

	if cfg.Kafka.Enabled {
		publisher, err := pubsub.NewKafkaOrderPublisher(cfg.Kafka, cfg.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		settleOrderUC.SetEventPublisher(publisher)
		r.publisher = publisher
	}

	checkoutHandler := handlers.NewCheckoutHandler(createPaymentURLUC, settleOrderUC, cfg.Logger)
	orderHandler := handlers.NewOrderHandler(listOrdersUC, getOrderUC, cfg.Logger)
	cartHandler := handlers.NewCartHandler(addItemUC, removeItemUC, getCartUC, cfg.Logger)
	authMiddleware := middleware.RequireAuth(jwtService)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(cfg.Logger))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group("/api/v1")
	routes.SetupCheckoutRoutes(api, &routes.CheckoutRouteConfig{
		CheckoutHandler: checkoutHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupOrderRoutes(api, &routes.OrderRouteConfig{
		OrderHandler:   orderHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupCartRoutes(api, &routes.CartRouteConfig{
		CartHandler:    cartHandler,
		AuthMiddleware: authMiddleware,
	})

	r.engine = engine
	return r, nil
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Close releases resources held by the router.
func (r *Router) Close() error {
	if r.publisher != nil {
		return r.publisher.Close()
	}
	return nil
}

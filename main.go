// @title Electronics Store Storefront API
// @version 1.0
// @description Storefront catalog API: category tree, faceted product listings, promotion badges.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/DeaforK/electronics-store-sub002/cache"
	"github.com/DeaforK/electronics-store-sub002/catalog"
	"github.com/DeaforK/electronics-store-sub002/config"
	"github.com/DeaforK/electronics-store-sub002/consumers"
	"github.com/DeaforK/electronics-store-sub002/controllers/storefront"
	"github.com/DeaforK/electronics-store-sub002/middleware"
	"github.com/DeaforK/electronics-store-sub002/rabbitmq"
	"github.com/DeaforK/electronics-store-sub002/repository"
	"github.com/DeaforK/electronics-store-sub002/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.InitDB()
	defer config.CloseDB()
	config.ConnectRedis()

	// Repositories
	categoryRepo := repository.NewCategoryRepository(config.DB)
	productRepo := repository.NewProductRepository(config.DB)
	variationRepo := repository.NewVariationRepository(config.DB)
	promotionRepo := repository.NewPromotionRepository(config.DB)
	favoriteRepo := repository.NewFavoriteRepository(config.DB)
	facetRepo := repository.NewFacetRepository(config.Pool)

	// Catalog core
	cachedCategories := cache.NewCachedCategoryStore(categoryRepo)
	sessions := cache.NewRedisSessionStore(config.RedisClient)
	loader := catalog.NewLoader(cachedCategories, variationRepo, promotionRepo, favoriteRepo, sessions)

	storefront.Init(loader, categoryRepo, productRepo, variationRepo, facetRepo, promotionRepo, favoriteRepo)

	// Catalog-change feed: invalidates caches when the CMS edits the catalog
	brokerCfg := config.LoadBrokerConfig()
	broker, err := rabbitmq.NewRabbitMQ(brokerCfg)
	if err != nil {
		log.Printf("⚠️ RabbitMQ unavailable, cache invalidation disabled: %v", err)
	} else {
		defer broker.Close()
		if err := broker.Setup(); err != nil {
			log.Printf("⚠️ RabbitMQ setup failed: %v", err)
		} else {
			consumers.StartCatalogConsumer(broker.Channel, brokerCfg, cachedCategories)
			log.Println("✅ Catalog consumer started")
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Catalog-Session", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.PrometheusMiddleware())

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))
	routes.SetupStorefrontRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Storefront is running on http://localhost:8080")
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}

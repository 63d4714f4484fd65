package routes

import (
	"github.com/DeaforK/electronics-store-sub002/controllers/storefront"
	"github.com/DeaforK/electronics-store-sub002/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	catalogGroup := store.Group("/catalog")
	catalogGroup.Use(middleware.OptionalAuth())
	{
		catalogGroup.GET("", storefront.GetCatalogPage)
		catalogGroup.GET("/facets", storefront.GetFacets)
	}

	products := store.Group("/products")
	products.Use(middleware.OptionalAuth())
	{
		products.GET("/:id", storefront.GetProductByID)
	}

	store.GET("/categories", storefront.GetCategories)

	favorites := store.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware())
	{
		favorites.GET("", storefront.GetFavorites)
		favorites.POST("", storefront.AddFavorite)
		favorites.DELETE("/:id", storefront.RemoveFavorite)
	}
}

package storefront

import (
	"errors"
	"log"
	"net/http"

	"github.com/DeaforK/electronics-store-sub002/catalog"
	"github.com/DeaforK/electronics-store-sub002/config"
	"github.com/DeaforK/electronics-store-sub002/middleware"
	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/DeaforK/electronics-store-sub002/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetProductByID godoc
// @Summary Get a single grouped product
// @Description One product with all active variations, derived pricing and its promotion badge.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if _, err := productRepo.GetActiveProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	variations, err := variationRepo.GetProductVariations(ctx, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if len(variations) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	grouped := catalog.Group(variations)
	view := &grouped[0]
	view.Promotion = badgeResolver.Resolve(ctx, view, nil)
	view.ActivePromotions = badgeResolver.ListActivePromotions(ctx, view)

	if userID, ok := middleware.UserIDFromContext(c); ok {
		if favorites, err := favoriteRepo.ListProductIDs(ctx, userID); err == nil {
			_, view.IsFavorite = favorites[view.ProductID]
		}
	}

	if err := productRepo.IncrementViews(ctx, productID); err != nil {
		log.Printf("storefront: failed to bump views for %s: %v", productID, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", view))
}

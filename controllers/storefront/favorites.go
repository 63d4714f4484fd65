package storefront

import (
	"net/http"

	"github.com/DeaforK/electronics-store-sub002/config"
	"github.com/DeaforK/electronics-store-sub002/middleware"
	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type favoriteRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// GetFavorites godoc
// @Summary List the user's favorites
// @Tags Storefront - Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /store/favorites [get]
func GetFavorites(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	favorites, err := favoriteRepo.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch favorites"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched successfully", favorites))
}

// AddFavorite godoc
// @Summary Add a product to the user's favorites
// @Tags Storefront - Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body favoriteRequest true "Product to favorite"
// @Success 201 {object} models.ApiResponse
// @Router /store/favorites [post]
func AddFavorite(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "product_id is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := favoriteRepo.Add(ctx, userID, req.ProductID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add favorite"))
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Favorite added", nil))
}

// RemoveFavorite godoc
// @Summary Remove a product from the user's favorites
// @Tags Storefront - Favorites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Router /store/favorites/{id} [delete]
func RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := favoriteRepo.Remove(ctx, userID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove favorite"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorite removed", nil))
}

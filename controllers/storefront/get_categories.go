package storefront

import (
	"net/http"

	"github.com/DeaforK/electronics-store-sub002/config"
	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description All active categories with product counts, nested as a forest.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	allCategories, err := categoryRepo.ListStorefrontCategories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	// Build hierarchy: index first, then attach children to parents. A
	// category whose parent is missing from the active set is dropped, the
	// same policy the catalog tree resolver applies.
	categoriesMap := make(map[string]*models.StorefrontCategory, len(allCategories))
	roots := make([]*models.StorefrontCategory, 0)

	for i := range allCategories {
		cat := &allCategories[i]
		categoriesMap[cat.ID] = cat
		if cat.ParentID == nil {
			roots = append(roots, cat)
		}
	}

	for _, cat := range categoriesMap {
		if cat.ParentID == nil {
			continue
		}
		if parent, exists := categoriesMap[*cat.ParentID]; exists {
			parent.Subcategories = append(parent.Subcategories, *cat)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", roots))
}

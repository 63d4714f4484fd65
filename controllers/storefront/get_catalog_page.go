package storefront

import (
	"errors"
	"net/http"

	"github.com/DeaforK/electronics-store-sub002/catalog"
	"github.com/DeaforK/electronics-store-sub002/config"
	"github.com/DeaforK/electronics-store-sub002/middleware"
	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCatalogPage godoc
// @Summary Get a storefront catalog page
// @Description Filtered, sorted, paginated product listing for a category, grouped per product with derived pricing and promotion badges.
// @Tags Storefront - Catalog
// @Produce json
// @Param category query string true "Category ID (scope includes all descendants)"
// @Param promotion query string false "Promotion ID when browsing a promotion's own page"
// @Param minPrice query number false "Minimum variation price"
// @Param maxPrice query number false "Maximum variation price"
// @Param rating query string false "Rating range token, e.g. 4-5"
// @Param minDiscount query number false "Minimum discount percent"
// @Param maxDiscount query number false "Maximum discount percent"
// @Param availability query string false "Stock facet (in_stock | out_of_stock)"
// @Param sort query string false "Sort (rating_desc | price_asc | price_desc | discount_desc)" default(rating_desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param session query string false "Listing session token"
// @Success 200 {object} models.ApiResponse "Catalog page fetched successfully"
// @Success 204 "Result superseded by a newer request"
// @Failure 400 {object} models.ApiResponse "Invalid category id"
// @Router /store/catalog [get]
func GetCatalogPage(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category id"))
		return
	}

	var promotionID *uuid.UUID
	if raw := c.Query("promotion"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid promotion id"))
			return
		}
		promotionID = &id
	}

	req := catalog.PageRequest{
		SessionID:   sessionID(c),
		CategoryID:  categoryID,
		PromotionID: promotionID,
		Selections:  parseSelections(c),
	}
	if userID, ok := middleware.UserIDFromContext(c); ok {
		req.UserID = &userID
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	page, err := loader.LoadCatalogPage(ctx, req)
	if errors.Is(err, catalog.ErrStaleResult) {
		// a newer request in this session already answered; drop this one
		middleware.RecordCatalogQuery("stale")
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		middleware.RecordCatalogQuery("error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load catalog page"))
		return
	}

	outcome := "served"
	if page.Total == 0 {
		outcome = "empty"
	}
	middleware.RecordCatalogQuery(outcome)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Catalog page fetched successfully",
		page.GroupedProducts,
		&models.Pagination{
			Page:       page.Page,
			Limit:      page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	))
}

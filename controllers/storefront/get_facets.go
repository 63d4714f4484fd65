package storefront

import (
	"log"
	"net/http"

	"github.com/DeaforK/electronics-store-sub002/catalog"
	"github.com/DeaforK/electronics-store-sub002/config"
	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetFacets godoc
// @Summary Get facet definitions for a catalog scope
// @Description Dynamic attribute facets, price range, availability and sort options for the filter sidebar.
// @Tags Storefront - Catalog
// @Produce json
// @Param category query string true "Category ID (scope includes all descendants)"
// @Success 200 {object} models.ApiResponse "Facets fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid category id"
// @Router /store/catalog/facets [get]
func GetFacets(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	scope := loader.FacetScope(ctx, categoryID)

	metadata := models.FacetMetadata{
		Sections: map[string]map[string][]string{},
		Availability: []models.FilterOption{
			{Label: "In Stock", Value: "in_stock"},
			{Label: "Out of Stock", Value: "out_of_stock"},
		},
		SortOptions: []models.FilterOption{
			{Label: "Top Rated", Value: catalog.SortRatingDesc},
			{Label: "Price: Low to High", Value: catalog.SortPriceAsc},
			{Label: "Price: High to Low", Value: catalog.SortPriceDesc},
			{Label: "Biggest Discount", Value: catalog.SortDiscountDesc},
		},
	}

	if sections, err := facetStore.ListFacetDefinitions(ctx, scope); err == nil {
		metadata.Sections = sections
	} else {
		log.Printf("storefront: facet definitions unavailable: %v", err)
	}

	if priceRange, err := facetStore.PriceRange(ctx, scope); err == nil {
		metadata.PriceRange = priceRange
	} else {
		log.Printf("storefront: price range unavailable: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Facets fetched successfully", metadata))
}

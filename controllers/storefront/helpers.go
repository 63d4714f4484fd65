package storefront

import (
	"strconv"
	"strings"

	"github.com/DeaforK/electronics-store-sub002/catalog"
	"github.com/gin-gonic/gin"
)

const attrPrefix = "attr_"

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > catalog.MaxPageSize {
		limit = catalog.DefaultPageSize
	}
	return page, limit
}

// parseSelections reads the facet query parameters. Free-form attribute
// facets arrive as repeatable attr_<Name> parameters, e.g.
// ?attr_Color=Black&attr_Color=Silver&attr_Storage=256GB.
func parseSelections(c *gin.Context) catalog.RawSelections {
	page, limit := parsePagination(c)

	attributes := make(map[string][]string)
	for key, values := range c.Request.URL.Query() {
		if !strings.HasPrefix(key, attrPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, attrPrefix)
		if name != "" {
			attributes[name] = append(attributes[name], values...)
		}
	}
	if len(attributes) == 0 {
		attributes = nil
	}

	return catalog.RawSelections{
		PriceMin:     c.Query("minPrice"),
		PriceMax:     c.Query("maxPrice"),
		Rating:       c.Query("rating"),
		DiscountMin:  c.Query("minDiscount"),
		DiscountMax:  c.Query("maxDiscount"),
		Availability: c.Query("availability"),
		Attributes:   attributes,
		Sort:         c.DefaultQuery("sort", catalog.SortRatingDesc),
		Page:         page,
		PageSize:     limit,
	}
}

// sessionID identifies one open catalog view for sequence guarding and page
// resets. Clients pass a stable token; without one the client IP is a
// serviceable fallback.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Catalog-Session"); sid != "" {
		return sid
	}
	if sid := c.Query("session"); sid != "" {
		return sid
	}
	return c.ClientIP()
}

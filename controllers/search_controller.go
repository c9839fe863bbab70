package controllers

import (
	"net/http"

	"vitrine/services"

	"github.com/gin-gonic/gin"
)

// SearchController serves the public and admin search endpoints.
type SearchController struct {
	search *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{search: search}
}

// Public handles GET /api/v1/search?query=... for storefront widgets.
func (sc *SearchController) Public(c *gin.Context) {
	result, svcErr := sc.search.Public(c.Request.Context(), c.Query("query"))
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"perfumes": toParfumResponses(result.Perfumes),
		"brands": func() []BrandResponse {
			out := make([]BrandResponse, 0, len(result.Brands))
			for i := range result.Brands {
				out = append(out, toBrandResponse(&result.Brands[i], false))
			}
			return out
		}(),
	})
}

// Admin handles GET /admin_panel/search?q=... covering orders as well.
func (sc *SearchController) Admin(c *gin.Context) {
	result, svcErr := sc.search.Admin(c.Request.Context(), c.Query("q"))
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	brands := make([]BrandResponse, 0, len(result.Brands))
	for i := range result.Brands {
		brands = append(brands, toBrandResponse(&result.Brands[i], false))
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   result.Total,
		"query":   result.Query,
		"parfums": toParfumResponses(result.Parfums),
		"brands":  brands,
		"orders":  toOrderResponses(result.Orders),
	})
}

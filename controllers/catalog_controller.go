package controllers

import (
	"net/http"

	"vitrine/services"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the public read API for brands and perfumes.
type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// ListBrands returns all brands with their perfumes and variants.
func (cc *CatalogController) ListBrands(c *gin.Context) {
	brands, svcErr := cc.catalog.ListBrandsWithParfums(c.Request.Context())
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	out := make([]BrandResponse, 0, len(brands))
	for i := range brands {
		out = append(out, toBrandResponse(&brands[i], true))
	}
	c.JSON(http.StatusOK, out)
}

// OnlyBrands returns the brand list without perfumes, for nav menus.
func (cc *CatalogController) OnlyBrands(c *gin.Context) {
	brands, svcErr := cc.catalog.ListBrands(c.Request.Context())
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	out := make([]BrandResponse, 0, len(brands))
	for i := range brands {
		out = append(out, toBrandResponse(&brands[i], false))
	}
	c.JSON(http.StatusOK, out)
}

// GetBrand returns one brand with its perfumes.
func (cc *CatalogController) GetBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	brand, svcErr := cc.catalog.GetBrand(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toBrandResponse(brand, true))
}

// ListParfums returns the whole catalog.
func (cc *CatalogController) ListParfums(c *gin.Context) {
	parfums, svcErr := cc.catalog.ListParfums(c.Request.Context())
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toParfumResponses(parfums))
}

// GetParfum returns one perfume plus up to four associated perfumes of the
// same brand, for the product page.
func (cc *CatalogController) GetParfum(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	parfum, svcErr := cc.catalog.GetParfum(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	associated, svcErr := cc.catalog.AssociatedParfums(c.Request.Context(), parfum, 4)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"parfum":     toParfumResponse(parfum),
		"associated": toParfumResponses(associated),
	})
}

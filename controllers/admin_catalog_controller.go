package controllers

import (
	"net/http"

	"vitrine/services"

	"github.com/gin-gonic/gin"
)

// AdminCatalogController serves the back-office CRUD for brands, perfumes
// and their nested variants.
type AdminCatalogController struct {
	catalog *services.CatalogService
}

func NewAdminCatalogController(catalog *services.CatalogService) *AdminCatalogController {
	return &AdminCatalogController{catalog: catalog}
}

// ListBrands handles GET /admin_panel/brands
func (ac *AdminCatalogController) ListBrands(c *gin.Context) {
	brands, svcErr := ac.catalog.ListBrands(c.Request.Context())
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

// CreateBrand handles POST /admin_panel/brands
func (ac *AdminCatalogController) CreateBrand(c *gin.Context) {
	var in services.BrandInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	brand, svcErr := ac.catalog.CreateBrand(c.Request.Context(), &in)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, toBrandResponse(brand, false))
}

// UpdateBrand handles PATCH /admin_panel/brands/:id
func (ac *AdminCatalogController) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var in services.BrandInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	brand, svcErr := ac.catalog.UpdateBrand(c.Request.Context(), id, &in)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toBrandResponse(brand, false))
}

// DeleteBrand handles DELETE /admin_panel/brands/:id
func (ac *AdminCatalogController) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if svcErr := ac.catalog.DeleteBrand(c.Request.Context(), id); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
}

// ListParfums handles GET /admin_panel/parfums
func (ac *AdminCatalogController) ListParfums(c *gin.Context) {
	parfums, svcErr := ac.catalog.ListParfums(c.Request.Context())
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toParfumResponses(parfums))
}

// ShowParfum handles GET /admin_panel/parfums/:id
func (ac *AdminCatalogController) ShowParfum(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	parfum, svcErr := ac.catalog.GetParfum(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toParfumResponse(parfum))
}

// CreateParfum handles POST /admin_panel/parfums
func (ac *AdminCatalogController) CreateParfum(c *gin.Context) {
	var in services.ParfumInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	parfum, svcErr := ac.catalog.CreateParfum(c.Request.Context(), &in)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, toParfumResponse(parfum))
}

// UpdateParfum handles PATCH /admin_panel/parfums/:id
func (ac *AdminCatalogController) UpdateParfum(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var in services.ParfumInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	parfum, svcErr := ac.catalog.UpdateParfum(c.Request.Context(), id, &in)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toParfumResponse(parfum))
}

type updateImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// UpdateParfumImage handles PATCH /admin_panel/parfums/:id/update_image
func (ac *AdminCatalogController) UpdateParfumImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image must be provided"})
		return
	}

	parfum, svcErr := ac.catalog.UpdateParfumImage(c.Request.Context(), id, req.ImageURL)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toParfumResponse(parfum))
}

// DeleteParfum handles DELETE /admin_panel/parfums/:id
func (ac *AdminCatalogController) DeleteParfum(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if svcErr := ac.catalog.DeleteParfum(c.Request.Context(), id); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Parfum deleted"})
}

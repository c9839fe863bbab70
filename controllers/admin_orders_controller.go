package controllers

import (
	"net/http"
	"strconv"

	"vitrine/services"

	"github.com/gin-gonic/gin"
)

// AdminOrdersController serves the back-office order listing and lifecycle
// actions.
type AdminOrdersController struct {
	orders *services.OrderService
}

func NewAdminOrdersController(orders *services.OrderService) *AdminOrdersController {
	return &AdminOrdersController{orders: orders}
}

// Index handles GET /admin_panel/orders?status=...&page=...
func (oc *AdminOrdersController) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	status := c.DefaultQuery("status", "all")

	listing, svcErr := oc.orders.List(c.Request.Context(), status, page)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      toOrderResponses(listing.Page.Items),
		"page":        listing.Page.PageNumber,
		"page_size":   listing.Page.PageSize,
		"total_count": listing.Page.TotalCount,
		"total_pages": listing.Page.TotalPages(),
		"stats":       listing.Counts,
	})
}

// Show handles GET /admin_panel/orders/:id
func (oc *AdminOrdersController) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, svcErr := oc.orders.Get(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

type updateStatusRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
}

// UpdateStatus handles PATCH /admin_panel/orders/:id/update_status
func (oc *AdminOrdersController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := oc.orders.UpdateStatus(c.Request.Context(), id, req.NewStatus); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

// Destroy handles DELETE /admin_panel/orders/:id
func (oc *AdminOrdersController) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if svcErr := oc.orders.Delete(c.Request.Context(), id); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

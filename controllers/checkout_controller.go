package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vitrine/services"

	"github.com/gin-gonic/gin"
)

// CheckoutController drives the storefront checkout flow: pricing preview,
// order creation and the confirmation page.
type CheckoutController struct {
	checkout *services.CheckoutService
	carts    *services.CartService
}

func NewCheckoutController(checkout *services.CheckoutService, carts *services.CartService) *CheckoutController {
	return &CheckoutController{checkout: checkout, carts: carts}
}

// Preview handles GET /vitrine/checkout. Buy-now links pass parfum_id, size
// and quantity as query parameters; otherwise the submitted cart snapshot
// comes in the cart_items parameter.
func (cc *CheckoutController) Preview(c *gin.Context) {
	req := &services.CheckoutRequest{}

	if raw := c.Query("parfum_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parfum_id"})
			return
		}
		req.ParfumID = uint(id)
		req.Size = c.Query("size")
		req.Quantity, _ = strconv.Atoi(c.DefaultQuery("quantity", "1"))
	} else if raw := c.Query("cart_items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart_items"})
			return
		}
	}

	preview, svcErr := cc.checkout.Preview(c.Request.Context(), req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Create handles POST /vitrine/checkout. On validation failure the response
// echoes the priced line items so the form re-renders without losing input.
func (cc *CheckoutController) Create(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, preview, svcErr := cc.checkout.PlaceOrder(c.Request.Context(), &req)
	if svcErr != nil {
		body := gin.H{"error": svcErr.Message}
		if len(svcErr.Fields) > 0 {
			body["fields"] = svcErr.Fields
		}
		if preview != nil {
			body["preview"] = preview
		}
		c.JSON(svcErr.StatusCode, body)
		return
	}

	// The order is placed; the caller's cart is done with.
	if token := requestCartToken(c); token != "" {
		_ = cc.carts.Clear(c.Request.Context(), token)
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        toOrderResponse(order),
		"redirect_url": "/vitrine/order_confirmation/" + strconv.FormatUint(uint64(order.ID), 10),
	})
}

// Confirmation handles GET /vitrine/order_confirmation/:id.
func (cc *CheckoutController) Confirmation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, svcErr := cc.checkout.GetOrder(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

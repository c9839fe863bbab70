package controllers

import (
	"io"
	"net/http"

	"vitrine/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// cartTokenCookie identifies a guest cart across visits.
const cartTokenCookie = "cart_token"

// CartController serves the guest cart API. The cart token travels in a
// cookie (or X-Cart-Token header for API clients) and is issued on first
// contact.
type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// requestCartToken resolves the caller's cart token, header before cookie.
// Empty when the caller has no cart yet.
func requestCartToken(c *gin.Context) string {
	if token := c.GetHeader("X-Cart-Token"); token != "" {
		return token
	}
	if token, err := c.Cookie(cartTokenCookie); err == nil {
		return token
	}
	return ""
}

func (cc *CartController) token(c *gin.Context) string {
	if token := requestCartToken(c); token != "" {
		return token
	}
	token := uuid.NewString()
	c.SetCookie(cartTokenCookie, token, 60*60*24*30, "/", "", false, true)
	return token
}

// Get returns the current cart with totals.
func (cc *CartController) Get(c *gin.Context) {
	view, svcErr := cc.carts.Get(c.Request.Context(), cc.token(c))
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, view)
}

type addCartItemRequest struct {
	ParfumID string  `json:"parfum_id" binding:"required"`
	Size     string  `json:"size" binding:"required"`
	Price    float64 `json:"price"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
}

// Add handles POST /api/v1/cart_items.
func (cc *CartController) Add(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	view, svcErr := cc.carts.Add(c.Request.Context(), cc.token(c), req.ParfumID, req.Size, req.Price, req.Name, req.ImageURL)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, view)
}

type updateCartItemRequest struct {
	ParfumID string `json:"parfum_id" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity *int   `json:"quantity"`
}

// Update handles PATCH /api/v1/cart_items. A missing or unparseable
// quantity is clamped to 1; zero or less removes the line.
func (cc *CartController) Update(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	view, svcErr := cc.carts.SetQuantity(c.Request.Context(), cc.token(c), req.ParfumID, req.Size, quantity)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Remove handles DELETE /api/v1/cart_items.
func (cc *CartController) Remove(c *gin.Context) {
	parfumID := c.Query("parfum_id")
	size := c.Query("size")
	if parfumID == "" || size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parfum_id and size are required"})
		return
	}

	view, svcErr := cc.carts.Remove(c.Request.Context(), cc.token(c), parfumID, size)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Events streams cart change events over SSE so the mini-cart, counter and
// cart page stay in sync without polling.
func (cc *CartController) Events(c *gin.Context) {
	token := cc.token(c)
	events, cancel := cc.carts.Bus().Subscribe()
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			if ev.Token == token {
				c.SSEvent("cart-updated", ev)
			}
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

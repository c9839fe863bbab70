package controllers

import (
	"net/http"
	"strconv"

	"vitrine/models"
	"vitrine/services"

	"github.com/gin-gonic/gin"
)

// VariantResponse is the public size/price shape.
type VariantResponse struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// BrandSummary is the brand reference embedded in perfume payloads.
type BrandSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ParfumResponse is the public perfume shape with its brand summary,
// variant list and minimum price convenience field.
type ParfumResponse struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	FragranceClass string            `json:"fragrance_class"`
	Available      bool              `json:"available"`
	ImageURL       string            `json:"image_url,omitempty"`
	Brand          *BrandSummary     `json:"brand,omitempty"`
	Variants       []VariantResponse `json:"variants"`
	MinPrice       float64           `json:"min_price"`
}

// BrandResponse is the public brand shape, optionally with its perfumes.
type BrandResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url,omitempty"`
	Parfums     []ParfumResponse `json:"parfums,omitempty"`
}

// OrderResponse is the admin-facing order shape with decoded line items and
// the status name instead of its integer code.
type OrderResponse struct {
	ID          uint              `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	PostalCode  string            `json:"postal_code"`
	Items       []models.LineItem `json:"items"`
	Subtotal    float64           `json:"subtotal"`
	DeliveryFee float64           `json:"delivery_fee"`
	TotalAmount float64           `json:"total_amount"`
	Status      string            `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

func toParfumResponse(p *models.Parfum) ParfumResponse {
	resp := ParfumResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category.String(),
		FragranceClass: p.FragranceClass.String(),
		Available:      p.Available,
		ImageURL:       p.ImageURL,
		Variants:       make([]VariantResponse, 0, len(p.Variants)),
		MinPrice:       p.MinPrice(),
	}
	if p.Brand != nil {
		resp.Brand = &BrandSummary{ID: p.Brand.ID, Name: p.Brand.Name}
	}
	for _, v := range p.Variants {
		resp.Variants = append(resp.Variants, VariantResponse{Size: v.Size, Price: v.Price})
	}
	return resp
}

func toParfumResponses(parfums []models.Parfum) []ParfumResponse {
	out := make([]ParfumResponse, 0, len(parfums))
	for i := range parfums {
		out = append(out, toParfumResponse(&parfums[i]))
	}
	return out
}

func toBrandResponse(b *models.Brand, withParfums bool) BrandResponse {
	resp := BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		ImageURL:    b.ImageURL,
	}
	if withParfums {
		resp.Parfums = toParfumResponses(b.Parfums)
	}
	return resp
}

func toOrderResponse(o *models.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		FirstName:   o.FirstName,
		LastName:    o.LastName,
		Phone:       o.Phone,
		Address:     o.Address,
		City:        o.City,
		PostalCode:  o.PostalCode,
		Items:       o.Items(),
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		TotalAmount: o.TotalAmount,
		Status:      o.StatusName(),
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}

// abortWithServiceError writes a ServiceError as JSON.
func abortWithServiceError(c *gin.Context, err *services.ServiceError) {
	body := gin.H{"error": err.Message}
	if len(err.Fields) > 0 {
		body["fields"] = err.Fields
	}
	c.JSON(err.StatusCode, body)
}

// parseIDParam reads the :id path segment as an unsigned integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

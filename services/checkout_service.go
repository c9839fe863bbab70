package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"vitrine/cart"
	"vitrine/logger"
	"vitrine/models"
	"vitrine/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LineItemInput is one submitted cart line. Prices are recomputed into
// totals server-side; client-submitted totals are never trusted.
type LineItemInput struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Size     string  `json:"size"`
	Price    float64 `json:"price" validate:"gt=0"`
	Quantity int     `json:"quantity" validate:"min=1"`
	ImageURL string  `json:"imageUrl"`
}

// CheckoutRequest is a checkout form submission: contact fields plus either
// a cart snapshot or a single buy-now reference.
type CheckoutRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Notes      string `json:"notes"`

	Items []LineItemInput `json:"items"`

	// Buy-now path: resolves price and name from the catalog server-side.
	ParfumID uint   `json:"parfum_id"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// CheckoutPreview echoes the submitted line items with recomputed totals,
// returned alongside validation errors so the form re-renders with nothing
// lost, and on the checkout page before submission.
type CheckoutPreview struct {
	Items       []models.LineItem `json:"items"`
	Subtotal    float64           `json:"subtotal"`
	DeliveryFee float64           `json:"delivery_fee"`
	Total       float64           `json:"total"`
}

type CheckoutService struct {
	orders   repository.OrderRepository
	parfums  repository.ParfumRepository
	validate *validator.Validate
}

func NewCheckoutService(orders repository.OrderRepository, parfums repository.ParfumRepository) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		parfums:  parfums,
		validate: validator.New(),
	}
}

// Preview resolves the line items of a request and prices them without
// persisting anything. Used by the checkout page, including buy-now links.
func (s *CheckoutService) Preview(ctx context.Context, req *CheckoutRequest) (*CheckoutPreview, *ServiceError) {
	items, svcErr := s.resolveItems(ctx, req)
	if svcErr != nil {
		return nil, svcErr
	}
	return previewFor(items), nil
}

// PlaceOrder validates the request, recomputes totals server-side and
// persists a pending order. On validation failure nothing is persisted and
// the preview is returned so the caller can re-render the form.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req *CheckoutRequest) (*models.Order, *CheckoutPreview, *ServiceError) {
	items, svcErr := s.resolveItems(ctx, req)
	if svcErr != nil {
		return nil, nil, svcErr
	}
	preview := previewFor(items)

	if fields := s.validateContact(req); len(fields) > 0 {
		return nil, preview, &ServiceError{
			StatusCode: 422,
			Message:    "Please correct the highlighted fields",
			Fields:     fields,
		}
	}

	order := &models.Order{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		PostalCode:  strings.TrimSpace(req.PostalCode),
		Notes:       strings.TrimSpace(req.Notes),
		Subtotal:    preview.Subtotal,
		DeliveryFee: preview.DeliveryFee,
		TotalAmount: preview.Total,
		Status:      models.StatusPending,
	}
	if err := order.SetItems(items); err != nil {
		logger.Log.Error("failed to encode order items", zap.Error(err))
		return nil, preview, internal("Failed to process order")
	}

	if order.TotalAmount <= 0 {
		return nil, preview, &ServiceError{
			StatusCode: 422,
			Message:    "Order total must be greater than 0",
			Fields:     map[string]string{"total_amount": "must be greater than 0"},
		}
	}

	if err := s.orders.Create(ctx, order); err != nil {
		logger.Log.Error("failed to persist order", zap.Error(err))
		return nil, preview, internal("Failed to create order")
	}

	logger.Log.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Float64("total", order.TotalAmount),
		zap.Int("items", len(items)),
	)
	return order, preview, nil
}

// GetOrder loads one order for the confirmation page.
func (s *CheckoutService) GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Order not found")
		}
		logger.Log.Error("failed to fetch order", zap.Uint("order_id", id), zap.Error(err))
		return nil, internal("Failed to fetch order")
	}
	return order, nil
}

// resolveItems turns the request into normalized line items. The buy-now
// path takes precedence and prices the item from the catalog variant.
func (s *CheckoutService) resolveItems(ctx context.Context, req *CheckoutRequest) ([]models.LineItem, *ServiceError) {
	if req.ParfumID != 0 {
		return s.resolveBuyNow(ctx, req)
	}

	if len(req.Items) == 0 {
		return nil, badRequest("At least one item is required")
	}

	items := make([]models.LineItem, 0, len(req.Items))
	for _, in := range req.Items {
		if err := s.validate.Struct(in); err != nil {
			return nil, badRequest("Each item needs a positive price and a quantity of at least 1")
		}
		items = append(items, models.LineItem{
			ID:        in.ID,
			Name:      strings.TrimSpace(in.Name),
			Size:      strings.TrimSpace(in.Size),
			UnitPrice: in.Price,
			Quantity:  in.Quantity,
			ImageURL:  in.ImageURL,
		})
	}
	return items, nil
}

func (s *CheckoutService) resolveBuyNow(ctx context.Context, req *CheckoutRequest) ([]models.LineItem, *ServiceError) {
	parfum, err := s.parfums.FindByID(ctx, req.ParfumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Parfum not found")
		}
		logger.Log.Error("failed to fetch parfum for buy-now", zap.Uint("parfum_id", req.ParfumID), zap.Error(err))
		return nil, internal("Failed to fetch parfum")
	}

	variant, err := s.parfums.FindVariant(ctx, req.ParfumID, req.Size)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, badRequest("The requested size is not available")
		}
		logger.Log.Error("failed to fetch variant for buy-now", zap.Uint("parfum_id", req.ParfumID), zap.Error(err))
		return nil, internal("Failed to fetch parfum")
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return []models.LineItem{{
		ID:        strconv.FormatUint(uint64(parfum.ID), 10),
		Name:      parfum.Name,
		Size:      variant.Size,
		UnitPrice: variant.Price,
		Quantity:  quantity,
		ImageURL:  parfum.ImageURL,
	}}, nil
}

func (s *CheckoutService) validateContact(req *CheckoutRequest) map[string]string {
	fields := map[string]string{}
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			fields[name] = "is required"
		}
	}
	check("first_name", req.FirstName)
	check("last_name", req.LastName)
	check("phone", req.Phone)
	check("address", req.Address)
	check("city", req.City)
	check("postal_code", req.PostalCode)
	return fields
}

func previewFor(items []models.LineItem) *CheckoutPreview {
	var subtotal float64
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	fee := cart.DeliveryFeeFor(subtotal)
	return &CheckoutPreview{
		Items:       items,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

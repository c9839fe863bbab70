package services

import (
	"context"
	"errors"

	"vitrine/logger"
	"vitrine/models"
	"vitrine/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrdersPerPage is the fixed page size of the admin order listing.
const OrdersPerPage = 25

// Page is a uniformly computed listing page, independent of any paging
// helper.
type Page struct {
	Items      []models.Order `json:"items"`
	PageNumber int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int64          `json:"total_count"`
}

// TotalPages derives the page count from the total and the page size.
func (p Page) TotalPages() int64 {
	if p.PageSize == 0 {
		return 0
	}
	return (p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize)
}

// OrderListing is one admin listing page plus the per-status badge counts.
type OrderListing struct {
	Page   Page                    `json:"page"`
	Counts repository.StatusCounts `json:"counts"`
}

// OrderService drives the admin-side order lifecycle.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// List returns one page of orders, newest first. statusName filters by a
// single status; "all" or empty lists everything.
func (s *OrderService) List(ctx context.Context, statusName string, page int) (*OrderListing, *ServiceError) {
	if page < 1 {
		page = 1
	}

	var filter *models.OrderStatus
	if statusName != "" && statusName != "all" {
		status, ok := models.ParseOrderStatus(statusName)
		if !ok {
			return nil, badRequest("Unknown status: " + statusName)
		}
		filter = &status
	}

	orders, total, err := s.orders.FindPage(ctx, filter, page, OrdersPerPage)
	if err != nil {
		logger.Log.Error("failed to list orders", zap.Error(err))
		return nil, internal("Failed to fetch orders")
	}

	counts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		logger.Log.Error("failed to count orders by status", zap.Error(err))
		return nil, internal("Failed to fetch orders")
	}

	return &OrderListing{
		Page: Page{
			Items:      orders,
			PageNumber: page,
			PageSize:   OrdersPerPage,
			TotalCount: total,
		},
		Counts: counts,
	}, nil
}

// UpdateStatus moves an order to the named status. Unknown status names are
// rejected and the order is left untouched. Any known status is accepted
// from any current status; concurrent updates are last-write-wins.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, statusName string) *ServiceError {
	status, ok := models.ParseOrderStatus(statusName)
	if !ok {
		return badRequest("Invalid status")
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Order not found")
		}
		logger.Log.Error("failed to update order status",
			zap.Uint("order_id", id),
			zap.String("status", statusName),
			zap.Error(err),
		)
		return internal("Failed to update order status")
	}

	logger.Log.Info("order status updated",
		zap.Uint("order_id", id),
		zap.String("status", statusName),
	)
	return nil
}

// Delete hard-deletes an order. Irreversible.
func (s *OrderService) Delete(ctx context.Context, id uint) *ServiceError {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Order not found")
		}
		logger.Log.Error("failed to delete order", zap.Uint("order_id", id), zap.Error(err))
		return internal("Failed to delete order")
	}

	logger.Log.Info("order deleted", zap.Uint("order_id", id))
	return nil
}

// Get loads one order for the admin detail view.
func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, *ServiceError) {
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

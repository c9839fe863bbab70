package repository

import (
	"context"
	"strconv"

	"vitrine/models"

	"gorm.io/gorm"
)

// StatusCounts carries the per-status totals shown as dashboard badges.
type StatusCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Shipped   int64 `json:"shipped"`
	Delivered int64 `json:"delivered"`
	Cancelled int64 `json:"cancelled"`
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindPage(ctx context.Context, status *models.OrderStatus, page, limit int) ([]models.Order, int64, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string, limit int) ([]models.Order, error)
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindPage retrieves orders newest-first, optionally filtered by status,
// with offset pagination.
func (r *GormOrderRepository) FindPage(ctx context.Context, status *models.OrderStatus, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Order{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context) (StatusCounts, error) {
	var counts StatusCounts

	rows := []struct {
		Status models.OrderStatus
		N      int64
	}{}
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return counts, err
	}

	for _, row := range rows {
		counts.Total += row.N
		switch row.Status {
		case models.StatusPending:
			counts.Pending = row.N
		case models.StatusConfirmed:
			counts.Confirmed = row.N
		case models.StatusShipped:
			counts.Shipped = row.N
		case models.StatusDelivered:
			counts.Delivered = row.N
		case models.StatusCancelled:
			counts.Cancelled = row.N
		}
	}
	return counts, nil
}

// UpdateStatus writes only the status column, so concurrent admins can race
// on status but never clobber other order fields.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormOrderRepository) Search(ctx context.Context, query string, limit int) ([]models.Order, error) {
	var orders []models.Order
	pattern := "%" + query + "%"

	q := r.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ?",
			pattern, pattern, pattern)
	if id, err := strconv.ParseUint(query, 10, 64); err == nil {
		q = q.Or("id = ?", uint(id))
	}

	if err := q.Order("created_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

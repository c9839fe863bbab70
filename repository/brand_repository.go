package repository

import (
	"context"

	"vitrine/models"

	"gorm.io/gorm"
)

// BrandRepository defines the interface for brand data access
type BrandRepository interface {
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindAllWithParfums(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id uint) (*models.Brand, error)
	Create(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id uint) error
	CountParfums(ctx context.Context, id uint) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]models.Brand, error)
}

// GormBrandRepository implements BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

func NewGormBrandRepository(db *gorm.DB) BrandRepository {
	return &GormBrandRepository{db: db}
}

func (r *GormBrandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.WithContext(ctx).Order("name").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *GormBrandRepository) FindAllWithParfums(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.WithContext(ctx).
		Preload("Parfums.Variants").
		Preload("Parfums").
		Order("name").
		Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *GormBrandRepository) FindByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).
		Preload("Parfums.Variants").
		Preload("Parfums").
		First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *GormBrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *GormBrandRepository) Update(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *GormBrandRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Brand{}, id).Error
}

func (r *GormBrandRepository) CountParfums(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Parfum{}).
		Where("brand_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *GormBrandRepository) Search(ctx context.Context, query string, limit int) ([]models.Brand, error) {
	var brands []models.Brand
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

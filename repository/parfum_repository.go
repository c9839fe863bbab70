package repository

import (
	"context"

	"vitrine/models"

	"gorm.io/gorm"
)

// ParfumRepository defines the interface for perfume data access
type ParfumRepository interface {
	FindAll(ctx context.Context) ([]models.Parfum, error)
	FindByID(ctx context.Context, id uint) (*models.Parfum, error)
	FindByBrand(ctx context.Context, brandID uint, excludeID uint, limit int) ([]models.Parfum, error)
	Create(ctx context.Context, parfum *models.Parfum) error
	Update(ctx context.Context, parfum *models.Parfum) error
	UpdateWithVariants(ctx context.Context, parfum *models.Parfum, variants []models.Variant) error
	Delete(ctx context.Context, id uint) error
	FindVariant(ctx context.Context, parfumID uint, size string) (*models.Variant, error)
	Search(ctx context.Context, query string, limit int) ([]models.Parfum, error)
}

// GormParfumRepository implements ParfumRepository using GORM
type GormParfumRepository struct {
	db *gorm.DB
}

func NewGormParfumRepository(db *gorm.DB) ParfumRepository {
	return &GormParfumRepository{db: db}
}

func (r *GormParfumRepository) FindAll(ctx context.Context) ([]models.Parfum, error) {
	var parfums []models.Parfum
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Variants").
		Order("created_at DESC").
		Find(&parfums).Error; err != nil {
		return nil, err
	}
	return parfums, nil
}

func (r *GormParfumRepository) FindByID(ctx context.Context, id uint) (*models.Parfum, error) {
	var parfum models.Parfum
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Variants").
		First(&parfum, id).Error; err != nil {
		return nil, err
	}
	return &parfum, nil
}

// FindByBrand lists perfumes of one brand, excluding one id. Used for the
// "associated perfumes" block on product pages.
func (r *GormParfumRepository) FindByBrand(ctx context.Context, brandID uint, excludeID uint, limit int) ([]models.Parfum, error) {
	var parfums []models.Parfum
	if err := r.db.WithContext(ctx).
		Preload("Variants").
		Where("brand_id = ? AND id <> ?", brandID, excludeID).
		Limit(limit).
		Find(&parfums).Error; err != nil {
		return nil, err
	}
	return parfums, nil
}

func (r *GormParfumRepository) Create(ctx context.Context, parfum *models.Parfum) error {
	return r.db.WithContext(ctx).Create(parfum).Error
}

func (r *GormParfumRepository) Update(ctx context.Context, parfum *models.Parfum) error {
	return r.db.WithContext(ctx).
		Omit("Variants", "Brand").
		Save(parfum).Error
}

// UpdateWithVariants saves the perfume fields and swaps its variant set in
// one transaction, so a failed variant write rolls the field update back too.
func (r *GormParfumRepository) UpdateWithVariants(ctx context.Context, parfum *models.Parfum, variants []models.Variant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Variants", "Brand").Save(parfum).Error; err != nil {
			return err
		}
		if err := tx.Where("parfum_id = ?", parfum.ID).Delete(&models.Variant{}).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ID = 0
			variants[i].ParfumID = parfum.ID
		}
		if len(variants) > 0 {
			if err := tx.Create(&variants).Error; err != nil {
				return err
			}
		}
		parfum.Variants = variants
		return nil
	})
}

func (r *GormParfumRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parfum_id = ?", id).Delete(&models.Variant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Parfum{}, id).Error
	})
}

func (r *GormParfumRepository) FindVariant(ctx context.Context, parfumID uint, size string) (*models.Variant, error) {
	var variant models.Variant
	if err := r.db.WithContext(ctx).
		Where("parfum_id = ? AND size = ?", parfumID, size).
		First(&variant).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *GormParfumRepository) Search(ctx context.Context, query string, limit int) ([]models.Parfum, error) {
	var parfums []models.Parfum
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Variants").
		Joins("LEFT JOIN brands ON brands.id = parfums.brand_id").
		Where("LOWER(parfums.name) LIKE ? OR LOWER(parfums.description) LIKE ? OR LOWER(brands.name) LIKE ?",
			pattern, pattern, pattern).
		Order("parfums.created_at DESC").
		Limit(limit).
		Find(&parfums).Error; err != nil {
		return nil, err
	}
	return parfums, nil
}

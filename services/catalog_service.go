package services

import (
	"context"
	"errors"
	"strings"

	"vitrine/logger"
	"vitrine/models"
	"vitrine/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VariantInput is one submitted size/price option of a perfume.
type VariantInput struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// ParfumInput is the admin create/update payload for a perfume with its
// nested variants (replace-set semantics).
type ParfumInput struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	FragranceClass string         `json:"fragrance_class"`
	Available      *bool          `json:"available"`
	ImageURL       string         `json:"image_url"`
	BrandID        uint           `json:"brand_id"`
	Variants       []VariantInput `json:"variants"`
}

// BrandInput is the admin create/update payload for a brand.
type BrandInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CatalogService owns the admin CRUD rules for brands, perfumes and their
// variants, and the public catalog reads.
type CatalogService struct {
	brands  repository.BrandRepository
	parfums repository.ParfumRepository
}

func NewCatalogService(brands repository.BrandRepository, parfums repository.ParfumRepository) *CatalogService {
	return &CatalogService{brands: brands, parfums: parfums}
}

// ListBrands returns all brands ordered by name.
func (s *CatalogService) ListBrands(ctx context.Context) ([]models.Brand, *ServiceError) {
	brands, err := s.brands.FindAll(ctx)
	if err != nil {
		logger.Log.Error("failed to list brands", zap.Error(err))
		return nil, internal("Failed to fetch brands")
	}
	return brands, nil
}

// ListBrandsWithParfums returns all brands with their perfumes and variants.
func (s *CatalogService) ListBrandsWithParfums(ctx context.Context) ([]models.Brand, *ServiceError) {
	brands, err := s.brands.FindAllWithParfums(ctx)
	if err != nil {
		logger.Log.Error("failed to list brands", zap.Error(err))
		return nil, internal("Failed to fetch brands")
	}
	return brands, nil
}

// GetBrand loads one brand with its perfumes.
func (s *CatalogService) GetBrand(ctx context.Context, id uint) (*models.Brand, *ServiceError) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Brand not found")
		}
		logger.Log.Error("failed to fetch brand", zap.Uint("brand_id", id), zap.Error(err))
		return nil, internal("Failed to fetch brand")
	}
	return brand, nil
}

// CreateBrand persists a new brand.
func (s *CatalogService) CreateBrand(ctx context.Context, in *BrandInput) (*models.Brand, *ServiceError) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ServiceError{StatusCode: 422, Message: "Name is required", Fields: map[string]string{"name": "is required"}}
	}

	brand := &models.Brand{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    in.ImageURL,
	}
	if err := s.brands.Create(ctx, brand); err != nil {
		logger.Log.Error("failed to create brand", zap.Error(err))
		return nil, internal("Failed to create brand")
	}
	return brand, nil
}

// UpdateBrand applies a brand edit.
func (s *CatalogService) UpdateBrand(ctx context.Context, id uint, in *BrandInput) (*models.Brand, *ServiceError) {
	brand, svcErr := s.GetBrand(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ServiceError{StatusCode: 422, Message: "Name is required", Fields: map[string]string{"name": "is required"}}
	}

	brand.Name = strings.TrimSpace(in.Name)
	brand.Description = strings.TrimSpace(in.Description)
	if in.ImageURL != "" {
		brand.ImageURL = in.ImageURL
	}
	brand.Parfums = nil
	if err := s.brands.Update(ctx, brand); err != nil {
		logger.Log.Error("failed to update brand", zap.Uint("brand_id", id), zap.Error(err))
		return nil, internal("Failed to update brand")
	}
	return brand, nil
}

// DeleteBrand removes a brand. Brands still referenced by perfumes cannot
// be deleted.
func (s *CatalogService) DeleteBrand(ctx context.Context, id uint) *ServiceError {
	count, err := s.brands.CountParfums(ctx, id)
	if err != nil {
		logger.Log.Error("failed to count brand parfums", zap.Uint("brand_id", id), zap.Error(err))
		return internal("Failed to delete brand")
	}
	if count > 0 {
		return &ServiceError{StatusCode: 409, Message: "Brand still has perfumes attached"}
	}

	if err := s.brands.Delete(ctx, id); err != nil {
		logger.Log.Error("failed to delete brand", zap.Uint("brand_id", id), zap.Error(err))
		return internal("Failed to delete brand")
	}
	return nil
}

// ListParfums returns the full catalog with brand and variants.
func (s *CatalogService) ListParfums(ctx context.Context) ([]models.Parfum, *ServiceError) {
	parfums, err := s.parfums.FindAll(ctx)
	if err != nil {
		logger.Log.Error("failed to list parfums", zap.Error(err))
		return nil, internal("Failed to fetch parfums")
	}
	return parfums, nil
}

// GetParfum loads one perfume with brand and variants.
func (s *CatalogService) GetParfum(ctx context.Context, id uint) (*models.Parfum, *ServiceError) {
	parfum, err := s.parfums.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Parfum not found")
		}
		logger.Log.Error("failed to fetch parfum", zap.Uint("parfum_id", id), zap.Error(err))
		return nil, internal("Failed to fetch parfum")
	}
	return parfum, nil
}

// AssociatedParfums lists up to limit other perfumes of the same brand.
func (s *CatalogService) AssociatedParfums(ctx context.Context, parfum *models.Parfum, limit int) ([]models.Parfum, *ServiceError) {
	others, err := s.parfums.FindByBrand(ctx, parfum.BrandID, parfum.ID, limit)
	if err != nil {
		logger.Log.Error("failed to fetch associated parfums", zap.Uint("parfum_id", parfum.ID), zap.Error(err))
		return nil, internal("Failed to fetch parfums")
	}
	return others, nil
}

// CreateParfum validates and persists a new perfume with its variants.
func (s *CatalogService) CreateParfum(ctx context.Context, in *ParfumInput) (*models.Parfum, *ServiceError) {
	parfum, svcErr := s.buildParfum(ctx, in)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := s.parfums.Create(ctx, parfum); err != nil {
		logger.Log.Error("failed to create parfum", zap.Error(err))
		return nil, internal("Failed to create parfum")
	}
	return parfum, nil
}

// UpdateParfum applies an edit, replacing the variant set.
func (s *CatalogService) UpdateParfum(ctx context.Context, id uint, in *ParfumInput) (*models.Parfum, *ServiceError) {
	existing, svcErr := s.GetParfum(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	updated, svcErr := s.buildParfum(ctx, in)
	if svcErr != nil {
		return nil, svcErr
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.Category = updated.Category
	existing.FragranceClass = updated.FragranceClass
	existing.Available = updated.Available
	existing.BrandID = updated.BrandID
	if in.ImageURL != "" {
		existing.ImageURL = in.ImageURL
	}

	if err := s.parfums.UpdateWithVariants(ctx, existing, updated.Variants); err != nil {
		logger.Log.Error("failed to update parfum", zap.Uint("parfum_id", id), zap.Error(err))
		return nil, internal("Failed to update parfum")
	}
	return existing, nil
}

// UpdateParfumImage replaces only the image URL.
func (s *CatalogService) UpdateParfumImage(ctx context.Context, id uint, imageURL string) (*models.Parfum, *ServiceError) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, badRequest("An image must be provided")
	}
	parfum, svcErr := s.GetParfum(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	parfum.ImageURL = imageURL
	if err := s.parfums.Update(ctx, parfum); err != nil {
		logger.Log.Error("failed to update parfum image", zap.Uint("parfum_id", id), zap.Error(err))
		return nil, internal("Failed to update parfum")
	}
	return parfum, nil
}

// DeleteParfum removes a perfume and its variants.
func (s *CatalogService) DeleteParfum(ctx context.Context, id uint) *ServiceError {
	if _, svcErr := s.GetParfum(ctx, id); svcErr != nil {
		return svcErr
	}
	if err := s.parfums.Delete(ctx, id); err != nil {
		logger.Log.Error("failed to delete parfum", zap.Uint("parfum_id", id), zap.Error(err))
		return internal("Failed to delete parfum")
	}
	return nil
}

// buildParfum validates a payload into a model: required name and brand,
// description of at least 5 characters, known enum names, at least one
// variant, unique sizes, positive prices.
func (s *CatalogService) buildParfum(ctx context.Context, in *ParfumInput) (*models.Parfum, *ServiceError) {
	fields := map[string]string{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fields["name"] = "is required"
	}
	description := strings.TrimSpace(in.Description)
	if len(description) < 5 {
		fields["description"] = "must be at least 5 characters"
	}
	if in.BrandID == 0 {
		fields["brand_id"] = "is required"
	}

	category, ok := models.ParseCategory(in.Category)
	if !ok {
		fields["category"] = "is not a known category"
	}
	fragranceClass, ok := models.ParseFragranceClass(in.FragranceClass)
	if !ok {
		fields["fragrance_class"] = "is not a known fragrance class"
	}

	if len(in.Variants) == 0 {
		fields["variants"] = "at least one variant is required"
	}
	seen := map[string]bool{}
	variants := make([]models.Variant, 0, len(in.Variants))
	for _, v := range in.Variants {
		size := strings.TrimSpace(v.Size)
		if size == "" {
			fields["variants"] = "every variant needs a size"
			break
		}
		if v.Price <= 0 {
			fields["variants"] = "every variant price must be greater than 0"
			break
		}
		if seen[size] {
			fields["variants"] = "duplicate size: " + size
			break
		}
		seen[size] = true
		variants = append(variants, models.Variant{Size: size, Price: v.Price})
	}

	if len(fields) > 0 {
		return nil, &ServiceError{StatusCode: 422, Message: "Please correct the highlighted fields", Fields: fields}
	}

	if _, err := s.brands.FindByID(ctx, in.BrandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 422, Message: "Brand not found", Fields: map[string]string{"brand_id": "does not exist"}}
		}
		logger.Log.Error("failed to fetch brand", zap.Uint("brand_id", in.BrandID), zap.Error(err))
		return nil, internal("Failed to validate parfum")
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	return &models.Parfum{
		Name:           name,
		Description:    description,
		Category:       category,
		FragranceClass: fragranceClass,
		Available:      available,
		ImageURL:       in.ImageURL,
		BrandID:        in.BrandID,
		Variants:       variants,
	}, nil
}

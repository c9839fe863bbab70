package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"vitrine/logger"
	"vitrine/models"
	"vitrine/repository"

	"go.uber.org/zap"
)

// Result caps per category.
const (
	SearchMinQueryLen  = 2
	SearchParfumsLimit = 10
	SearchBrandsLimit  = 5
	SearchOrdersLimit  = 10
)

// PublicSearchResult is the storefront search payload.
type PublicSearchResult struct {
	Perfumes []models.Parfum `json:"perfumes"`
	Brands   []models.Brand  `json:"brands"`
}

// AdminSearchResult additionally covers orders and carries the total count.
type AdminSearchResult struct {
	Total   int             `json:"total"`
	Query   string          `json:"query"`
	Parfums []models.Parfum `json:"parfums"`
	Brands  []models.Brand  `json:"brands"`
	Orders  []models.Order  `json:"orders"`
}

// SearchService runs case-insensitive substring lookups across the catalog
// and orders. Queries shorter than two characters return empty results
// without touching the store.
type SearchService struct {
	parfums repository.ParfumRepository
	brands  repository.BrandRepository
	orders  repository.OrderRepository
}

func NewSearchService(parfums repository.ParfumRepository, brands repository.BrandRepository, orders repository.OrderRepository) *SearchService {
	return &SearchService{parfums: parfums, brands: brands, orders: orders}
}

// Public searches perfumes and brands for the storefront widgets.
func (s *SearchService) Public(ctx context.Context, query string) (*PublicSearchResult, *ServiceError) {
	result := &PublicSearchResult{
		Perfumes: []models.Parfum{},
		Brands:   []models.Brand{},
	}

	q := normalizeQuery(query)
	if q == "" {
		return result, nil
	}

	parfums, err := s.parfums.Search(ctx, q, SearchParfumsLimit)
	if err != nil {
		logger.Log.Error("parfum search failed", zap.String("query", q), zap.Error(err))
		return nil, internal("Search failed")
	}
	brands, err := s.brands.Search(ctx, q, SearchBrandsLimit)
	if err != nil {
		logger.Log.Error("brand search failed", zap.String("query", q), zap.Error(err))
		return nil, internal("Search failed")
	}

	result.Perfumes = parfums
	result.Brands = brands
	return result, nil
}

// Admin searches perfumes, brands and orders for the back-office.
func (s *SearchService) Admin(ctx context.Context, query string) (*AdminSearchResult, *ServiceError) {
	result := &AdminSearchResult{
		Parfums: []models.Parfum{},
		Brands:  []models.Brand{},
		Orders:  []models.Order{},
	}

	q := normalizeQuery(query)
	result.Query = q
	if q == "" {
		return result, nil
	}

	parfums, err := s.parfums.Search(ctx, q, SearchParfumsLimit)
	if err != nil {
		logger.Log.Error("parfum search failed", zap.String("query", q), zap.Error(err))
		return nil, internal("Search failed")
	}
	brands, err := s.brands.Search(ctx, q, SearchBrandsLimit)
	if err != nil {
		logger.Log.Error("brand search failed", zap.String("query", q), zap.Error(err))
		return nil, internal("Search failed")
	}
	orders, err := s.orders.Search(ctx, q, SearchOrdersLimit)
	if err != nil {
		logger.Log.Error("order search failed", zap.String("query", q), zap.Error(err))
		return nil, internal("Search failed")
	}

	result.Parfums = parfums
	result.Brands = brands
	result.Orders = orders
	result.Total = len(parfums) + len(brands) + len(orders)
	return result, nil
}

// normalizeQuery trims and lowercases the query; anything shorter than the
// minimum length collapses to empty.
func normalizeQuery(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < SearchMinQueryLen {
		return ""
	}
	return q
}

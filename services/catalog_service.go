package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"paypya-resto/config"
	"paypya-resto/models"
	"paypya-resto/repositories"
)

const productCacheTTL = 5 * time.Minute

type CatalogService struct {
	repo *repositories.CatalogRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		repo: repositories.NewCatalogRepository(),
	}
}

func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAllCategories()
}

func productCacheKey(filter models.ProductFilter) string {
	available := "any"
	if filter.IsAvailable != nil {
		available = fmt.Sprintf("%t", *filter.IsAvailable)
	}
	return fmt.Sprintf("paypya:products:c%s_q%s_a%s_p%d_l%d",
		filter.CategoryID, filter.Search, available, filter.Page, filter.Limit)
}

// InvalidateProductCache drops every cached product listing. Called
// after any admin write to products or categories.
func (s *CatalogService) InvalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "paypya:products:*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

func (s *CatalogService) GetProducts(filter models.ProductFilter) (*models.PaginationResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	cacheKey := productCacheKey(filter)
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp models.PaginationResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	products, total, err := s.repo.GetProducts(filter)
	if err != nil {
		return nil, err
	}

	resp := &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}

	if config.RedisClient != nil {
		if raw, err := json.Marshal(resp); err == nil {
			config.RedisClient.Set(ctx, cacheKey, raw, productCacheTTL)
		}
	}

	return resp, nil
}

func (s *CatalogService) GetProductByID(id string) (*models.MenuItem, error) {
	return s.repo.GetProductByID(id)
}

package services

import (
	"context"

	"github.com/hisabkitab/cli/internal/client/models"
)

// CategoryService wraps the expense-category endpoints.
type CategoryService struct {
	gw Gateway
}

func NewCategoryService(gw Gateway) *CategoryService {
	return &CategoryService{gw: gw}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.gw.Get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, c models.CategoryCreate) (*models.Category, error) {
	var created models.Category
	if err := s.gw.Post(ctx, "/categories", c, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

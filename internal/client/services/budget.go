package services

import (
	"context"
	"fmt"

	"github.com/hisabkitab/cli/internal/client/models"
)

// BudgetService wraps the budget CRUD endpoints.
type BudgetService struct {
	gw Gateway
}

func NewBudgetService(gw Gateway) *BudgetService {
	return &BudgetService{gw: gw}
}

func (s *BudgetService) List(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.gw.Get(ctx, "/budgets/", nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *BudgetService) Create(ctx context.Context, b models.BudgetCreate) (*models.Budget, error) {
	var created models.Budget
	if err := s.gw.Post(ctx, "/budgets/", b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *BudgetService) Update(ctx context.Context, id int, b models.BudgetCreate) (*models.Budget, error) {
	var updated models.Budget
	if err := s.gw.Put(ctx, fmt.Sprintf("/budgets/%d", id), b, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *BudgetService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/budgets/%d", id))
}

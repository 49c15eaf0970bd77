package services

import (
	"context"
	"fmt"

	"github.com/hisabkitab/cli/internal/client/models"
)

// GoalService wraps the savings-goal endpoints.
type GoalService struct {
	gw Gateway
}

func NewGoalService(gw Gateway) *GoalService {
	return &GoalService{gw: gw}
}

func (s *GoalService) List(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.gw.Get(ctx, "/goals/", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *GoalService) Create(ctx context.Context, g models.GoalCreate) (*models.Goal, error) {
	var created models.Goal
	if err := s.gw.Post(ctx, "/goals/", g, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *GoalService) Update(ctx context.Context, id int, g models.GoalUpdate) (*models.Goal, error) {
	var updated models.Goal
	if err := s.gw.Put(ctx, fmt.Sprintf("/goals/%d", id), g, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *GoalService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/goals/%d", id))
}

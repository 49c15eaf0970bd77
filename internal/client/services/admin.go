package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hisabkitab/cli/internal/client/models"
)

// AdminService wraps the administrative endpoints. All of them require an
// admin credential; a non-admin token gets a 403 back, surfaced unchanged.
type AdminService struct {
	gw Gateway
}

func NewAdminService(gw Gateway) *AdminService {
	return &AdminService{gw: gw}
}

func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := s.gw.Get(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AdminService) Users(ctx context.Context, page, pageSize int) (*models.AdminUserPage, error) {
	var users models.AdminUserPage
	if err := s.gw.Get(ctx, "/admin/users", pageQuery(page, pageSize), &users); err != nil {
		return nil, err
	}
	return &users, nil
}

func (s *AdminService) Logs(ctx context.Context, page, pageSize int) (*models.AdminLogPage, error) {
	var logs models.AdminLogPage
	if err := s.gw.Get(ctx, "/admin/logs", pageQuery(page, pageSize), &logs); err != nil {
		return nil, err
	}
	return &logs, nil
}

func (s *AdminService) BanUser(ctx context.Context, userID int) error {
	return s.gw.Put(ctx, fmt.Sprintf("/admin/users/%d/ban", userID), nil, nil)
}

func (s *AdminService) UnbanUser(ctx context.Context, userID int) error {
	return s.gw.Put(ctx, fmt.Sprintf("/admin/users/%d/unban", userID), nil, nil)
}

func pageQuery(page, pageSize int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	return query
}

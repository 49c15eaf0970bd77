package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/hisabkitab/cli/internal/client/models"
)

// ExpenseService wraps the expense CRUD and export endpoints.
type ExpenseService struct {
	gw Gateway
}

func NewExpenseService(gw Gateway) *ExpenseService {
	return &ExpenseService{gw: gw}
}

// List fetches a window of expenses. The backend answers either with a bare
// array or with an {items,...} envelope depending on version; both decode.
func (s *ExpenseService) List(ctx context.Context, skip, limit int) ([]models.Expense, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var raw json.RawMessage
	if err := s.gw.Get(ctx, "/expenses/", query, &raw); err != nil {
		return nil, err
	}

	var items []models.Expense
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var page models.ExpenseList
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode expense list: %w", err)
	}
	return page.Items, nil
}

func (s *ExpenseService) Create(ctx context.Context, exp models.ExpenseCreate) (*models.Expense, error) {
	var created models.Expense
	if err := s.gw.Post(ctx, "/expenses/", exp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ExpenseService) Update(ctx context.Context, id int, exp models.ExpenseCreate) (*models.Expense, error) {
	var updated models.Expense
	if err := s.gw.Put(ctx, fmt.Sprintf("/expenses/%d", id), exp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/expenses/%d", id))
}

// ExportCSV downloads the CSV report and returns a dated file name plus the
// raw bytes; the caller decides where to save them.
func (s *ExpenseService) ExportCSV(ctx context.Context) (string, []byte, error) {
	return s.export(ctx, "csv")
}

// ExportPDF downloads the PDF report.
func (s *ExpenseService) ExportPDF(ctx context.Context) (string, []byte, error) {
	return s.export(ctx, "pdf")
}

func (s *ExpenseService) export(ctx context.Context, format string) (string, []byte, error) {
	data, err := s.gw.Download(ctx, "/expenses/export/"+format)
	if err != nil {
		return "", nil, err
	}
	name := fmt.Sprintf("hisabkitab_report_%s.%s", time.Now().Format("2006-01-02"), format)
	return name, data, nil
}

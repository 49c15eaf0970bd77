package services

import (
	"context"

	"github.com/hisabkitab/cli/internal/client/models"
	"github.com/shopspring/decimal"
)

// AIService wraps the assistant endpoints: insights, chat, category
// suggestion and free-text expense parsing. Voice capture itself is external;
// this client sends transcripts.
type AIService struct {
	gw Gateway
}

func NewAIService(gw Gateway) *AIService {
	return &AIService{gw: gw}
}

func (s *AIService) Insights(ctx context.Context) (*models.Insights, error) {
	var insights models.Insights
	if err := s.gw.Get(ctx, "/ai/insights", nil, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

func (s *AIService) Chat(ctx context.Context, message string) (*models.ChatResponse, error) {
	var resp models.ChatResponse
	if err := s.gw.Post(ctx, "/ai/chat", models.ChatRequest{Message: message}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SuggestCategory asks the backend to categorize an expense by description
// and amount.
func (s *AIService) SuggestCategory(ctx context.Context, description string, amount decimal.Decimal) (*models.CategorizeResponse, error) {
	req := models.CategorizeRequest{Description: description, Amount: amount}
	var resp models.CategorizeResponse
	if err := s.gw.Post(ctx, "/ai/categorize", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseTranscript extracts a draft expense from free text, e.g. a voice
// transcript pasted into the terminal.
func (s *AIService) ParseTranscript(ctx context.Context, message string) (*models.ParsedExpense, error) {
	var parsed models.ParsedExpense
	if err := s.gw.Post(ctx, "/ai/parse-voice", models.ParseVoiceRequest{Message: message}, &parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

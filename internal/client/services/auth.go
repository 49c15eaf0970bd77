package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/hisabkitab/cli/internal/client/models"
)

var errEmptyToken = errors.New("backend returned no access token")

// AuthService wraps the authentication endpoints. It satisfies session.AuthAPI.
type AuthService struct {
	gw Gateway
}

func NewAuthService(gw Gateway) *AuthService {
	return &AuthService{gw: gw}
}

// Login submits credentials via the OAuth2 password flow (form-encoded,
// "username" carries the email) and returns the issued access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp models.TokenResponse
	if err := s.gw.PostForm(ctx, "/auth/login", form, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errEmptyToken
	}
	return resp.AccessToken, nil
}

// LoginWithProvider exchanges a third-party identity token for a backend
// access token.
func (s *AuthService) LoginWithProvider(ctx context.Context, providerToken string) (string, error) {
	var resp models.TokenResponse
	body := map[string]string{"token": providerToken}
	if err := s.gw.Post(ctx, "/auth/firebase-login", body, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errEmptyToken
	}
	return resp.AccessToken, nil
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, profile models.RegisterRequest) error {
	return s.gw.Post(ctx, "/auth/register", profile, nil)
}

// CurrentUser fetches the identity the installed credential belongs to.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.gw.Get(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

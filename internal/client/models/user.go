package models

import "time"

// User is the identity record returned by GET /users/me.
type User struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	IsAdmin     bool      `json:"is_admin"`
	IsActive    bool      `json:"is_active"`
	Occupation  string    `json:"occupation,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterRequest is the profile payload for POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// TokenResponse is the body of both login endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

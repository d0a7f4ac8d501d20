package dto

import (
	"time"

	"github.com/spec-kit/careerhub/internal/domain"
)

// RegisterRequest payload for new accounts. The email lives inside the
// resume's basic block.
type RegisterRequest struct {
	Username string        `json:"username" validate:"required,min=3,max=64"`
	Password string        `json:"password" validate:"required,min=8"`
	Resume   domain.Resume `json:"resume"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UnregisterRequest payload for self-service account deletion.
type UnregisterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegistrationResponse mirrors the registry's structured conflict
// breakdown.
type RegistrationResponse struct {
	Created       bool   `json:"created"`
	AccountID     string `json:"account_id,omitempty"`
	UsernameTaken bool   `json:"username_taken"`
	EmailUsed     bool   `json:"email_used"`
}

// AccountResponse is the public shape of an account.
type AccountResponse struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Resume   domain.Resume `json:"resume"`
}

// NewAccountResponse maps the domain model.
func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Resume:   account.Resume,
	}
}

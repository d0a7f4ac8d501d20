package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/careerhub/internal/api/dto"
	"github.com/spec-kit/careerhub/internal/auth"
	"github.com/spec-kit/careerhub/internal/domain"
	"github.com/spec-kit/careerhub/internal/service"
	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

// AccountsHandler exposes registration, login, and self-service account
// endpoints.
type AccountsHandler struct {
	identity *service.IdentityService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(identity *service.IdentityService) *AccountsHandler {
	return &AccountsHandler{identity: identity}
}

// Register handles POST /auth/register.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	result, err := h.identity.Register(c.Context(), service.RegistrationCandidate{
		Username: req.Username,
		Password: req.Password,
		Resume:   req.Resume,
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"data": dto.RegistrationResponse{
		Created:       result.Created,
		AccountID:     result.AccountID,
		UsernameTaken: result.UsernameTaken,
		EmailUsed:     result.EmailUsed,
	}})
}

// Login handles POST /auth/login.
func (h *AccountsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	token, err := h.identity.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
	}})
}

// Me handles GET /auth/me.
func (h *AccountsHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": dto.NewAccountResponse(principal.Account)})
}

// UpdateResume handles PUT /me/resume.
func (h *AccountsHandler) UpdateResume(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req struct {
		Resume domain.Resume `json:"resume"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.identity.UpdateResume(c.Context(), principal.Username(), req.Resume); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ChangePassword handles POST /me/password.
func (h *AccountsHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	if err := h.identity.ChangePassword(c.Context(), principal.Username(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Unregister handles DELETE /me.
func (h *AccountsHandler) Unregister(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UnregisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	if err := h.identity.Unregister(c.Context(), principal.Username(), req.Email); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/careerhub/internal/api/dto"
	"github.com/spec-kit/careerhub/internal/auth"
	"github.com/spec-kit/careerhub/internal/service"
	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

// CompaniesHandler exposes company and recruiter membership endpoints.
type CompaniesHandler struct {
	companies *service.CompanyService
	authz     *service.AuthorizationService
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companies *service.CompanyService, authz *service.AuthorizationService) *CompaniesHandler {
	return &CompaniesHandler{companies: companies, authz: authz}
}

// Register handles POST /companies. The caller becomes the founder.
func (h *CompaniesHandler) Register(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CompanyRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	company, err := h.companies.RegisterCompany(c.Context(), service.CompanyCandidate{
		Handle:      req.Handle,
		Name:        req.Name,
		Industry:    req.Industry,
		Founded:     req.Founded,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	}, principal.Username())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCompanyResponse(company)})
}

// Get handles GET /companies/:handle.
func (h *CompaniesHandler) Get(c *fiber.Ctx) error {
	company, err := h.companies.GetCompany(c.Context(), c.Params("handle"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCompanyResponse(company)})
}

// Unregister handles DELETE /companies/:handle. Founder only; the check
// lives in the service so the rule holds for every caller.
func (h *CompaniesHandler) Unregister(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.companies.UnregisterCompany(c.Context(), c.Params("handle"), principal.Username()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddRecruiter handles POST /companies/:handle/recruiters. Owner only.
func (h *CompaniesHandler) AddRecruiter(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	handle := c.Params("handle")

	if err := h.authz.Authorize(c.Context(), principal.Username(), auth.ActionManageRecruiters, handle); err != nil {
		return err
	}

	var req dto.RecruiterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	recruiter, err := h.companies.AddRecruiter(c.Context(), handle, req.Username)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"username": recruiter.Username,
		"handle":   recruiter.CompanyHandle,
	}})
}

// RemoveRecruiter handles DELETE /companies/:handle/recruiters/:username.
// Owner only; removing a missing edge reports removed=false.
func (h *CompaniesHandler) RemoveRecruiter(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	handle := c.Params("handle")

	if err := h.authz.Authorize(c.Context(), principal.Username(), auth.ActionManageRecruiters, handle); err != nil {
		return err
	}

	removed, err := h.companies.RemoveRecruiter(c.Context(), handle, c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"removed": removed}})
}

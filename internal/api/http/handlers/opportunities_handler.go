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

// OpportunitiesHandler exposes listing and application endpoints.
type OpportunitiesHandler struct {
	opportunities *service.OpportunityService
}

// NewOpportunitiesHandler constructs handler.
func NewOpportunitiesHandler(opportunities *service.OpportunityService) *OpportunitiesHandler {
	return &OpportunitiesHandler{opportunities: opportunities}
}

// Create handles POST /companies/:handle/opportunities.
func (h *OpportunitiesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.OpportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	opportunity, err := h.opportunities.Create(c.Context(), principal.Username(), c.Params("handle"), service.OpportunityInput{
		Kind:        domain.OpportunityKind(req.Kind),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewOpportunityResponse(opportunity)})
}

// List handles GET /companies/:handle/opportunities.
func (h *OpportunitiesHandler) List(c *fiber.Ctx) error {
	opportunities, err := h.opportunities.ListByCompany(c.Context(), c.Params("handle"))
	if err != nil {
		return err
	}

	items := make([]dto.OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		items = append(items, dto.NewOpportunityResponse(&opportunities[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update handles PUT /opportunities/:id.
func (h *OpportunitiesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.OpportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	opportunity, err := h.opportunities.Update(c.Context(), principal.Username(), c.Params("id"), service.OpportunityInput{
		Kind:        domain.OpportunityKind(req.Kind),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOpportunityResponse(opportunity)})
}

// Delete handles DELETE /opportunities/:id.
func (h *OpportunitiesHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.opportunities.Delete(c.Context(), principal.Username(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Apply handles POST /opportunities/:id/applications.
func (h *OpportunitiesHandler) Apply(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	application, err := h.opportunities.Apply(c.Context(), principal.Username(), c.Params("id"), req.CoverLetter)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewApplicationResponse(*application)})
}

// ListApplications handles GET /opportunities/:id/applications.
func (h *OpportunitiesHandler) ListApplications(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	applications, err := h.opportunities.ListApplications(c.Context(), principal.Username(), c.Params("id"))
	if err != nil {
		return err
	}

	items := make([]dto.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		items = append(items, dto.NewApplicationResponse(application))
	}
	return c.JSON(fiber.Map{"data": items})
}

package dto

import (
	"time"

	"github.com/spec-kit/careerhub/internal/domain"
)

// OpportunityRequest payload for creating or updating listings.
type OpportunityRequest struct {
	Kind        string `json:"kind" validate:"omitempty,oneof=JOB INTERNSHIP"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ApplicationRequest payload for submitting an application.
type ApplicationRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// OpportunityResponse is the public shape of a listing.
type OpportunityResponse struct {
	ID            string    `json:"id"`
	CompanyHandle string    `json:"company_handle"`
	Kind          string    `json:"kind"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewOpportunityResponse maps the domain model.
func NewOpportunityResponse(opportunity *domain.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:            opportunity.ID,
		CompanyHandle: opportunity.CompanyHandle,
		Kind:          string(opportunity.Kind),
		Title:         opportunity.Title,
		Description:   opportunity.Description,
		Location:      opportunity.Location,
		CreatedAt:     opportunity.CreatedAt,
	}
}

// ApplicationResponse is the shape recruiters see when listing
// submissions.
type ApplicationResponse struct {
	ID             string    `json:"id"`
	OpportunityID  string    `json:"opportunity_id"`
	ApplicantEmail string    `json:"applicant_email"`
	CoverLetter    string    `json:"cover_letter,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// NewApplicationResponse maps the domain model.
func NewApplicationResponse(application domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             application.ID,
		OpportunityID:  application.OpportunityID,
		ApplicantEmail: application.ApplicantEmail,
		CoverLetter:    application.CoverLetter,
		SubmittedAt:    application.SubmittedAt,
	}
}

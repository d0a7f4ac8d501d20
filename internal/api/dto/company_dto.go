package dto

import (
	"time"

	"github.com/spec-kit/careerhub/internal/domain"
)

// CompanyRegisterRequest payload for new companies.
type CompanyRegisterRequest struct {
	Handle      string `json:"handle" validate:"required,min=2,max=64"`
	Name        string `json:"name" validate:"required"`
	Industry    string `json:"industry"`
	Founded     int    `json:"founded"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// RecruiterRequest payload for membership changes.
type RecruiterRequest struct {
	Username string `json:"username" validate:"required"`
}

// CompanyResponse is the public shape of a company.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Handle       string    `json:"handle"`
	Name         string    `json:"name"`
	Industry     string    `json:"industry,omitempty"`
	Founded      int       `json:"founded,omitempty"`
	Description  string    `json:"description,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewCompanyResponse maps the domain model.
func NewCompanyResponse(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:           company.ID,
		Handle:       company.Handle,
		Name:         company.Name,
		Industry:     company.Industry,
		Founded:      company.Founded,
		Description:  company.Description,
		LogoURL:      company.LogoURL,
		RegisteredAt: company.RegisteredAt,
	}
}

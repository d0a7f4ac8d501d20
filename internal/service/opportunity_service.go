package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/spec-kit/careerhub/internal/auth"
	"github.com/spec-kit/careerhub/internal/domain"
	"github.com/spec-kit/careerhub/internal/events"
	"github.com/spec-kit/careerhub/internal/repository"
	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

// OpportunityInput carries listing fields. Field-level validation belongs
// to the listings collaborator; only authorization is enforced here.
type OpportunityInput struct {
	Kind        domain.OpportunityKind
	Title       string
	Description string
	Location    string
}

// OpportunityService is the thin listings layer exercising the policy
// table. Every operation routes through the authorization engine.
type OpportunityService struct {
	opportunities repository.OpportunityRepository
	applications  repository.ApplicationRepository
	accounts      repository.AccountRepository
	companies     repository.CompanyRepository
	authz         *AuthorizationService
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// OpportunityDependencies encapsulates repo requirements for the service.
type OpportunityDependencies struct {
	OpportunityRepo repository.OpportunityRepository
	ApplicationRepo repository.ApplicationRepository
	AccountRepo     repository.AccountRepository
	CompanyRepo     repository.CompanyRepository
	Authorization   *AuthorizationService
	Dispatcher      events.Dispatcher
}

// NewOpportunityService builds the service.
func NewOpportunityService(deps OpportunityDependencies, logger *zap.Logger) *OpportunityService {
	return &OpportunityService{
		opportunities: deps.OpportunityRepo,
		applications:  deps.ApplicationRepo,
		accounts:      deps.AccountRepo,
		companies:     deps.CompanyRepo,
		authz:         deps.Authorization,
		dispatcher:    deps.Dispatcher,
		logger:        logger,
	}
}

// Create posts a listing under a handle. Owner or recruiter only.
func (s *OpportunityService) Create(ctx context.Context, actor, handle string, input OpportunityInput) (*domain.Opportunity, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("opportunity title must not be empty", nil)
	}
	if _, err := s.companies.GetByHandle(ctx, handle); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("company", map[string]any{"handle": handle})
		}
		return nil, err
	}
	if err := s.authz.Authorize(ctx, actor, auth.ActionManageOpportunity, handle); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.OpportunityKindJob
	}
	opportunity := &domain.Opportunity{
		ID:            uuid.NewString(),
		CompanyHandle: handle,
		Kind:          kind,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
	}
	if err := s.opportunities.Create(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

// Update edits a listing. Owner or recruiter of its company only.
func (s *OpportunityService) Update(ctx context.Context, actor, id string, input OpportunityInput) (*domain.Opportunity, error) {
	opportunity, err := s.getOpportunity(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(ctx, actor, auth.ActionManageOpportunity, opportunity.CompanyHandle); err != nil {
		return nil, err
	}

	if input.Kind != "" {
		opportunity.Kind = input.Kind
	}
	if input.Title != "" {
		opportunity.Title = input.Title
	}
	opportunity.Description = input.Description
	opportunity.Location = input.Location

	if err := s.opportunities.Update(ctx, opportunity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("opportunity", map[string]any{"id": id})
		}
		return nil, err
	}
	return opportunity, nil
}

// Delete removes a listing. Owner or recruiter of its company only.
func (s *OpportunityService) Delete(ctx context.Context, actor, id string) error {
	opportunity, err := s.getOpportunity(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.Authorize(ctx, actor, auth.ActionManageOpportunity, opportunity.CompanyHandle); err != nil {
		return err
	}

	deleted, err := s.opportunities.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("opportunity", map[string]any{"id": id})
	}
	return nil
}

// ListByCompany returns the listings under a handle. Public read.
func (s *OpportunityService) ListByCompany(ctx context.Context, handle string) ([]domain.Opportunity, error) {
	return s.opportunities.ListByHandle(ctx, handle)
}

// Apply submits an application. The actor's role for the listing's company
// must be None; owners and recruiters may not apply.
func (s *OpportunityService) Apply(ctx context.Context, actor, opportunityID, coverLetter string) (*domain.Application, error) {
	opportunity, err := s.getOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(ctx, actor, auth.ActionApply, opportunity.CompanyHandle); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByUsername(ctx, actor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("account", map[string]any{"username": actor})
		}
		return nil, err
	}

	application := &domain.Application{
		ID:             uuid.NewString(),
		OpportunityID:  opportunity.ID,
		CompanyHandle:  opportunity.CompanyHandle,
		ApplicantEmail: account.Email,
		CoverLetter:    coverLetter,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventApplicationSubmitted,
			Actor:     actor,
			Timestamp: time.Now().UTC(),
			Payload: events.ApplicationSubmittedPayload{
				ApplicationID: application.ID,
				OpportunityID: opportunity.ID,
				Handle:        opportunity.CompanyHandle,
			},
		})
	}
	return application, nil
}

// ListApplications returns submissions for a listing. Owner or recruiter
// of its company only.
func (s *OpportunityService) ListApplications(ctx context.Context, actor, opportunityID string) ([]domain.Application, error) {
	opportunity, err := s.getOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(ctx, actor, auth.ActionViewApplications, opportunity.CompanyHandle); err != nil {
		return nil, err
	}
	return s.applications.ListByOpportunity(ctx, opportunityID)
}

func (s *OpportunityService) getOpportunity(ctx context.Context, id string) (*domain.Opportunity, error) {
	opportunity, err := s.opportunities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("opportunity", map[string]any{"id": id})
		}
		return nil, err
	}
	return opportunity, nil
}

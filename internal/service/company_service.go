package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/spec-kit/careerhub/internal/domain"
	"github.com/spec-kit/careerhub/internal/events"
	"github.com/spec-kit/careerhub/internal/repository"
	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

// CompanyCandidate carries company registration input.
type CompanyCandidate struct {
	Handle      string
	Name        string
	Industry    string
	Founded     int
	Description string
	LogoURL     string
}

// CompanyService owns company registration, the founder edge, and
// recruiter memberships.
type CompanyService struct {
	companies     repository.CompanyRepository
	founders      repository.FounderRepository
	recruiters    repository.RecruiterRepository
	opportunities repository.OpportunityRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// CompanyDependencies encapsulates repo requirements for the service.
type CompanyDependencies struct {
	CompanyRepo     repository.CompanyRepository
	FounderRepo     repository.FounderRepository
	RecruiterRepo   repository.RecruiterRepository
	OpportunityRepo repository.OpportunityRepository
	Dispatcher      events.Dispatcher
}

// NewCompanyService builds the service.
func NewCompanyService(deps CompanyDependencies, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companies:     deps.CompanyRepo,
		founders:      deps.FounderRepo,
		recruiters:    deps.RecruiterRepo,
		opportunities: deps.OpportunityRepo,
		dispatcher:    deps.Dispatcher,
		logger:        logger,
	}
}

// RegisterCompany creates the company and its founder edge. The two writes
// are not a transaction; a founder-edge failure after the company write is
// logged and surfaced to the caller.
func (s *CompanyService) RegisterCompany(ctx context.Context, candidate CompanyCandidate, founderUsername string) (*domain.Company, error) {
	handle := strings.TrimSpace(candidate.Handle)
	if handle == "" {
		return nil, apperrors.NewValidationError("company handle must not be empty", nil)
	}

	company := &domain.Company{
		ID:          uuid.NewString(),
		Handle:      handle,
		Name:        candidate.Name,
		Industry:    candidate.Industry,
		Founded:     candidate.Founded,
		Description: candidate.Description,
		LogoURL:     candidate.LogoURL,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.NewConflict("company handle already exists", map[string]any{"handle": handle})
		}
		return nil, err
	}

	founder := &domain.Founder{Username: founderUsername, CompanyHandle: handle}
	if err := s.founders.Create(ctx, founder); err != nil {
		s.logger.Error("company created but founder edge write failed",
			zap.String("handle", handle),
			zap.String("founder", founderUsername),
			zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCompanyRegistered,
		Actor:     founderUsername,
		Timestamp: time.Now().UTC(),
		Payload:   events.CompanyRegisteredPayload{Handle: handle, Name: company.Name},
	})
	return company, nil
}

// GetCompany looks up a company by handle.
func (s *CompanyService) GetCompany(ctx context.Context, handle string) (*domain.Company, error) {
	company, err := s.companies.GetByHandle(ctx, handle)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFound("company", map[string]any{"handle": handle})
	}
	return company, err
}

// UnregisterCompany deletes a company and cascades to its founder edge,
// recruiter memberships, and opportunities, best-effort in that order.
// Only the founder may delete. Partial failure after the company record is
// removed is logged, not rolled back; the caller is still told the
// operation succeeded.
func (s *CompanyService) UnregisterCompany(ctx context.Context, handle, requesterUsername string) error {
	if _, err := s.companies.GetByHandle(ctx, handle); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("company", map[string]any{"handle": handle})
		}
		return err
	}

	founder, err := s.founders.GetByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewForbidden("only the company founder may delete it")
		}
		return err
	}
	if founder.Username != requesterUsername {
		return apperrors.NewForbidden("only the company founder may delete it")
	}

	deleted, err := s.companies.Delete(ctx, handle)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("company", map[string]any{"handle": handle})
	}

	if err := s.founders.DeleteByHandle(ctx, handle); err != nil {
		s.logger.Error("company cascade: founder edge cleanup failed",
			zap.String("handle", handle), zap.Error(err))
	}
	recruitersRemoved, err := s.recruiters.DeleteByHandle(ctx, handle)
	if err != nil {
		s.logger.Error("company cascade: recruiter membership cleanup failed",
			zap.String("handle", handle), zap.Error(err))
	}
	opportunitiesRemoved, err := s.opportunities.DeleteByHandle(ctx, handle)
	if err != nil {
		s.logger.Error("company cascade: opportunity cleanup failed",
			zap.String("handle", handle), zap.Error(err))
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCompanyUnregistered,
		Actor:     requesterUsername,
		Timestamp: time.Now().UTC(),
		Payload: events.CompanyUnregisteredPayload{
			Handle:               handle,
			RecruitersRemoved:    recruitersRemoved,
			OpportunitiesRemoved: opportunitiesRemoved,
		},
	})
	return nil
}

// AddRecruiter creates the (username, handle) membership edge. The
// compound unique index is authoritative for duplicates.
func (s *CompanyService) AddRecruiter(ctx context.Context, handle, username string) (*domain.Recruiter, error) {
	if _, err := s.companies.GetByHandle(ctx, handle); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("company", map[string]any{"handle": handle})
		}
		return nil, err
	}

	recruiter := &domain.Recruiter{Username: username, CompanyHandle: handle}
	if err := s.recruiters.Create(ctx, recruiter); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.NewConflict("recruiter membership already exists",
				map[string]any{"username": username, "handle": handle})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRecruiterAdded,
		Actor:     username,
		Timestamp: time.Now().UTC(),
		Payload:   events.RecruiterPayload{Username: username, Handle: handle},
	})
	return recruiter, nil
}

// RemoveRecruiter deletes the membership edge. A missing edge is a
// "not removed" result, not an error; repeating the call is side-effect
// free.
func (s *CompanyService) RemoveRecruiter(ctx context.Context, handle, username string) (bool, error) {
	removed, err := s.recruiters.Delete(ctx, username, handle)
	if err != nil {
		return false, err
	}
	if removed {
		s.publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventRecruiterRemoved,
			Actor:     username,
			Timestamp: time.Now().UTC(),
			Payload:   events.RecruiterPayload{Username: username, Handle: handle},
		})
	}
	return removed, nil
}

func (s *CompanyService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

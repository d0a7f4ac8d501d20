package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/careerhub/internal/auth"
	"github.com/spec-kit/careerhub/internal/domain"
	"github.com/spec-kit/careerhub/internal/repository"
	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

// AuthorizationService resolves an account's relationship to a company and
// renders allow/deny decisions. Every gated action routes through this
// pair; endpoints must not run bespoke membership lookups.
type AuthorizationService struct {
	founders   repository.FounderRepository
	recruiters repository.RecruiterRepository
}

// NewAuthorizationService builds the service.
func NewAuthorizationService(founders repository.FounderRepository, recruiters repository.RecruiterRepository) *AuthorizationService {
	return &AuthorizationService{founders: founders, recruiters: recruiters}
}

// ResolveRole returns the account's role for a company handle. An empty
// handle answers the category-wide question: does the account own or
// recruit for any company at all.
func (s *AuthorizationService) ResolveRole(ctx context.Context, username, handle string) (domain.Role, error) {
	if handle == "" {
		return s.resolveAny(ctx, username)
	}

	founder, err := s.founders.GetByHandle(ctx, handle)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return domain.RoleNone, err
	}
	if err == nil && founder.Username == username {
		return domain.RoleOwner, nil
	}

	isRecruiter, err := s.recruiters.Exists(ctx, username, handle)
	if err != nil {
		return domain.RoleNone, err
	}
	if isRecruiter {
		return domain.RoleRecruiter, nil
	}
	return domain.RoleNone, nil
}

func (s *AuthorizationService) resolveAny(ctx context.Context, username string) (domain.Role, error) {
	isFounder, err := s.founders.ExistsForUsername(ctx, username)
	if err != nil {
		return domain.RoleNone, err
	}
	if isFounder {
		return domain.RoleOwner, nil
	}

	isRecruiter, err := s.recruiters.ExistsForUsername(ctx, username)
	if err != nil {
		return domain.RoleNone, err
	}
	if isRecruiter {
		return domain.RoleRecruiter, nil
	}
	return domain.RoleNone, nil
}

// Authorize resolves the actor's role and checks it against the static
// policy table, returning Forbidden on deny.
func (s *AuthorizationService) Authorize(ctx context.Context, username string, action auth.Action, handle string) error {
	role, err := s.ResolveRole(ctx, username, handle)
	if err != nil {
		return err
	}
	if !auth.Authorize(action, role) {
		return apperrors.NewForbidden("role insufficient for action")
	}
	return nil
}

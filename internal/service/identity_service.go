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
	"github.com/spec-kit/careerhub/internal/config"
	"github.com/spec-kit/careerhub/internal/domain"
	"github.com/spec-kit/careerhub/internal/events"
	"github.com/spec-kit/careerhub/internal/repository"
	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

// RegistrationCandidate carries the registration input. The account's email
// is derived from the embedded resume's basic-info email.
type RegistrationCandidate struct {
	Username string
	Password string
	Resume   domain.Resume
}

// RegistrationResult reports the outcome with a structured conflict
// breakdown; both flags may be set at once.
type RegistrationResult struct {
	Created       bool
	AccountID     string
	UsernameTaken bool
	EmailUsed     bool
}

// IdentityService owns account uniqueness, credentials, and sessions.
type IdentityService struct {
	accounts     repository.AccountRepository
	recruiters   repository.RecruiterRepository
	applications repository.ApplicationRepository
	tokens       *auth.TokenManager
	argon        auth.Argon2Params
	limiter      *LoginLimiter
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// IdentityDependencies encapsulates repo requirements for the service.
type IdentityDependencies struct {
	AccountRepo     repository.AccountRepository
	RecruiterRepo   repository.RecruiterRepository
	ApplicationRepo repository.ApplicationRepository
	Limiter         *LoginLimiter
	Dispatcher      events.Dispatcher
}

// NewIdentityService builds the service.
func NewIdentityService(cfg config.Config, deps IdentityDependencies, logger *zap.Logger) *IdentityService {
	return &IdentityService{
		accounts:     deps.AccountRepo,
		recruiters:   deps.RecruiterRepo,
		applications: deps.ApplicationRepo,
		tokens:       auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		argon: auth.Argon2Params{
			MemoryKiB:   cfg.Auth.ArgonMemoryKiB,
			Iterations:  cfg.Auth.ArgonIterations,
			Parallelism: cfg.Auth.ArgonParallelism,
		},
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Register creates an account when neither username nor email is taken.
// The pre-read produces the structured breakdown; the insert-time
// duplicate-key error remains authoritative for the race window.
func (s *IdentityService) Register(ctx context.Context, candidate RegistrationCandidate) (RegistrationResult, error) {
	username := strings.TrimSpace(candidate.Username)
	email := strings.TrimSpace(candidate.Resume.Basic.Email)
	if username == "" {
		return RegistrationResult{}, apperrors.NewValidationError("username must not be empty", nil)
	}
	if email == "" {
		return RegistrationResult{}, apperrors.NewValidationError("resume basic email must not be empty", nil)
	}

	result, err := s.checkTaken(ctx, username, email)
	if err != nil {
		return RegistrationResult{}, err
	}
	if result.UsernameTaken || result.EmailUsed {
		return result, nil
	}

	hash, err := auth.HashPassword(candidate.Password, s.argon)
	if err != nil {
		return RegistrationResult{}, err
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Resume:       candidate.Resume,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// Lost the race to a concurrent registration; report which
			// field the winner holds.
			taken, checkErr := s.checkTaken(ctx, username, email)
			if checkErr != nil {
				return RegistrationResult{}, checkErr
			}
			if !taken.UsernameTaken && !taken.EmailUsed {
				taken.UsernameTaken = true
			}
			return taken, nil
		}
		return RegistrationResult{}, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAccountRegistered,
		Actor:     username,
		Timestamp: time.Now().UTC(),
		Payload:   events.AccountRegisteredPayload{AccountID: account.ID, Email: email},
	})

	return RegistrationResult{Created: true, AccountID: account.ID}, nil
}

func (s *IdentityService) checkTaken(ctx context.Context, username, email string) (RegistrationResult, error) {
	var result RegistrationResult

	if _, err := s.accounts.GetByUsername(ctx, username); err == nil {
		result.UsernameTaken = true
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return RegistrationResult{}, err
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		result.EmailUsed = true
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return RegistrationResult{}, err
	}

	return result, nil
}

// Login verifies credentials and issues a session token.
func (s *IdentityService) Login(ctx context.Context, username, password string) (domain.Token, error) {
	if s.limiter.Blocked(ctx, username) {
		return domain.Token{}, apperrors.NewUnauthorized("too many failed login attempts")
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.limiter.RecordFailure(ctx, username)
			return domain.Token{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return domain.Token{}, err
	}

	if !auth.VerifyPassword(password, account.PasswordHash) {
		s.limiter.RecordFailure(ctx, username)
		return domain.Token{}, apperrors.NewUnauthorized("invalid credentials")
	}

	s.limiter.Reset(ctx, username)
	return s.tokens.Issue(account.Username)
}

// Authenticate resolves the account behind a bearer token. Token failures
// surface as the typed auth errors.
func (s *IdentityService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	username, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("account", map[string]any{"username": username})
		}
		return nil, err
	}
	return account, nil
}

// Unregister deletes the caller's own account. The email must match the
// account; the cascade to applications and recruiter memberships is
// best-effort and logged, never rolled back.
func (s *IdentityService) Unregister(ctx context.Context, username, email string) error {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("account", map[string]any{"username": username})
		}
		return err
	}
	if account.Email != email {
		return apperrors.NewForbidden("email does not match account")
	}

	deleted, err := s.accounts.Delete(ctx, username)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("account", map[string]any{"username": username})
	}

	if _, err := s.applications.DeleteByEmail(ctx, account.Email); err != nil {
		s.logger.Error("unregister cascade: application cleanup failed",
			zap.String("username", username), zap.Error(err))
	}
	if _, err := s.recruiters.DeleteByUsername(ctx, username); err != nil {
		s.logger.Error("unregister cascade: recruiter membership cleanup failed",
			zap.String("username", username), zap.Error(err))
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAccountUnregistered,
		Actor:     username,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// UpdateResume replaces the embedded resume. A changed basic-info email
// re-enters the uniqueness contract.
func (s *IdentityService) UpdateResume(ctx context.Context, username string, resume domain.Resume) error {
	email := strings.TrimSpace(resume.Basic.Email)
	if email == "" {
		return apperrors.NewValidationError("resume basic email must not be empty", nil)
	}

	err := s.accounts.UpdateResume(ctx, username, email, resume)
	if errors.Is(err, repository.ErrDuplicateKey) {
		return apperrors.NewConflict("email already in use", map[string]any{"email": email})
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.NewNotFound("account", map[string]any{"username": username})
	}
	return err
}

// ChangePassword verifies the current password before storing a new hash.
func (s *IdentityService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("account", map[string]any{"username": username})
		}
		return err
	}
	if !auth.VerifyPassword(currentPassword, account.PasswordHash) {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	hash, err := auth.HashPassword(newPassword, s.argon)
	if err != nil {
		return err
	}
	return s.accounts.UpdatePassword(ctx, username, hash)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *IdentityService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *IdentityService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/careerhub/internal/domain"
	"github.com/spec-kit/careerhub/internal/repository"
	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Account *domain.Account
}

// Username returns the caller's canonical identity key.
func (p *Principal) Username() string {
	if p == nil || p.Account == nil {
		return ""
	}
	return p.Account.Username
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	accounts repository.AccountRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, accounts repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, accounts: accounts}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	// Typed token errors flow out untouched; the HTTP error middleware
	// owns their status and code mapping.
	username, err := m.tokens.Parse(parts[1])
	if err != nil {
		return err
	}

	account, err := m.accounts.GetByUsername(c.Context(), username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewUnauthorized("account not found")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{Account: account})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// RequirePrincipal ensures the caller is authenticated.
func RequirePrincipal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

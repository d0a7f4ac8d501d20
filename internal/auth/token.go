package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/careerhub/internal/domain"
)

// Typed token validation failures. All are terminal; a token never moves
// back to valid.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)

// TokenManager issues and validates signed session tokens. It is stateless;
// validation is a pure computation over the token bytes and the clock.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a manager around the process-wide secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the manager with the clock overridden,
// for tests.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	clone := *tm
	clone.now = now
	return &clone
}

// Claims describes the JWT payload. The subject is the account's canonical
// username.
type Claims struct {
	jwt.RegisteredClaims
}

// Issue signs a token for the subject with the configured TTL.
func (tm *TokenManager) Issue(username string) (domain.Token, error) {
	return tm.IssueFor(username, tm.ttl)
}

// IssueFor signs a token with the requested TTL, capped at the configured
// default. Callers may shorten a token's life, never extend it.
func (tm *TokenManager) IssueFor(username string, ttl time.Duration) (domain.Token, error) {
	if ttl <= 0 || ttl > tm.ttl {
		ttl = tm.ttl
	}

	issuedAt := tm.now()
	expiresAt := issuedAt.Add(ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return domain.Token{}, err
	}
	return domain.Token{Value: signed, Subject: username, IssuedAt: issuedAt, ExpiresAt: expiresAt}, nil
}

// Parse validates a token and returns its subject. Signature integrity is
// checked before expiry; failures map to the typed errors above.
func (tm *TokenManager) Parse(tokenStr string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenSignatureInvalid
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		default:
			return "", ErrTokenMalformed
		}
	}

	if !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}

package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// ErrTokenExpired marks tokens whose lifetime has elapsed. Callers
// surface the same Unauthorized either way; the distinction exists for
// logging only.
var ErrTokenExpired = errors.New("token expired")

// ErrNoSecret is returned when the manager is built without signing material.
var ErrNoSecret = errors.New("jwt secret not configured")

// TokenManager handles issuing and validating JWT session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the JWT payload: subject identity, role and a unique
// token id used by the revocation list.
type Claims struct {
	SubjectID int64       `json:"id"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Generate builds and signs a session token for the subject.
func (tm *TokenManager) Generate(subjectID int64, role domain.Role) (string, *Claims, error) {
	if len(tm.secret) == 0 {
		return "", nil, ErrNoSecret
	}

	now := time.Now()
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", nil, err
	}
	return tokenString, claims, nil
}

// Parse validates the signature and lifetime and returns claims.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if !claims.Role.Valid() {
		return nil, errors.New("unknown role claim")
	}
	return claims, nil
}

// RemainingLifetime reports how long the claims stay valid, zero if already expired.
func (c *Claims) RemainingLifetime() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(c.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

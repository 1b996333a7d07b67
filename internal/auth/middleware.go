package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hrms-service/internal/domain"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller as asserted by the token.
type Principal struct {
	SubjectID int64
	Role      domain.Role
}

// AuthMiddleware validates bearer tokens and attaches principals.
type AuthMiddleware struct {
	tokens  *TokenManager
	revoked RevocationList
	logger  *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, revoked RevocationList, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, revoked: revoked, logger: logger}
}

// Handle enforces authentication for protected routes. The token is
// self-contained: no store lookup happens here, only signature, expiry
// and revocation checks.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		// Expired vs malformed matters only for the log line.
		m.logger.Debug("token rejected", zap.Error(err))
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	if m.revoked != nil {
		revoked, err := m.revoked.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		if revoked {
			return apperrors.NewUnauthorized("token revoked")
		}
	}

	c.Locals(principalKey, &Principal{SubjectID: claims.SubjectID, Role: claims.Role})
	c.Locals(claimsKey, claims)
	return c.Next()
}

const claimsKey = "auth_claims"

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// ClaimsFromContext retrieves the raw token claims, used by refresh and logout.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}

package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrms-service/internal/domain"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// RequireRole gates a route to the given roles. An empty list only
// requires authentication.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin permits admins unconditionally and employees only
// when the named numeric path parameter matches their own subject id.
// This is the single place the self-access rule lives.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.Role == domain.RoleAdmin {
			return c.Next()
		}

		targetID, err := strconv.ParseInt(c.Params(param), 10, 64)
		if err != nil {
			return apperrors.NewValidationError("invalid " + param)
		}
		if targetID != principal.SubjectID {
			return apperrors.NewForbidden("access restricted to own records")
		}
		return c.Next()
	}
}

package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/domain"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// RequireRoles restricts a route to principals holding one of the allowed
// roles. The allow-list is fixed at registration time; the rejection message
// echoes it in the order supplied.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	names := make([]string, len(allowed))
	for i, role := range allowed {
		names[i] = string(role)
	}
	joined := strings.Join(names, ", ")

	check := func(c *fiber.Ctx) (err error) {
		// A failure inside the check itself must never reach the client
		// as a raw error.
		defer func() {
			if r := recover(); r != nil {
				err = apperrors.NewDomainError("AUTHORIZATION_FAILED", "authorization check failed",
					fiber.StatusInternalServerError, nil)
			}
		}()

		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Authentication required")
		}

		for _, role := range allowed {
			if principal.Role == role {
				return nil
			}
		}
		return apperrors.NewForbidden(fmt.Sprintf(
			"Access denied. Required roles: %s. Your role: %s", joined, principal.Role))
	}

	return func(c *fiber.Ctx) error {
		if err := check(c); err != nil {
			return err
		}
		return c.Next()
	}
}

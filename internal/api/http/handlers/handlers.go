package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/auth"
	"github.com/spec-kit/school-service/internal/events"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// actorFromContext builds event actor metadata from the authenticated
// principal. Routes behind the gates always carry one.
func actorFromContext(c *fiber.Ctx) (events.Actor, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return events.Actor{}, apperrors.NewUnauthorized("Authentication required")
	}
	return events.Actor{UserID: principal.ID, Role: principal.Role}, nil
}

func invalidPayload() error {
	return apperrors.NewValidationError("invalid payload", nil)
}

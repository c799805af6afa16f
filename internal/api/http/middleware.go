package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/observability"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as request logging
// and the terminal error handler. Order matters: the error handler must wrap
// every stage that can fail so exactly one envelope is written per request.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
}

// NotFoundHandler terminates routing: any request that failed to match a
// registered route ends up here. Register it after all routes.
func NotFoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("route", map[string]any{"path": c.Path()})
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts any error raised downstream, including
// recovered panics, into a single JSON envelope. Operational errors keep
// their own status and message; anything unclassified becomes a generic 500
// and is logged server-side with full detail.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}

				envelope := fiber.Map{
					"statusCode": domainErr.HTTPStatus,
					"message":    domainErr.Message,
					"code":       domainErr.Code,
					"timestamp":  time.Now().UTC().Format(time.RFC3339),
				}
				if len(domainErr.Details) > 0 {
					envelope["details"] = domainErr.Details
				}
				c.Status(domainErr.HTTPStatus)
				err = c.JSON(envelope)
			}
		}()
		return c.Next()
	}
}

package http

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/port-russell/marina-service/internal/observability"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling
// and request logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics) {
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

// errorHandlingMiddleware converts returned errors into the documented
// response shapes: 400 ordered field errors, 404/401/403 string sentinels,
// 501 raw store errors, 500 generic messages, and verbatim relays for
// proxied downstream failures.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternal(nil)
			}
			if err == nil {
				return
			}

			status := fiber.StatusInternalServerError
			var payload any = fiber.Map{"message": "Internal Server Error"}
			var rawBody []byte

			if httpErr, ok := apperrors.AsHTTPError(err); ok {
				status = httpErr.Status
				payload = httpErr.Payload
				rawBody = httpErr.RawBody
			} else if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
				payload = fiber.Map{"message": fiberErr.Message}
			}

			metrics.RecordError(c.Path(), c.Method(), status)
			if status >= 500 {
				logger.Error("request failed", zap.Int("status", status), zap.Error(err))
			}

			c.Status(status)
			if rawBody != nil {
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				_ = c.Send(rawBody)
			} else {
				_ = c.JSON(payload)
			}
			err = nil
		}()
		return c.Next()
	}
}

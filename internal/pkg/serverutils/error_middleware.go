package serverutils

import (
	"errors"

	"translator-ai-be/internal/pkg/logger"
	"translator-ai-be/pkg/pipeline"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts returned errors into the sanitized
// {err: string} payload. Pipeline errors carry their own status and public
// message; internal detail goes to the log only.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var pipelineErr *pipeline.Error
		if errors.As(err, &pipelineErr) {
			return ctx.Status(pipelineErr.Status).JSON(fiber.Map{
				"err": pipelineErr.Public,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"err": fiberErr.Message,
			})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"err": "Internal server error",
		})
	}
}

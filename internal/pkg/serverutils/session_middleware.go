package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionIDMiddleware rejects requests whose :sessionId path parameter is
// not a valid UUID before they reach the handlers.
func SessionIDMiddleware(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")
	if _, err := uuid.Parse(sessionID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, "Invalid session ID"))
	}

	ctx.Locals("session_id", sessionID)
	return ctx.Next()
}

package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ai-hrchat-be/internal/dto"
	"ai-hrchat-be/internal/pkg/serverutils"
	"ai-hrchat-be/internal/repository/contract"
	"ai-hrchat-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
	SendInitialMessage(ctx *fiber.Ctx) error
	GenerateShareLink(ctx *fiber.Ctx) error
	ValidateToken(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/create-session/", c.Create)
	r.Get("/sessions/", c.List)
	r.Get("/validate-token/", c.ValidateToken)

	r.Get("/get-session/:sessionId", serverutils.SessionIDMiddleware, c.GetStatus)
	r.Post("/send-initial-message/:sessionId", serverutils.SessionIDMiddleware, c.SendInitialMessage)
	r.Get("/generate-share-link/:sessionId", serverutils.SessionIDMiddleware, c.GenerateShareLink)
	r.Delete("/sessions/:sessionId", serverutils.SessionIDMiddleware, c.Delete)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.sessionService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	res, err := c.sessionService.ListSessions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) GetStatus(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetSessionStatus(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) SendInitialMessage(ctx *fiber.Ctx) error {
	var req dto.InitialMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.sessionService.SendInitialMessage(ctx.Context(), ctx.Params("sessionId"), &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"status": "Initial message sent and flag set"})
}

func (c *sessionController) GenerateShareLink(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GenerateShareLink(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		if errors.Is(err, service.ErrInitialMessageRequired) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) ValidateToken(ctx *fiber.Ctx) error {
	token := ctx.Query("token")
	if token == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing token"))
	}

	res, err := c.sessionService.ValidateToken(ctx.Context(), token)
	if err != nil {
		if errors.Is(err, contract.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid or expired token"))
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	if err := c.sessionService.DeleteSession(ctx.Context(), ctx.Params("sessionId")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted", nil))
}

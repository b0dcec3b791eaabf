package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-hrchat-be/internal/dto"
	"ai-hrchat-be/internal/pkg/serverutils"
	"ai-hrchat-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat/:sessionId", serverutils.SessionIDMiddleware, c.Chat)
	r.Get("/messages/:sessionId", serverutils.SessionIDMiddleware, c.Messages)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.chatService.Chat(ctx.Context(), ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) Messages(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetMessages(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

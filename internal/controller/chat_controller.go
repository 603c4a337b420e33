package controller

import (
	"errors"

	"psybot-be/internal/dto"
	"psybot-be/internal/service"
	"psybot-be/pkg/upstream"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

// RegisterRoutes mounts the proxy endpoints at the root, without auth,
// matching the wire contract the web client expects.
func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/history", c.History)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res, err := c.chatService.SendChat(ctx.Context(), &req)
	if err != nil {
		// Upstream failures surface as a bare {"error": tag} body so the
		// client can show its localized connection message.
		var ue *upstream.Error
		if errors.As(err, &ue) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ue.Tag})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(res)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetHistory(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(res)
}

package controller

import (
	"psybot-be/internal/dto"
	"psybot-be/internal/pkg/serverutils"
	"psybot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
	PostMessage(ctx *fiber.Ctx) error
	PatchMessage(ctx *fiber.Ctx) error
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
	h := r.Group("/sessions")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id/messages", c.Messages)
	h.Post(":id/messages", c.PostMessage)
	h.Patch(":id/messages/:messageId", c.PatchMessage)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.sessionService.CreateSession(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.sessionService.GetSessions(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Sessions retrieved", res))
}

func (c *sessionController) Messages(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.sessionService.GetMessages(ctx.Context(), email, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Messages retrieved", res))
}

func (c *sessionController) PostMessage(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.PostMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.PostMessage(ctx.Context(), email, sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message saved", res))
}

func (c *sessionController) PatchMessage(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	messageId, err := uuid.Parse(ctx.Params("messageId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid message id")
	}

	var req dto.PatchMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.sessionService.PatchMessageReply(ctx.Context(), email, messageId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Reply saved", nil))
}

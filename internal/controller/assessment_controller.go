package controller

import (
	"psybot-be/internal/dto"
	"psybot-be/internal/pkg/serverutils"
	"psybot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	ByPatient(ctx *fiber.Ctx) error
}

type assessmentController struct {
	assessmentService service.IAssessmentService
}

func NewAssessmentController(assessmentService service.IAssessmentService) IAssessmentController {
	return &assessmentController{
		assessmentService: assessmentService,
	}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assessments")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Submit)
	h.Get("", serverutils.DoctorOnly, c.List)
	h.Get("/stats", serverutils.DoctorOnly, c.Stats)
	h.Get("/patient/:email", serverutils.DoctorOnly, c.ByPatient)
}

func (c *assessmentController) Submit(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	var req dto.SubmitAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assessmentService.Submit(ctx.Context(), email, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assessment saved", res))
}

func (c *assessmentController) List(ctx *fiber.Ctx) error {
	res, err := c.assessmentService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assessments retrieved", res))
}

func (c *assessmentController) Stats(ctx *fiber.Ctx) error {
	res, err := c.assessmentService.GetStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Stats computed", res))
}

func (c *assessmentController) ByPatient(ctx *fiber.Ctx) error {
	res, err := c.assessmentService.GetByPatient(ctx.Context(), ctx.Params("email"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assessments retrieved", res))
}

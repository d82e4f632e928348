package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICoachController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type coachController struct {
	coachService service.ICoachService
}

func NewCoachController(coachService service.ICoachService) ICoachController {
	return &coachController{coachService: coachService}
}

func (c *coachController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai-coach")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/ask", c.Ask)
	h.Get("/conversations/:conversationId", c.History)
}

func (c *coachController) Ask(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CoachAskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.coachService.Ask(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ask coach", res))
}

func (c *coachController) History(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	conversationId := ctx.Params("conversationId")
	if conversationId == "" {
		return serverutils.BadRequest("missing conversation id")
	}

	res, err := c.coachService.History(ctx.Context(), userId, conversationId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversation history", res))
}

package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKeyDecisionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type keyDecisionController struct {
	decisionService service.IKeyDecisionService
}

func NewKeyDecisionController(decisionService service.IKeyDecisionService) IKeyDecisionController {
	return &keyDecisionController{decisionService: decisionService}
}

func (c *keyDecisionController) RegisterRoutes(r fiber.Router) {
	nested := r.Group("/projects/:projectId/key-decisions")
	nested.Use(serverutils.JwtMiddleware)
	nested.Post("", c.Create)
	nested.Get("", c.List)
	nested.Put("/:decisionId", c.Update)
	nested.Delete("/:decisionId", c.Delete)
}

func (c *keyDecisionController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	var req dto.CreateKeyDecisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.ProjectId = projectId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.decisionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create key decision", res))
}

func (c *keyDecisionController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	decisionId, err := pathUUID(ctx, "decisionId")
	if err != nil {
		return err
	}

	var req dto.UpdateKeyDecisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.Id = decisionId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.decisionService.Update(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update key decision", nil))
}

func (c *keyDecisionController) Delete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	decisionId, err := pathUUID(ctx, "decisionId")
	if err != nil {
		return err
	}

	if err := c.decisionService.Delete(ctx.Context(), userId, decisionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete key decision", nil))
}

func (c *keyDecisionController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	var eventId *uuid.UUID
	if raw := ctx.Query("integration_event_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.BadRequest("invalid integration_event_id")
		}
		eventId = &parsed
	}

	res, err := c.decisionService.List(ctx.Context(), userId, projectId, eventId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get key decisions", res))
}

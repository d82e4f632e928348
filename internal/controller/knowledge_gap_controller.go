package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKnowledgeGapController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type knowledgeGapController struct {
	gapService service.IKnowledgeGapService
}

func NewKnowledgeGapController(gapService service.IKnowledgeGapService) IKnowledgeGapController {
	return &knowledgeGapController{gapService: gapService}
}

func (c *knowledgeGapController) RegisterRoutes(r fiber.Router) {
	nested := r.Group("/projects/:projectId/knowledge-gaps")
	nested.Use(serverutils.JwtMiddleware)
	nested.Post("", c.Create)
	nested.Get("", c.List)
	nested.Put("/:gapId", c.Update)
	nested.Delete("/:gapId", c.Delete)
}

func (c *knowledgeGapController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	var req dto.CreateKnowledgeGapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.ProjectId = projectId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.gapService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create knowledge gap", res))
}

func (c *knowledgeGapController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	gapId, err := pathUUID(ctx, "gapId")
	if err != nil {
		return err
	}

	var req dto.UpdateKnowledgeGapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.Id = gapId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.gapService.Update(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update knowledge gap", nil))
}

func (c *knowledgeGapController) Delete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	gapId, err := pathUUID(ctx, "gapId")
	if err != nil {
		return err
	}

	if err := c.gapService.Delete(ctx.Context(), userId, gapId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete knowledge gap", nil))
}

func (c *knowledgeGapController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	var decisionId *uuid.UUID
	if raw := ctx.Query("key_decision_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.BadRequest("invalid key_decision_id")
		}
		decisionId = &parsed
	}

	res, err := c.gapService.List(ctx.Context(), userId, projectId, decisionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get knowledge gaps", res))
}

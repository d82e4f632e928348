package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIntegrationEventController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
}

type integrationEventController struct {
	eventService service.IIntegrationEventService
}

func NewIntegrationEventController(eventService service.IIntegrationEventService) IIntegrationEventController {
	return &integrationEventController{eventService: eventService}
}

func (c *integrationEventController) RegisterRoutes(r fiber.Router) {
	nested := r.Group("/projects/:projectId/integration-events")
	nested.Use(serverutils.JwtMiddleware)
	nested.Post("", c.Create)
	nested.Get("", c.List)
	nested.Put("/reorder", c.Reorder)
	nested.Put("/:eventId", c.Update)
	nested.Delete("/:eventId", c.Delete)
}

func (c *integrationEventController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	var req dto.CreateIntegrationEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.ProjectId = projectId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eventService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create integration event", res))
}

func (c *integrationEventController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	eventId, err := pathUUID(ctx, "eventId")
	if err != nil {
		return err
	}

	var req dto.UpdateIntegrationEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.Id = eventId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.eventService.Update(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update integration event", nil))
}

func (c *integrationEventController) Delete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	eventId, err := pathUUID(ctx, "eventId")
	if err != nil {
		return err
	}

	if err := c.eventService.Delete(ctx.Context(), userId, eventId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete integration event", nil))
}

func (c *integrationEventController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	res, err := c.eventService.List(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get integration events", res))
}

func (c *integrationEventController) Reorder(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	var req dto.ReorderIntegrationEventsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.ProjectId = projectId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.eventService.Reorder(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success reorder integration events", nil))
}

package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IArchiveController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type archiveController struct {
	archiveService service.IArchiveService
}

func NewArchiveController(archiveService service.IArchiveService) IArchiveController {
	return &archiveController{archiveService: archiveService}
}

func (c *archiveController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/archive")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/projects/:projectId/documents", c.Upload)
	h.Get("/projects/:projectId/documents", c.List)
	h.Post("/projects/:projectId/search", c.Search)
	h.Delete("/projects/:projectId/documents/:documentId", c.Delete)
}

func (c *archiveController) Upload(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.BadRequest("missing file")
	}

	res, err := c.archiveService.Upload(ctx.Context(), userId, projectId, fileHeader)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload document", res))
}

func (c *archiveController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	res, err := c.archiveService.List(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get documents", res))
}

func (c *archiveController) Delete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	documentId, err := pathUUID(ctx, "documentId")
	if err != nil {
		return err
	}

	if err := c.archiveService.Delete(ctx.Context(), userId, documentId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}

func (c *archiveController) Search(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := pathUUID(ctx, "projectId")
	if err != nil {
		return err
	}

	var req dto.ArchiveSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.ProjectId = projectId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.archiveService.Search(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search archive", res))
}

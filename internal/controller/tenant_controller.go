package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITenantController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Retry(ctx *fiber.Ctx) error
}

type tenantController struct {
	tenantService service.ITenantService
}

func NewTenantController(tenantService service.ITenantService) ITenantController {
	return &tenantController{tenantService: tenantService}
}

func (c *tenantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tenants")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/create", serverutils.RequireRoles(string(entity.UserRoleSuperAdmin)), c.Create)
	h.Get("/list", serverutils.RequireRoles(string(entity.UserRoleSuperAdmin)), c.List)
	h.Get("/:tenantId/status", c.Status)
	h.Post("/:tenantId/retry", serverutils.RequireRoles(string(entity.UserRoleSuperAdmin)), c.Retry)
}

func (c *tenantController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tenantService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Success queue tenant provisioning", res))
}

func (c *tenantController) List(ctx *fiber.Ctx) error {
	res, err := c.tenantService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get tenants", res))
}

func (c *tenantController) Status(ctx *fiber.Ctx) error {
	tenantId, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return err
	}

	res, err := c.tenantService.Status(ctx.Context(), tenantId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get tenant status", res))
}

func (c *tenantController) Retry(ctx *fiber.Ctx) error {
	tenantId, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return err
	}

	res, err := c.tenantService.Retry(ctx.Context(), tenantId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Success retry tenant provisioning", res))
}

package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUsageController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	UpdateLimit(ctx *fiber.Ctx) error
}

type usageController struct {
	usageService service.IUsageService
}

func NewUsageController(usageService service.IUsageService) IUsageController {
	return &usageController{usageService: usageService}
}

func (c *usageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/token-usage")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
	h.Post("/refresh-usage", c.Refresh)

	admins := serverutils.RequireRoles(string(entity.UserRoleSuperAdmin), string(entity.UserRoleTenantAdmin))
	h.Get("/usage-all", admins, c.ListAll)
	h.Put("/limit/:userId", admins, c.UpdateLimit)
}

func (c *usageController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.usageService.Show(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get token usage", res))
}

func (c *usageController) ListAll(ctx *fiber.Ctx) error {
	res, err := c.usageService.ListAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get token usage report", res))
}

func (c *usageController) Refresh(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.usageService.Refresh(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refresh token usage", res))
}

func (c *usageController) UpdateLimit(ctx *fiber.Ctx) error {
	userId, err := pathUUID(ctx, "userId")
	if err != nil {
		return err
	}

	var req dto.UpdateTokenLimitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.UserId = userId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.usageService.UpdateLimit(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update token limit", nil))
}

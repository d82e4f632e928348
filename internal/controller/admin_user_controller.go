package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminUserController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type adminUserController struct {
	adminUserService service.IAdminUserService
}

func NewAdminUserController(adminUserService service.IAdminUserService) IAdminUserController {
	return &adminUserController{adminUserService: adminUserService}
}

func (c *adminUserController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/users")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRoles(string(entity.UserRoleSuperAdmin), string(entity.UserRoleTenantAdmin)))
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Put("/:userId", c.Update)
	h.Delete("/:userId", c.Delete)
}

func (c *adminUserController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateManagedUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminUserService.Create(ctx.Context(), currentTenantId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create user", res))
}

func (c *adminUserController) Update(ctx *fiber.Ctx) error {
	userId, err := pathUUID(ctx, "userId")
	if err != nil {
		return err
	}

	var req dto.UpdateManagedUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.Id = userId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminUserService.Update(ctx.Context(), currentTenantId(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update user", nil))
}

func (c *adminUserController) Delete(ctx *fiber.Ctx) error {
	userId, err := pathUUID(ctx, "userId")
	if err != nil {
		return err
	}

	if err := c.adminUserService.Delete(ctx.Context(), currentTenantId(ctx), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user", nil))
}

func (c *adminUserController) List(ctx *fiber.Ctx) error {
	res, err := c.adminUserService.List(ctx.Context(), currentTenantId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get users", res))
}

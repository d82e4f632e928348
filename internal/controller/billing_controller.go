package controller

import (
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	ListPlans(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	Notification(ctx *fiber.Ctx) error
}

type billingController struct {
	billingService service.IBillingService
}

func NewBillingController(billingService service.IBillingService) IBillingController {
	return &billingController{billingService: billingService}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing")
	h.Get("/plans", c.ListPlans)
	// Payment gateway callback, authenticated by order lookup rather than JWT.
	h.Post("/notification", c.Notification)
	h.Post("/checkout",
		serverutils.JwtMiddleware,
		serverutils.RequireRoles(string(entity.UserRoleTenantAdmin), string(entity.UserRoleSuperAdmin)),
		c.Checkout,
	)
}

func (c *billingController) ListPlans(ctx *fiber.Ctx) error {
	res, err := c.billingService.ListPlans(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get plans", res))
}

func (c *billingController) Checkout(ctx *fiber.Ctx) error {
	tenantId := currentTenantId(ctx)
	if tenantId == nil {
		return serverutils.BadRequest("checkout requires a tenant account")
	}

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	email, _ := ctx.Locals("email").(string)

	res, err := c.billingService.Checkout(ctx.Context(), *tenantId, email, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create checkout", res))
}

func (c *billingController) Notification(ctx *fiber.Ctx) error {
	var req dto.PaymentNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if req.OrderId == "" || req.TransactionStatus == "" {
		return serverutils.BadRequest("missing order_id or transaction_status")
	}

	if err := c.billingService.HandleNotification(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success process notification", nil))
}

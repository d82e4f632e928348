package controller

import (
	"rlc-hub-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, serverutils.Unauthorized("missing token subject")
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serverutils.Unauthorized("invalid token subject")
	}
	return userId, nil
}

// currentTenantId returns nil for tokens without a tenant claim (super admins).
func currentTenantId(ctx *fiber.Ctx) *uuid.UUID {
	raw, ok := ctx.Locals("tenant_id").(string)
	if !ok || raw == "" {
		return nil
	}
	tenantId, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &tenantId
}

func pathUUID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("invalid " + name)
	}
	return id, nil
}

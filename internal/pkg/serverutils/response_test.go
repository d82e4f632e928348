package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/not-found", func(c *fiber.Ctx) error {
		return NotFound("project not found")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "teapot")
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("Success", "payload"))
	})

	tests := []struct {
		path        string
		wantStatus  int
		wantMessage string
	}{
		{"/not-found", fiber.StatusNotFound, "project not found"},
		{"/boom", fiber.StatusTeapot, "teapot"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tt.wantStatus, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var env BaseResponse[any]
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.False(t, env.Success)
		assert.Equal(t, tt.wantStatus, env.Code)
		assert.Equal(t, tt.wantMessage, env.Message)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("role"),
		})
	})

	userId := uuid.New().String()
	valid := signedToken(t, "test_secret", jwt.MapClaims{
		"user_id": userId,
		"email":   "ana@example.com",
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	t.Run("missing token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/protected", nil), -1)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret", func(t *testing.T) {
		bad := signedToken(t, "other_secret", jwt.MapClaims{
			"user_id": userId,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+bad)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := signedToken(t, "test_secret", jwt.MapClaims{
			"user_id": userId,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token populates locals", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, userId, body["user_id"])
		assert.Equal(t, "user", body["role"])
	})
}

func TestRequireRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	app := fiber.New()
	app.Get("/admin", JwtMiddleware, RequireRoles("super_admin", "tenant_admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	request := func(role string) int {
		token := signedToken(t, "test_secret", jwt.MapClaims{
			"user_id": uuid.New().String(),
			"role":    role,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req, -1)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, request("super_admin"))
	assert.Equal(t, fiber.StatusOK, request("tenant_admin"))
	assert.Equal(t, fiber.StatusForbidden, request("user"))
}

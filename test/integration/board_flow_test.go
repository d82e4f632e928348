package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"rlc-hub-be/internal/bootstrap"
	"rlc-hub-be/internal/config"
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/model"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/server"
	"rlc-hub-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoardFlow drives the full project board lifecycle through the HTTP
// surface: register, login, project, integration events, key decisions,
// knowledge gaps, reorder, card move, cascade delete.
func TestBoardFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	require.NoError(t, err)

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	email := fmt.Sprintf("board-%s@example.com", uuid.New().String()[:8])
	password := "secret1234"

	defer func() {
		db.Unscoped().Where("email = ?", email).Delete(&model.User{})
	}()

	// Register + login
	doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email":      email,
		"password":   password,
		"first_name": "Board",
		"last_name":  "Tester",
	}, fiber.StatusCreated, nil)

	var login dto.LoginResponse
	doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, fiber.StatusOK, &login)
	require.NotEmpty(t, login.AccessToken)
	token := login.AccessToken

	// Project
	var created dto.CreateProjectResponse
	doJSON(t, app, "POST", "/api/projects", token, map[string]string{
		"name":        "Battery Redesign",
		"description": "RLC pilot",
	}, fiber.StatusCreated, &created)
	projectId := created.Id

	defer func() {
		req := httptest.NewRequest("DELETE", "/api/projects/"+projectId.String(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		_, _ = app.Test(req, -1)
	}()

	// Two integration events
	var eventA, eventB dto.CreateIntegrationEventResponse
	base := "/api/projects/" + projectId.String()
	doJSON(t, app, "POST", base+"/integration-events", token, map[string]string{"name": "IE1"}, fiber.StatusCreated, &eventA)
	doJSON(t, app, "POST", base+"/integration-events", token, map[string]string{"name": "IE2"}, fiber.StatusCreated, &eventB)

	var events []dto.IntegrationEventResponse
	doJSON(t, app, "GET", base+"/integration-events", token, nil, fiber.StatusOK, &events)
	require.Len(t, events, 2)
	assert.Equal(t, 0, events[0].Sequence)
	assert.Equal(t, 1, events[1].Sequence)

	// Reorder reverses the columns
	doJSON(t, app, "PUT", base+"/integration-events/reorder", token, map[string]any{
		"event_ids": []uuid.UUID{eventB.Id, eventA.Id},
	}, fiber.StatusOK, nil)

	doJSON(t, app, "GET", base+"/integration-events", token, nil, fiber.StatusOK, &events)
	require.Len(t, events, 2)
	assert.Equal(t, eventB.Id, events[0].Id)

	// Key decision in column A
	var decision dto.CreateKeyDecisionResponse
	doJSON(t, app, "POST", base+"/key-decisions", token, map[string]any{
		"integration_event_id": eventA.Id,
		"title":                "Pick cell supplier",
	}, fiber.StatusCreated, &decision)

	// A decision cannot point at an event from another project
	doJSON(t, app, "POST", base+"/key-decisions", token, map[string]any{
		"integration_event_id": uuid.New(),
		"title":                "Orphan decision",
	}, fiber.StatusBadRequest, nil)

	// Knowledge gap under the decision
	var gap dto.CreateKnowledgeGapResponse
	doJSON(t, app, "POST", base+"/knowledge-gaps", token, map[string]any{
		"key_decision_id": decision.Id,
		"title":           "Cycle life at low temperature",
		"contributors":    "Alice, Bob",
	}, fiber.StatusCreated, &gap)

	var gaps []dto.KnowledgeGapResponse
	doJSON(t, app, "GET", base+"/knowledge-gaps", token, nil, fiber.StatusOK, &gaps)
	require.Len(t, gaps, 1)
	assert.Equal(t, []string{"Alice", "Bob"}, gaps[0].Contributors)

	// Move the decision card to column B
	doJSON(t, app, "PUT", base+"/key-decisions/"+decision.Id.String(), token, map[string]any{
		"integration_event_id": eventB.Id,
		"title":                "Pick cell supplier",
	}, fiber.StatusOK, nil)

	var decisions []dto.KeyDecisionResponse
	doJSON(t, app, "GET", base+"/key-decisions?integration_event_id="+eventB.Id.String(), token, nil, fiber.StatusOK, &decisions)
	require.Len(t, decisions, 1)

	// Deleting the event cascades its decisions and their gaps
	doJSON(t, app, "DELETE", base+"/integration-events/"+eventB.Id.String(), token, nil, fiber.StatusOK, nil)

	doJSON(t, app, "GET", base+"/knowledge-gaps", token, nil, fiber.StatusOK, &gaps)
	assert.Empty(t, gaps)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, string(raw))

	if out == nil {
		return
	}

	var env serverutils.BaseResponse[json.RawMessage]
	require.NoError(t, json.Unmarshal(raw, &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

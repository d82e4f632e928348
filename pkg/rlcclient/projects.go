package rlcclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
)

// Register creates an account. No session is established; call Login after.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) error {
	body := map[string]string{
		"email":      email,
		"password":   password,
		"first_name": firstName,
		"last_name":  lastName,
	}
	return c.doUnauthenticated(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out []Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out)
	return out, err
}

func (c *Client) Project(ctx context.Context, projectId uuid.UUID) (*Project, error) {
	var out Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%s", projectId), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProject(ctx context.Context, draft ProjectDraft) (uuid.UUID, error) {
	var out struct {
		Id uuid.UUID `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/projects", draft, &out)
	return out.Id, err
}

func (c *Client) UpdateProject(ctx context.Context, projectId uuid.UUID, draft ProjectDraft) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%s", projectId), draft, nil)
}

func (c *Client) DeleteProject(ctx context.Context, projectId uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%s", projectId), nil, nil)
}

func (c *Client) IntegrationEvents(ctx context.Context, projectId uuid.UUID) ([]IntegrationEvent, error) {
	var out []IntegrationEvent
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%s/integration-events", projectId), nil, &out)
	return out, err
}

func (c *Client) CreateIntegrationEvent(ctx context.Context, projectId uuid.UUID, draft IntegrationEventDraft) (uuid.UUID, error) {
	var out struct {
		Id uuid.UUID `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/projects/%s/integration-events", projectId), draft, &out)
	return out.Id, err
}

func (c *Client) UpdateIntegrationEvent(ctx context.Context, projectId, eventId uuid.UUID, draft IntegrationEventDraft) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%s/integration-events/%s", projectId, eventId), draft, nil)
}

func (c *Client) DeleteIntegrationEvent(ctx context.Context, projectId, eventId uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%s/integration-events/%s", projectId, eventId), nil, nil)
}

// ReorderIntegrationEvents submits the full event ordering for a project.
// The list must name every event exactly once.
func (c *Client) ReorderIntegrationEvents(ctx context.Context, projectId uuid.UUID, eventIds []uuid.UUID) error {
	body := map[string]any{"event_ids": eventIds}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%s/integration-events/reorder", projectId), body, nil)
}

func (c *Client) KeyDecisions(ctx context.Context, projectId uuid.UUID, eventId *uuid.UUID) ([]KeyDecision, error) {
	path := fmt.Sprintf("/api/projects/%s/key-decisions", projectId)
	if eventId != nil {
		path += "?integration_event_id=" + eventId.String()
	}
	var out []KeyDecision
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) CreateKeyDecision(ctx context.Context, projectId uuid.UUID, draft KeyDecisionDraft) (uuid.UUID, error) {
	var out struct {
		Id uuid.UUID `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/projects/%s/key-decisions", projectId), draft, &out)
	return out.Id, err
}

func (c *Client) UpdateKeyDecision(ctx context.Context, projectId, decisionId uuid.UUID, draft KeyDecisionDraft) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%s/key-decisions/%s", projectId, decisionId), draft, nil)
}

func (c *Client) DeleteKeyDecision(ctx context.Context, projectId, decisionId uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%s/key-decisions/%s", projectId, decisionId), nil, nil)
}

// MoveKeyDecision reassigns a decision card to another integration event
// column, re-sending the card's current fields unchanged.
func (c *Client) MoveKeyDecision(ctx context.Context, decision KeyDecision, targetEventId uuid.UUID) error {
	draft := KeyDecisionDraft{
		IntegrationEventId: targetEventId,
		Title:              decision.Title,
		Description:        decision.Description,
		Status:             decision.Status,
		Owner:              decision.Owner,
		DecisionMaker:      decision.DecisionMaker,
		DueDate:            decision.DueDate,
	}
	return c.UpdateKeyDecision(ctx, decision.ProjectId, decision.Id, draft)
}

func (c *Client) KnowledgeGaps(ctx context.Context, projectId uuid.UUID, decisionId *uuid.UUID) ([]KnowledgeGap, error) {
	path := fmt.Sprintf("/api/projects/%s/knowledge-gaps", projectId)
	if decisionId != nil {
		path += "?key_decision_id=" + decisionId.String()
	}
	var out []KnowledgeGap
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) CreateKnowledgeGap(ctx context.Context, projectId uuid.UUID, draft KnowledgeGapDraft) (uuid.UUID, error) {
	var out struct {
		Id uuid.UUID `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/projects/%s/knowledge-gaps", projectId), draft, &out)
	return out.Id, err
}

func (c *Client) UpdateKnowledgeGap(ctx context.Context, projectId, gapId uuid.UUID, draft KnowledgeGapDraft) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%s/knowledge-gaps/%s", projectId, gapId), draft, nil)
}

func (c *Client) DeleteKnowledgeGap(ctx context.Context, projectId, gapId uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%s/knowledge-gaps/%s", projectId, gapId), nil, nil)
}

func (c *Client) ArchiveDocuments(ctx context.Context, projectId uuid.UUID) ([]ArchiveDocument, error) {
	var out []ArchiveDocument
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/archive/projects/%s/documents", projectId), nil, &out)
	return out, err
}

// UploadArchiveDocument sends a project document as multipart form data. The
// server stores the file and indexes it asynchronously.
func (c *Client) UploadArchiveDocument(ctx context.Context, projectId uuid.UUID, fileName string, content io.Reader) (*ArchiveDocument, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	var out ArchiveDocument
	path := fmt.Sprintf("/api/archive/projects/%s/documents", projectId)
	if err := c.doBody(ctx, http.MethodPost, path, &buf, form.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteArchiveDocument(ctx context.Context, projectId, documentId uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/archive/projects/%s/documents/%s", projectId, documentId), nil, nil)
}

func (c *Client) SearchArchive(ctx context.Context, projectId uuid.UUID, query string, limit int) ([]ArchiveSearchHit, error) {
	body := map[string]any{"query": query}
	if limit > 0 {
		body["limit"] = limit
	}
	var out []ArchiveSearchHit
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/archive/projects/%s/search", projectId), body, &out)
	return out, err
}

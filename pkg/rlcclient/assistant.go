package rlcclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// AskCoach sends one question on a conversation. The server creates the
// conversation on first use of an id, so callers pick their own ids.
func (c *Client) AskCoach(ctx context.Context, conversationId, question, modelId string) (*CoachAnswer, error) {
	body := map[string]string{
		"question":        question,
		"conversation_id": conversationId,
	}
	if modelId != "" {
		body["model_id"] = modelId
	}
	var out CoachAnswer
	if err := c.do(ctx, http.MethodPost, "/api/ai-coach/ask", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CoachHistory(ctx context.Context, conversationId string) (*CoachHistory, error) {
	var out CoachHistory
	if err := c.do(ctx, http.MethodGet, "/api/ai-coach/conversations/"+conversationId, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportMessage advances a report-writing session, merging any field values
// the user has filled in so far.
func (c *Client) ReportMessage(ctx context.Context, sessionId, variant, message string, fields map[string]string) (*ReportReply, error) {
	body := map[string]any{
		"session_id": sessionId,
		"variant":    variant,
		"message":    message,
	}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	var out ReportReply
	if err := c.do(ctx, http.MethodPost, "/api/report-ai/message", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReportEvaluate(ctx context.Context, sessionId, variant string, fields map[string]string) (*ReportEvaluation, error) {
	body := map[string]any{
		"session_id": sessionId,
		"variant":    variant,
	}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	var out ReportEvaluation
	if err := c.do(ctx, http.MethodPost, "/api/report-ai/evaluate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReportCheckArchive(ctx context.Context, sessionId string, projectId uuid.UUID, query string) (*ReportSources, error) {
	body := map[string]any{
		"session_id": sessionId,
		"project_id": projectId,
		"query":      query,
	}
	var out ReportSources
	if err := c.do(ctx, http.MethodPost, "/api/report-ai/check-archive", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TokenUsage(ctx context.Context) (*TokenUsage, error) {
	var out TokenUsage
	if err := c.do(ctx, http.MethodGet, "/api/token-usage", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RefreshTokenUsage(ctx context.Context) (*TokenUsage, error) {
	var out TokenUsage
	if err := c.do(ctx, http.MethodPost, "/api/token-usage/refresh-usage", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, subject, message, category string) (uuid.UUID, error) {
	body := map[string]string{
		"subject": subject,
		"message": message,
	}
	if category != "" {
		body["category"] = category
	}
	var out struct {
		Id uuid.UUID `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/feedback/submit", body, &out)
	return out.Id, err
}

// AllTokenUsage lists every user's ledger. Admin roles only.
func (c *Client) AllTokenUsage(ctx context.Context) ([]TokenUsage, error) {
	var out []TokenUsage
	err := c.do(ctx, http.MethodGet, "/api/token-usage/usage-all", nil, &out)
	return out, err
}

// SetTokenLimit overrides one user's daily budget. Admin roles only.
func (c *Client) SetTokenLimit(ctx context.Context, userId uuid.UUID, limit int64) error {
	body := map[string]any{
		"token_limit": limit,
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/token-usage/limit/%s", userId), body, nil)
}

func (c *Client) ManagedUsers(ctx context.Context) ([]ManagedUser, error) {
	var out []ManagedUser
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &out)
	return out, err
}

func (c *Client) CreateManagedUser(ctx context.Context, draft ManagedUserDraft) (*ManagedUser, error) {
	var out ManagedUser
	if err := c.do(ctx, http.MethodPost, "/api/admin/users", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateManagedUser(ctx context.Context, userId uuid.UUID, draft ManagedUserDraft) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%s", userId), draft, nil)
}

func (c *Client) DeleteManagedUser(ctx context.Context, userId uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%s", userId), nil, nil)
}

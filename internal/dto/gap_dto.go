package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContributorList accepts either the form's comma-separated string or a JSON
// array of names, normalizing to a trimmed slice with empty entries dropped.
type ContributorList []string

func (c *ContributorList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*c = SplitContributors(raw)
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if name := strings.TrimSpace(n); name != "" {
			out = append(out, name)
		}
	}
	*c = out
	return nil
}

type CreateKnowledgeGapRequest struct {
	ProjectId     uuid.UUID
	KeyDecisionId uuid.UUID       `json:"key_decision_id" validate:"required"`
	Title         string          `json:"title" validate:"required,min=1"`
	Description   string          `json:"description"`
	Owner         string          `json:"owner"`
	Contributors  ContributorList `json:"contributors"`
	LearningPlan  string          `json:"learning_plan"`
	DueDate       *time.Time      `json:"due_date"`
}

type CreateKnowledgeGapResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateKnowledgeGapRequest struct {
	Id            uuid.UUID
	KeyDecisionId uuid.UUID       `json:"key_decision_id" validate:"required"`
	Title         string          `json:"title" validate:"required,min=1"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	Owner         string          `json:"owner"`
	Contributors  ContributorList `json:"contributors"`
	LearningPlan  string          `json:"learning_plan"`
	DueDate       *time.Time      `json:"due_date"`
}

type KnowledgeGapResponse struct {
	Id            uuid.UUID  `json:"id"`
	ProjectId     uuid.UUID  `json:"project_id"`
	KeyDecisionId uuid.UUID  `json:"key_decision_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Owner         string     `json:"owner"`
	Contributors  []string   `json:"contributors"`
	LearningPlan  string     `json:"learning_plan"`
	DueDate       *time.Time `json:"due_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// SplitContributors normalizes the free-typed contributors field. Names are
// comma separated; surrounding whitespace is dropped and empty segments
// ignored, so "Alice,  Bob, " becomes ["Alice", "Bob"].
func SplitContributors(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

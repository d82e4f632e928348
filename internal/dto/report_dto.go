package dto

import "github.com/google/uuid"

// Report form fields travel as a flat map keyed by field name; the variant
// decides which keys are meaningful.
type ReportMessageRequest struct {
	SessionId string            `json:"session_id" validate:"required"`
	Variant   string            `json:"variant" validate:"required,oneof=knowledge_gap key_decision"`
	Message   string            `json:"message" validate:"required,min=1"`
	Fields    map[string]string `json:"fields"`
}

type ReportMessageResponse struct {
	SessionId string            `json:"session_id"`
	Reply     string            `json:"reply"`
	Fields    map[string]string `json:"fields"`
}

type ReportEvaluateRequest struct {
	SessionId string            `json:"session_id" validate:"required"`
	Variant   string            `json:"variant" validate:"required,oneof=knowledge_gap key_decision"`
	Fields    map[string]string `json:"fields"`
}

type ReportEvaluateResponse struct {
	SessionId     string   `json:"session_id"`
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missing_fields"`
	Assessment    string   `json:"assessment"`
}

type ReportCheckArchiveRequest struct {
	SessionId string    `json:"session_id" validate:"required"`
	ProjectId uuid.UUID `json:"project_id" validate:"required"`
	Query     string    `json:"query" validate:"required,min=1"`
}

type ReportSourceResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	FileName   string    `json:"file_name"`
	Snippet    string    `json:"snippet"`
	Score      float32   `json:"score"`
}

type ReportCheckArchiveResponse struct {
	SessionId string                 `json:"session_id"`
	Sources   []ReportSourceResponse `json:"sources"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReportVariant string

const (
	ReportVariantKnowledgeGap ReportVariant = "knowledge_gap"
	ReportVariantKeyDecision  ReportVariant = "key_decision"
)

// ReportSession is one report-writing assistant session. Fields holds the
// per-variant form values; Sources the archive references retrieved for the
// draft.
type ReportSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SessionId string
	Variant   ReportVariant
	Fields    map[string]string
	Sources   []ReportSource
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type ReportSource struct {
	DocumentId uuid.UUID `json:"document_id"`
	FileName   string    `json:"file_name"`
	Snippet    string    `json:"snippet"`
	Score      float32   `json:"score"`
}

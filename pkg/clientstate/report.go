package clientstate

import "github.com/google/uuid"

// ReportVariant tags which report the writer session is drafting.
type ReportVariant string

const (
	VariantKnowledgeGap ReportVariant = "knowledge_gap"
	VariantKeyDecision  ReportVariant = "key_decision"
)

// BaseFields are shared by both report variants.
type BaseFields struct {
	Title        string `json:"title"`
	Owner        string `json:"owner"`
	ProjectName  string `json:"project_name"`
	Summary      string `json:"summary"`
	Status       string `json:"status"`
	Contributors string `json:"contributors"`
}

// KnowledgeGapFields only exist on knowledge-gap reports.
type KnowledgeGapFields struct {
	LearningObjective string `json:"learning_objective"`
	Approach          string `json:"approach"`
	WhatWeLearned     string `json:"what_we_learned"`
	Recommendations   string `json:"recommendations"`
}

// KeyDecisionFields only exist on key-decision reports.
type KeyDecisionFields struct {
	DecisionStatement string `json:"decision_statement"`
	AlternativesSeen  string `json:"alternatives_seen"`
	Rationale         string `json:"rationale"`
	IntegrationEvent  string `json:"integration_event"`
}

// SourceDocument is a retrieved archive reference attached to the draft.
type SourceDocument struct {
	DocumentId string  `json:"document_id"`
	Title      string  `json:"title"`
	Snippet    string  `json:"snippet"`
	Score      float32 `json:"score"`
}

// ReportState is the persisted report-writer session: the drafting
// conversation plus the form broken out per variant instead of one untyped
// field map.
type ReportState struct {
	SessionId    string             `json:"session_id"`
	Variant      ReportVariant      `json:"variant"`
	Base         BaseFields         `json:"base"`
	KnowledgeGap KnowledgeGapFields `json:"knowledge_gap"`
	KeyDecision  KeyDecisionFields  `json:"key_decision"`
	Messages     []Message          `json:"messages"`
	Sources      []SourceDocument   `json:"sources"`
}

func NewReportState() ReportState {
	return ReportState{
		SessionId: uuid.New().String(),
		Variant:   VariantKnowledgeGap,
	}
}

func (s ReportState) Trivial() bool {
	return len(s.Messages) == 0 &&
		len(s.Sources) == 0 &&
		s.Base == (BaseFields{}) &&
		s.KnowledgeGap == (KnowledgeGapFields{}) &&
		s.KeyDecision == (KeyDecisionFields{})
}

// NewReportStore builds the namespaced container for report sessions.
func NewReportStore(storage Storage, namespace func() string) *NamespacedStore[ReportState] {
	return NewNamespacedStore(storage, ReportStatePrefix, namespace, NewReportState)
}

package rlcclient

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile mirrors the /auth/me payload.
type UserProfile struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	TenantId  *string   `json:"tenant_id,omitempty"`
}

type Project struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	OwnerId     uuid.UUID  `json:"owner_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ProjectDraft struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type IntegrationEvent struct {
	Id          uuid.UUID  `json:"id"`
	ProjectId   uuid.UUID  `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	Sequence    int        `json:"sequence"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type IntegrationEventDraft struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	EventDate   *time.Time `json:"event_date,omitempty"`
}

type KeyDecision struct {
	Id                 uuid.UUID  `json:"id"`
	ProjectId          uuid.UUID  `json:"project_id"`
	IntegrationEventId uuid.UUID  `json:"integration_event_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	Owner              string     `json:"owner"`
	DecisionMaker      string     `json:"decision_maker"`
	DueDate            *time.Time `json:"due_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

type KeyDecisionDraft struct {
	IntegrationEventId uuid.UUID  `json:"integration_event_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Status             string     `json:"status,omitempty"`
	Owner              string     `json:"owner"`
	DecisionMaker      string     `json:"decision_maker"`
	DueDate            *time.Time `json:"due_date,omitempty"`
}

type KnowledgeGap struct {
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

// KnowledgeGapDraft carries contributors as the comma-separated string the
// form field produces; the server splits it.
type KnowledgeGapDraft struct {
	KeyDecisionId uuid.UUID  `json:"key_decision_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status,omitempty"`
	Owner         string     `json:"owner"`
	Contributors  string     `json:"contributors"`
	LearningPlan  string     `json:"learning_plan"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

type ArchiveDocument struct {
	Id        uuid.UUID `json:"id"`
	ProjectId uuid.UUID `json:"project_id"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	Indexed   bool      `json:"indexed"`
	CreatedAt time.Time `json:"created_at"`
}

type ArchiveSearchHit struct {
	DocumentId uuid.UUID `json:"document_id"`
	FileName   string    `json:"file_name"`
	Snippet    string    `json:"snippet"`
	Score      float32   `json:"score"`
}

type CoachAnswer struct {
	Answer         string `json:"answer"`
	ConversationId string `json:"conversation_id"`
	ModelId        string `json:"model_id"`
}

type CoachMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CoachHistory struct {
	ConversationId string         `json:"conversation_id"`
	Messages       []CoachMessage `json:"messages"`
}

type ReportReply struct {
	SessionId string            `json:"session_id"`
	Reply     string            `json:"reply"`
	Fields    map[string]string `json:"fields"`
}

type ReportEvaluation struct {
	SessionId     string   `json:"session_id"`
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missing_fields"`
	Assessment    string   `json:"assessment"`
}

type ReportSource struct {
	DocumentId uuid.UUID `json:"document_id"`
	FileName   string    `json:"file_name"`
	Snippet    string    `json:"snippet"`
	Score      float32   `json:"score"`
}

type ReportSources struct {
	SessionId string         `json:"session_id"`
	Sources   []ReportSource `json:"sources"`
}

type Tenant struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	AdminEmail   string     `json:"admin_email"`
	Status       string     `json:"status"`
	StatusDetail string     `json:"status_detail,omitempty"`
	PlanSlug     string     `json:"plan_slug,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type TenantStatus struct {
	Id           uuid.UUID `json:"id"`
	Status       string    `json:"status"`
	StatusDetail string    `json:"status_detail,omitempty"`
}

type TokenUsage struct {
	UserId           uuid.UUID `json:"user_id"`
	Email            string    `json:"email,omitempty"`
	PromptTokens     int64     `json:"prompt_tokens"`
	CompletionTokens int64     `json:"completion_tokens"`
	TotalTokens      int64     `json:"total_tokens"`
	TokenLimit       int64     `json:"token_limit"`
	Exceeded         bool      `json:"exceeded"`
	RefreshedAt      time.Time `json:"refreshed_at"`
}

type ManagedUser struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	TenantId  *string   `json:"tenant_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ManagedUserDraft struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
}

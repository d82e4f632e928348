package unitofwork

import (
	"context"

	"rlc-hub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PasswordResetTokenRepository() contract.PasswordResetTokenRepository

	ProjectRepository() contract.ProjectRepository
	IntegrationEventRepository() contract.IntegrationEventRepository
	KeyDecisionRepository() contract.KeyDecisionRepository
	KnowledgeGapRepository() contract.KnowledgeGapRepository

	ArchiveDocumentRepository() contract.ArchiveDocumentRepository
	DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository

	CoachConversationRepository() contract.CoachConversationRepository
	CoachMessageRepository() contract.CoachMessageRepository
	ReportSessionRepository() contract.ReportSessionRepository

	TenantRepository() contract.TenantRepository
	TokenUsageRepository() contract.TokenUsageRepository
	FeedbackRepository() contract.FeedbackRepository

	SubscriptionPlanRepository() contract.SubscriptionPlanRepository
	TenantSubscriptionRepository() contract.TenantSubscriptionRepository
}

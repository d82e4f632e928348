package unitofwork

import (
	"context"
	"fmt"

	"rlc-hub-be/internal/repository/contract"
	"rlc-hub-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PasswordResetTokenRepository() contract.PasswordResetTokenRepository {
	return implementation.NewPasswordResetTokenRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProjectRepository() contract.ProjectRepository {
	return implementation.NewProjectRepository(u.getDB())
}

func (u *UnitOfWorkImpl) IntegrationEventRepository() contract.IntegrationEventRepository {
	return implementation.NewIntegrationEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) KeyDecisionRepository() contract.KeyDecisionRepository {
	return implementation.NewKeyDecisionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) KnowledgeGapRepository() contract.KnowledgeGapRepository {
	return implementation.NewKnowledgeGapRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ArchiveDocumentRepository() contract.ArchiveDocumentRepository {
	return implementation.NewArchiveDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository {
	return implementation.NewDocumentEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CoachConversationRepository() contract.CoachConversationRepository {
	return implementation.NewCoachConversationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CoachMessageRepository() contract.CoachMessageRepository {
	return implementation.NewCoachMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReportSessionRepository() contract.ReportSessionRepository {
	return implementation.NewReportSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TenantRepository() contract.TenantRepository {
	return implementation.NewTenantRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TokenUsageRepository() contract.TokenUsageRepository {
	return implementation.NewTokenUsageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeedbackRepository() contract.FeedbackRepository {
	return implementation.NewFeedbackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubscriptionPlanRepository() contract.SubscriptionPlanRepository {
	return implementation.NewSubscriptionPlanRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TenantSubscriptionRepository() contract.TenantSubscriptionRepository {
	return implementation.NewTenantSubscriptionRepository(u.getDB())
}

package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReportSessionRepository interface {
	Create(ctx context.Context, session *entity.ReportSession) error
	Update(ctx context.Context, session *entity.ReportSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReportSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReportSession, error)
}

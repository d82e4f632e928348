package service

import (
	"context"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"
	"rlc-hub-be/pkg/llm"

	"github.com/google/uuid"
)

type IUsageService interface {
	// Record adds one completion's token spend to the user's ledger.
	Record(ctx context.Context, userId uuid.UUID, usage llm.Usage) error
	// CheckLimit returns an error when the user has exhausted their budget.
	CheckLimit(ctx context.Context, userId uuid.UUID) error
	Show(ctx context.Context, userId uuid.UUID) (*dto.TokenUsageResponse, error)
	ListAll(ctx context.Context) ([]*dto.TokenUsageResponse, error)
	Refresh(ctx context.Context, userId uuid.UUID) (*dto.TokenUsageResponse, error)
	UpdateLimit(ctx context.Context, req *dto.UpdateTokenLimitRequest) error
}

type usageService struct {
	uowFactory   unitofwork.RepositoryFactory
	defaultLimit int64
}

func NewUsageService(uowFactory unitofwork.RepositoryFactory, defaultLimit int64) IUsageService {
	return &usageService{
		uowFactory:   uowFactory,
		defaultLimit: defaultLimit,
	}
}

// usagePeriod is the rolling window after which counters reset.
const usagePeriod = 24 * time.Hour

func (s *usageService) loadOrSeed(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.TokenUsage, error) {
	usage, err := uow.TokenUsageRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		usage = &entity.TokenUsage{
			Id:          uuid.New(),
			UserId:      userId,
			TokenLimit:  s.defaultLimit,
			PeriodStart: time.Now(),
			RefreshedAt: time.Now(),
		}
		if err := uow.TokenUsageRepository().Create(ctx, usage); err != nil {
			return nil, err
		}
		return usage, nil
	}

	// Lazy rollover: counters reset the first time they are touched after
	// the period elapses
	if time.Since(usage.PeriodStart) >= usagePeriod {
		usage.PromptTokens = 0
		usage.CompletionTokens = 0
		usage.PeriodStart = time.Now()
		usage.RefreshedAt = time.Now()
		if err := uow.TokenUsageRepository().Update(ctx, usage); err != nil {
			return nil, err
		}
	}
	return usage, nil
}

func toUsageResponse(u *entity.TokenUsage, email string) *dto.TokenUsageResponse {
	return &dto.TokenUsageResponse{
		UserId:           u.UserId,
		Email:            email,
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.Total(),
		TokenLimit:       u.TokenLimit,
		Exceeded:         u.Exceeded(),
		RefreshedAt:      u.RefreshedAt,
	}
}

func (s *usageService) Record(ctx context.Context, userId uuid.UUID, usage llm.Usage) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ledger, err := s.loadOrSeed(ctx, uow, userId)
	if err != nil {
		return err
	}

	ledger.PromptTokens += int64(usage.PromptTokens)
	ledger.CompletionTokens += int64(usage.CompletionTokens)
	ledger.RefreshedAt = time.Now()

	return uow.TokenUsageRepository().Update(ctx, ledger)
}

func (s *usageService) CheckLimit(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ledger, err := s.loadOrSeed(ctx, uow, userId)
	if err != nil {
		return err
	}
	if ledger.Exceeded() {
		return serverutils.NewApiError(429, "daily token limit reached")
	}
	return nil
}

func (s *usageService) Show(ctx context.Context, userId uuid.UUID) (*dto.TokenUsageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ledger, err := s.loadOrSeed(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return toUsageResponse(ledger, ""), nil
}

func (s *usageService) ListAll(ctx context.Context) ([]*dto.TokenUsageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ledgers, err := uow.TokenUsageRepository().FindAll(ctx, specification.OrderBy{Field: "refreshed_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TokenUsageResponse, 0, len(ledgers))
	for _, l := range ledgers {
		email := ""
		if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: l.UserId}); err == nil && user != nil {
			email = user.Email
		}
		res = append(res, toUsageResponse(l, email))
	}
	return res, nil
}

func (s *usageService) Refresh(ctx context.Context, userId uuid.UUID) (*dto.TokenUsageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ledger, err := s.loadOrSeed(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	ledger.PromptTokens = 0
	ledger.CompletionTokens = 0
	ledger.PeriodStart = time.Now()
	ledger.RefreshedAt = time.Now()
	if err := uow.TokenUsageRepository().Update(ctx, ledger); err != nil {
		return nil, err
	}
	return toUsageResponse(ledger, ""), nil
}

func (s *usageService) UpdateLimit(ctx context.Context, req *dto.UpdateTokenLimitRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ledger, err := s.loadOrSeed(ctx, uow, req.UserId)
	if err != nil {
		return err
	}

	ledger.TokenLimit = req.TokenLimit
	ledger.RefreshedAt = time.Now()
	return uow.TokenUsageRepository().Update(ctx, ledger)
}

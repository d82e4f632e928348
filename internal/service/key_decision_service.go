package service

import (
	"context"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IKeyDecisionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKeyDecisionRequest) (*dto.CreateKeyDecisionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateKeyDecisionRequest) error
	Delete(ctx context.Context, userId uuid.UUID, decisionId uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, eventId *uuid.UUID) ([]*dto.KeyDecisionResponse, error)
}

type keyDecisionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewKeyDecisionService(uowFactory unitofwork.RepositoryFactory) IKeyDecisionService {
	return &keyDecisionService{
		uowFactory: uowFactory,
	}
}

func toKeyDecisionResponse(d *entity.KeyDecision) *dto.KeyDecisionResponse {
	return &dto.KeyDecisionResponse{
		Id:                 d.Id,
		ProjectId:          d.ProjectId,
		IntegrationEventId: d.IntegrationEventId,
		Title:              d.Title,
		Description:        d.Description,
		Status:             d.Status,
		Owner:              d.Owner,
		DecisionMaker:      d.DecisionMaker,
		DueDate:            d.DueDate,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// requireEventInProject rejects any attempt to attach a decision to an
// integration event of another project.
func requireEventInProject(ctx context.Context, uow unitofwork.UnitOfWork, projectId, eventId uuid.UUID) error {
	event, err := uow.IntegrationEventRepository().FindOne(ctx, specification.ByID{ID: eventId})
	if err != nil {
		return err
	}
	if event == nil {
		return serverutils.NotFound("integration event not found")
	}
	if event.ProjectId != projectId {
		return serverutils.BadRequest("integration event belongs to a different project")
	}
	return nil
}

func (s *keyDecisionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKeyDecisionRequest) (*dto.CreateKeyDecisionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}
	if err := requireEventInProject(ctx, uow, req.ProjectId, req.IntegrationEventId); err != nil {
		return nil, err
	}

	decision := &entity.KeyDecision{
		Id:                 uuid.New(),
		ProjectId:          req.ProjectId,
		IntegrationEventId: req.IntegrationEventId,
		Title:              req.Title,
		Description:        req.Description,
		Status:             "open",
		Owner:              req.Owner,
		DecisionMaker:      req.DecisionMaker,
		DueDate:            req.DueDate,
		CreatedAt:          time.Now(),
	}

	if err := uow.KeyDecisionRepository().Create(ctx, decision); err != nil {
		return nil, err
	}

	return &dto.CreateKeyDecisionResponse{Id: decision.Id}, nil
}

func (s *keyDecisionService) findOwnedDecision(ctx context.Context, uow unitofwork.UnitOfWork, userId, decisionId uuid.UUID) (*entity.KeyDecision, error) {
	decision, err := uow.KeyDecisionRepository().FindOne(ctx, specification.ByID{ID: decisionId})
	if err != nil {
		return nil, err
	}
	if decision == nil {
		return nil, serverutils.NotFound("key decision not found")
	}
	if _, err := findOwnedProject(ctx, uow, userId, decision.ProjectId); err != nil {
		return nil, err
	}
	return decision, nil
}

// Update also handles the board move: changing IntegrationEventId relocates
// the decision to another column, provided the target column sits in the
// same project.
func (s *keyDecisionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateKeyDecisionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	decision, err := s.findOwnedDecision(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	if req.IntegrationEventId != decision.IntegrationEventId {
		if err := requireEventInProject(ctx, uow, decision.ProjectId, req.IntegrationEventId); err != nil {
			return err
		}
		decision.IntegrationEventId = req.IntegrationEventId
	}

	decision.Title = req.Title
	decision.Description = req.Description
	if req.Status != "" {
		decision.Status = req.Status
	}
	decision.Owner = req.Owner
	decision.DecisionMaker = req.DecisionMaker
	decision.DueDate = req.DueDate

	return uow.KeyDecisionRepository().Update(ctx, decision)
}

func (s *keyDecisionService) Delete(ctx context.Context, userId uuid.UUID, decisionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	decision, err := s.findOwnedDecision(ctx, uow, userId, decisionId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.KnowledgeGapRepository().DeleteAllByKeyDecisionId(ctx, decision.Id); err != nil {
		return err
	}
	if err := uow.KeyDecisionRepository().Delete(ctx, decision.Id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *keyDecisionService) List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, eventId *uuid.UUID) ([]*dto.KeyDecisionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if eventId != nil {
		specs = append(specs, specification.ByIntegrationEventID{IntegrationEventID: *eventId})
	}

	decisions, err := uow.KeyDecisionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.KeyDecisionResponse, len(decisions))
	for i, d := range decisions {
		res[i] = toKeyDecisionResponse(d)
	}
	return res, nil
}

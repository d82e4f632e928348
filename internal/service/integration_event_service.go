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

type IIntegrationEventService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIntegrationEventRequest) (*dto.CreateIntegrationEventResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIntegrationEventRequest) error
	Delete(ctx context.Context, userId uuid.UUID, eventId uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.IntegrationEventResponse, error)
	Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderIntegrationEventsRequest) error
}

type integrationEventService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewIntegrationEventService(uowFactory unitofwork.RepositoryFactory) IIntegrationEventService {
	return &integrationEventService{
		uowFactory: uowFactory,
	}
}

func toIntegrationEventResponse(e *entity.IntegrationEvent) *dto.IntegrationEventResponse {
	return &dto.IntegrationEventResponse{
		Id:          e.Id,
		ProjectId:   e.ProjectId,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   e.EventDate,
		Sequence:    e.Sequence,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (s *integrationEventService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIntegrationEventRequest) (*dto.CreateIntegrationEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}

	// New columns append at the end of the board
	count, err := uow.IntegrationEventRepository().Count(ctx, specification.ByProjectID{ProjectID: req.ProjectId})
	if err != nil {
		return nil, err
	}

	event := &entity.IntegrationEvent{
		Id:          uuid.New(),
		ProjectId:   req.ProjectId,
		Name:        req.Name,
		Description: req.Description,
		EventDate:   req.EventDate,
		Sequence:    int(count),
		CreatedAt:   time.Now(),
	}

	if err := uow.IntegrationEventRepository().Create(ctx, event); err != nil {
		return nil, err
	}

	return &dto.CreateIntegrationEventResponse{Id: event.Id}, nil
}

func (s *integrationEventService) findOwnedEvent(ctx context.Context, uow unitofwork.UnitOfWork, userId, eventId uuid.UUID) (*entity.IntegrationEvent, error) {
	event, err := uow.IntegrationEventRepository().FindOne(ctx, specification.ByID{ID: eventId})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, serverutils.NotFound("integration event not found")
	}
	if _, err := findOwnedProject(ctx, uow, userId, event.ProjectId); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *integrationEventService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIntegrationEventRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := s.findOwnedEvent(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	event.Name = req.Name
	event.Description = req.Description
	event.EventDate = req.EventDate

	return uow.IntegrationEventRepository().Update(ctx, event)
}

// Delete cascades to the key decisions in the column and their knowledge
// gaps.
func (s *integrationEventService) Delete(ctx context.Context, userId uuid.UUID, eventId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := s.findOwnedEvent(ctx, uow, userId, eventId)
	if err != nil {
		return err
	}

	decisions, err := uow.KeyDecisionRepository().FindAll(ctx, specification.ByIntegrationEventID{IntegrationEventID: event.Id})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, d := range decisions {
		if err := uow.KnowledgeGapRepository().DeleteAllByKeyDecisionId(ctx, d.Id); err != nil {
			return err
		}
	}
	if err := uow.KeyDecisionRepository().DeleteAllByIntegrationEventId(ctx, event.Id); err != nil {
		return err
	}
	if err := uow.IntegrationEventRepository().Delete(ctx, event.Id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *integrationEventService) List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.IntegrationEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	events, err := uow.IntegrationEventRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.BySequence{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.IntegrationEventResponse, len(events))
	for i, e := range events {
		res[i] = toIntegrationEventResponse(e)
	}
	return res, nil
}

// Reorder rewrites the sequence column from the submitted ordering. The id
// list must cover the project's events exactly.
func (s *integrationEventService) Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderIntegrationEventsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, req.ProjectId); err != nil {
		return err
	}

	events, err := uow.IntegrationEventRepository().FindAll(ctx, specification.ByProjectID{ProjectID: req.ProjectId})
	if err != nil {
		return err
	}

	if len(events) != len(req.EventIds) {
		return serverutils.BadRequest("reorder list must contain every integration event exactly once")
	}
	byId := make(map[uuid.UUID]*entity.IntegrationEvent, len(events))
	for _, e := range events {
		byId[e.Id] = e
	}
	seen := make(map[uuid.UUID]bool, len(req.EventIds))
	for _, id := range req.EventIds {
		if _, ok := byId[id]; !ok {
			return serverutils.BadRequest("reorder list references an unknown integration event")
		}
		if seen[id] {
			return serverutils.BadRequest("reorder list contains a duplicate integration event")
		}
		seen[id] = true
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for i, id := range req.EventIds {
		event := byId[id]
		if event.Sequence == i {
			continue
		}
		event.Sequence = i
		if err := uow.IntegrationEventRepository().Update(ctx, event); err != nil {
			return err
		}
	}

	return uow.Commit()
}

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

type IKnowledgeGapService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeGapRequest) (*dto.CreateKnowledgeGapResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateKnowledgeGapRequest) error
	Delete(ctx context.Context, userId uuid.UUID, gapId uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, decisionId *uuid.UUID) ([]*dto.KnowledgeGapResponse, error)
}

type knowledgeGapService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewKnowledgeGapService(uowFactory unitofwork.RepositoryFactory) IKnowledgeGapService {
	return &knowledgeGapService{
		uowFactory: uowFactory,
	}
}

func toKnowledgeGapResponse(g *entity.KnowledgeGap) *dto.KnowledgeGapResponse {
	contributors := g.Contributors
	if contributors == nil {
		contributors = []string{}
	}
	return &dto.KnowledgeGapResponse{
		Id:            g.Id,
		ProjectId:     g.ProjectId,
		KeyDecisionId: g.KeyDecisionId,
		Title:         g.Title,
		Description:   g.Description,
		Status:        g.Status,
		Owner:         g.Owner,
		Contributors:  contributors,
		LearningPlan:  g.LearningPlan,
		DueDate:       g.DueDate,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func requireDecisionInProject(ctx context.Context, uow unitofwork.UnitOfWork, projectId, decisionId uuid.UUID) error {
	decision, err := uow.KeyDecisionRepository().FindOne(ctx, specification.ByID{ID: decisionId})
	if err != nil {
		return err
	}
	if decision == nil {
		return serverutils.NotFound("key decision not found")
	}
	if decision.ProjectId != projectId {
		return serverutils.BadRequest("key decision belongs to a different project")
	}
	return nil
}

func (s *knowledgeGapService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeGapRequest) (*dto.CreateKnowledgeGapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}
	if err := requireDecisionInProject(ctx, uow, req.ProjectId, req.KeyDecisionId); err != nil {
		return nil, err
	}

	gap := &entity.KnowledgeGap{
		Id:            uuid.New(),
		ProjectId:     req.ProjectId,
		KeyDecisionId: req.KeyDecisionId,
		Title:         req.Title,
		Description:   req.Description,
		Status:        "open",
		Owner:         req.Owner,
		Contributors:  req.Contributors,
		LearningPlan:  req.LearningPlan,
		DueDate:       req.DueDate,
		CreatedAt:     time.Now(),
	}

	if err := uow.KnowledgeGapRepository().Create(ctx, gap); err != nil {
		return nil, err
	}

	return &dto.CreateKnowledgeGapResponse{Id: gap.Id}, nil
}

func (s *knowledgeGapService) findOwnedGap(ctx context.Context, uow unitofwork.UnitOfWork, userId, gapId uuid.UUID) (*entity.KnowledgeGap, error) {
	gap, err := uow.KnowledgeGapRepository().FindOne(ctx, specification.ByID{ID: gapId})
	if err != nil {
		return nil, err
	}
	if gap == nil {
		return nil, serverutils.NotFound("knowledge gap not found")
	}
	if _, err := findOwnedProject(ctx, uow, userId, gap.ProjectId); err != nil {
		return nil, err
	}
	return gap, nil
}

func (s *knowledgeGapService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateKnowledgeGapRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	gap, err := s.findOwnedGap(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	if req.KeyDecisionId != gap.KeyDecisionId {
		if err := requireDecisionInProject(ctx, uow, gap.ProjectId, req.KeyDecisionId); err != nil {
			return err
		}
		gap.KeyDecisionId = req.KeyDecisionId
	}

	gap.Title = req.Title
	gap.Description = req.Description
	if req.Status != "" {
		gap.Status = req.Status
	}
	gap.Owner = req.Owner
	gap.Contributors = req.Contributors
	gap.LearningPlan = req.LearningPlan
	gap.DueDate = req.DueDate

	return uow.KnowledgeGapRepository().Update(ctx, gap)
}

func (s *knowledgeGapService) Delete(ctx context.Context, userId uuid.UUID, gapId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	gap, err := s.findOwnedGap(ctx, uow, userId, gapId)
	if err != nil {
		return err
	}

	return uow.KnowledgeGapRepository().Delete(ctx, gap.Id)
}

func (s *knowledgeGapService) List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, decisionId *uuid.UUID) ([]*dto.KnowledgeGapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if decisionId != nil {
		specs = append(specs, specification.ByKeyDecisionID{KeyDecisionID: *decisionId})
	}

	gaps, err := uow.KnowledgeGapRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.KnowledgeGapResponse, len(gaps))
	for i, g := range gaps {
		res[i] = toKnowledgeGapResponse(g)
	}
	return res, nil
}

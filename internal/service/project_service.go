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

type IProjectService interface {
	Create(ctx context.Context, userId uuid.UUID, tenantId *uuid.UUID, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) error
	Delete(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) error
	Show(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.ProjectResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error)
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
	}
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		OwnerId:     p.OwnerId,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// findOwnedProject loads the project and enforces ownership in one place.
func findOwnedProject(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.Project, error) {
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NotFound("project not found")
	}
	if project.OwnerId != userId {
		return nil, serverutils.Forbidden("project belongs to another user")
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, tenantId *uuid.UUID, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project := &entity.Project{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      "active",
		OwnerId:     userId,
		TenantId:    tenantId,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	return &dto.CreateProjectResponse{Id: project.Id}, nil
}

func (s *projectService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := findOwnedProject(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	project.Name = req.Name
	project.Description = req.Description
	if req.Status != "" {
		project.Status = req.Status
	}
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate

	return uow.ProjectRepository().Update(ctx, project)
}

// Delete removes the project with everything hanging off it: integration
// events, key decisions, knowledge gaps, and archive documents. One
// transaction so a half-deleted board can never be observed.
func (s *projectService) Delete(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, projectId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.KnowledgeGapRepository().DeleteAllByProjectId(ctx, projectId); err != nil {
		return err
	}
	if err := uow.KeyDecisionRepository().DeleteAllByProjectId(ctx, projectId); err != nil {
		return err
	}
	if err := uow.IntegrationEventRepository().DeleteAllByProjectId(ctx, projectId); err != nil {
		return err
	}
	if err := uow.ArchiveDocumentRepository().DeleteAllByProjectId(ctx, projectId); err != nil {
		return err
	}
	if err := uow.ProjectRepository().Delete(ctx, projectId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *projectService) Show(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := findOwnedProject(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.ProjectOwnedBy{OwnerID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = toProjectResponse(p)
	}
	return res, nil
}

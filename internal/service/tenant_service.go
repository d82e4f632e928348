package service

import (
	"context"
	"fmt"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/logger"
	"rlc-hub-be/internal/pkg/mailer"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"

	"rlc-hub-be/pkg/events"
	pktNats "rlc-hub-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ITenantService interface {
	Create(ctx context.Context, req *dto.CreateTenantRequest) (*dto.CreateTenantResponse, error)
	List(ctx context.Context) ([]*dto.TenantResponse, error)
	Status(ctx context.Context, tenantId uuid.UUID) (*dto.TenantStatusResponse, error)
	Retry(ctx context.Context, tenantId uuid.UUID) (*dto.TenantStatusResponse, error)
}

type tenantService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
	clientURL      string
}

func NewTenantService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	clientURL string,
) ITenantService {
	return &tenantService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
		clientURL:      clientURL,
	}
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		Id:           t.Id,
		Name:         t.Name,
		Slug:         t.Slug,
		AdminEmail:   t.AdminEmail,
		Status:       string(t.Status),
		StatusDetail: t.StatusDetail,
		PlanSlug:     t.PlanSlug,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (s *tenantService) Create(ctx context.Context, req *dto.CreateTenantRequest) (*dto.CreateTenantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.TenantRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if existing != nil {
		return nil, serverutils.BadRequest("tenant slug already taken")
	}

	tenant := &entity.Tenant{
		Id:         uuid.New(),
		Name:       req.Name,
		Slug:       req.Slug,
		AdminEmail: req.AdminEmail,
		Status:     entity.TenantStatusPending,
		PlanSlug:   req.PlanSlug,
		CreatedAt:  time.Now(),
	}
	if err := uow.TenantRepository().Create(ctx, tenant); err != nil {
		return nil, err
	}

	// Provisioning runs detached from the request so the client can poll
	// /tenants/:id/status while the workspace is being set up
	go s.provision(tenant.Id)

	return &dto.CreateTenantResponse{Id: tenant.Id, Status: string(tenant.Status)}, nil
}

// provision creates the tenant admin account and flips the tenant to ready,
// or parks it in failed with a detail for the retry endpoint.
func (s *tenantService) provision(tenantId uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: tenantId})
	if err != nil || tenant == nil {
		s.logger.Error("tenant", "provisioner could not load tenant", map[string]interface{}{
			"tenant_id": tenantId.String(),
		})
		return
	}

	tenant.Status = entity.TenantStatusProvisioning
	if err := uow.TenantRepository().Update(ctx, tenant); err != nil {
		s.logger.Error("tenant", "failed to mark tenant provisioning", map[string]interface{}{
			"tenant_id": tenantId.String(),
			"error":     err.Error(),
		})
		return
	}

	if err := s.setupWorkspace(ctx, uow, tenant); err != nil {
		tenant.Status = entity.TenantStatusFailed
		tenant.StatusDetail = err.Error()
		_ = uow.TenantRepository().Update(ctx, tenant)
		s.publishTenantEvent(ctx, events.TypeTenantFailed, tenant)
		return
	}

	tenant.Status = entity.TenantStatusReady
	tenant.StatusDetail = ""
	if err := uow.TenantRepository().Update(ctx, tenant); err != nil {
		s.logger.Error("tenant", "failed to mark tenant ready", map[string]interface{}{
			"tenant_id": tenantId.String(),
			"error":     err.Error(),
		})
		return
	}

	s.publishTenantEvent(ctx, events.TypeTenantProvisioned, tenant)

	go func() {
		if err := s.emailService.SendTenantReady(tenant.AdminEmail, tenant.Name, s.clientURL); err != nil {
			fmt.Printf("Error sending tenant-ready email: %v\n", err)
		}
	}()
}

func (s *tenantService) setupWorkspace(ctx context.Context, uow unitofwork.UnitOfWork, tenant *entity.Tenant) error {
	adminUser, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: tenant.AdminEmail})
	if err != nil {
		return fmt.Errorf("failed to look up tenant admin: %w", err)
	}

	if adminUser == nil {
		// First-login password is delivered out of band via the reset flow;
		// seed an unguessable one
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		adminUser = &entity.User{
			Id:           uuid.New(),
			Email:        tenant.AdminEmail,
			FirstName:    tenant.Name,
			LastName:     "Admin",
			PasswordHash: string(hash),
			Role:         entity.UserRoleTenantAdmin,
			Status:       entity.UserStatusActive,
			TenantId:     &tenant.Id,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, adminUser); err != nil {
			return fmt.Errorf("failed to create tenant admin: %w", err)
		}
		return nil
	}

	if adminUser.TenantId != nil && *adminUser.TenantId != tenant.Id {
		return fmt.Errorf("admin email already belongs to another tenant")
	}

	adminUser.Role = entity.UserRoleTenantAdmin
	adminUser.TenantId = &tenant.Id
	adminUser.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, adminUser); err != nil {
		return fmt.Errorf("failed to attach tenant admin: %w", err)
	}
	return nil
}

func (s *tenantService) publishTenantEvent(ctx context.Context, eventType string, tenant *entity.Tenant) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"tenant_id": tenant.Id,
			"slug":      tenant.Slug,
			"status":    string(tenant.Status),
			"detail":    tenant.StatusDetail,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (s *tenantService) List(ctx context.Context) ([]*dto.TenantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenants, err := uow.TenantRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TenantResponse, len(tenants))
	for i, t := range tenants {
		res[i] = toTenantResponse(t)
	}
	return res, nil
}

func (s *tenantService) Status(ctx context.Context, tenantId uuid.UUID) (*dto.TenantStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: tenantId})
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, serverutils.NotFound("tenant not found")
	}

	return &dto.TenantStatusResponse{
		Id:           tenant.Id,
		Status:       string(tenant.Status),
		StatusDetail: tenant.StatusDetail,
	}, nil
}

// Retry re-runs provisioning for a failed tenant.
func (s *tenantService) Retry(ctx context.Context, tenantId uuid.UUID) (*dto.TenantStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: tenantId})
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, serverutils.NotFound("tenant not found")
	}
	if tenant.Status != entity.TenantStatusFailed {
		return nil, serverutils.BadRequest("only failed tenants can be retried")
	}

	tenant.Status = entity.TenantStatusPending
	tenant.StatusDetail = ""
	if err := uow.TenantRepository().Update(ctx, tenant); err != nil {
		return nil, err
	}

	go s.provision(tenant.Id)

	return &dto.TenantStatusResponse{
		Id:     tenant.Id,
		Status: string(tenant.Status),
	}, nil
}

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
	"golang.org/x/crypto/bcrypt"
)

// IAdminUserService manages the accounts a tenant admin can see. A tenant
// admin is scoped to their own tenant; a super admin passes a nil tenant id
// and sees everyone.
type IAdminUserService interface {
	Create(ctx context.Context, tenantId *uuid.UUID, req *dto.CreateManagedUserRequest) (*dto.ManagedUserResponse, error)
	Update(ctx context.Context, tenantId *uuid.UUID, req *dto.UpdateManagedUserRequest) error
	Delete(ctx context.Context, tenantId *uuid.UUID, userId uuid.UUID) error
	List(ctx context.Context, tenantId *uuid.UUID) ([]*dto.ManagedUserResponse, error)
}

type adminUserService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminUserService(uowFactory unitofwork.RepositoryFactory) IAdminUserService {
	return &adminUserService{
		uowFactory: uowFactory,
	}
}

func toManagedUserResponse(u *entity.User) *dto.ManagedUserResponse {
	var tenantId *string
	if u.TenantId != nil {
		s := u.TenantId.String()
		tenantId = &s
	}
	return &dto.ManagedUserResponse{
		Id:        u.Id,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		Status:    string(u.Status),
		TenantId:  tenantId,
		CreatedAt: u.CreatedAt,
	}
}

func sameTenant(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (s *adminUserService) Create(ctx context.Context, tenantId *uuid.UUID, req *dto.CreateManagedUserRequest) (*dto.ManagedUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, serverutils.BadRequest("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := entity.UserRoleUser
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         role,
		Status:       entity.UserStatusActive,
		TenantId:     tenantId,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return toManagedUserResponse(user), nil
}

func (s *adminUserService) findManagedUser(ctx context.Context, uow unitofwork.UnitOfWork, tenantId *uuid.UUID, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("user not found")
	}
	if tenantId != nil && !sameTenant(user.TenantId, tenantId) {
		return nil, serverutils.Forbidden("user belongs to another tenant")
	}
	return user, nil
}

func (s *adminUserService) Update(ctx context.Context, tenantId *uuid.UUID, req *dto.UpdateManagedUserRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findManagedUser(ctx, uow, tenantId, req.Id)
	if err != nil {
		return err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.Role != "" {
		user.Role = entity.UserRole(req.Role)
	}
	if req.Status != "" {
		user.Status = entity.UserStatus(req.Status)
	}
	user.UpdatedAt = time.Now()

	return uow.UserRepository().Update(ctx, user)
}

func (s *adminUserService) Delete(ctx context.Context, tenantId *uuid.UUID, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findManagedUser(ctx, uow, tenantId, userId)
	if err != nil {
		return err
	}
	if user.Role == entity.UserRoleSuperAdmin {
		return serverutils.Forbidden("super admin accounts cannot be deleted here")
	}

	return uow.UserRepository().Delete(ctx, user.Id)
}

func (s *adminUserService) List(ctx context.Context, tenantId *uuid.UUID) ([]*dto.ManagedUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if tenantId != nil {
		specs = append(specs, specification.ByTenantID{TenantID: *tenantId})
	}

	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ManagedUserResponse, len(users))
	for i, u := range users {
		res[i] = toManagedUserResponse(u)
	}
	return res, nil
}

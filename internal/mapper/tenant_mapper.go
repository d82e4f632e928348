package mapper

import (
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/model"
)

type TenantMapper struct{}

func NewTenantMapper() *TenantMapper {
	return &TenantMapper{}
}

func (m *TenantMapper) ToEntity(t *model.Tenant) *entity.Tenant {
	if t == nil {
		return nil
	}
	return &entity.Tenant{
		Id:           t.Id,
		Name:         t.Name,
		Slug:         t.Slug,
		AdminEmail:   t.AdminEmail,
		Status:       entity.TenantStatus(t.Status),
		StatusDetail: t.StatusDetail,
		PlanSlug:     t.PlanSlug,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAtPtr(t.UpdatedAt),
	}
}

func (m *TenantMapper) ToModel(t *entity.Tenant) *model.Tenant {
	if t == nil {
		return nil
	}
	return &model.Tenant{
		Id:           t.Id,
		Name:         t.Name,
		Slug:         t.Slug,
		AdminEmail:   t.AdminEmail,
		Status:       string(t.Status),
		StatusDetail: t.StatusDetail,
		PlanSlug:     t.PlanSlug,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAtValue(t.UpdatedAt),
	}
}

func (m *TenantMapper) ToEntities(tenants []*model.Tenant) []*entity.Tenant {
	entities := make([]*entity.Tenant, len(tenants))
	for i, t := range tenants {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

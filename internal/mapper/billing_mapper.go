package mapper

import (
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/model"
)

type BillingMapper struct{}

func NewBillingMapper() *BillingMapper {
	return &BillingMapper{}
}

func (m *BillingMapper) PlanToEntity(p *model.SubscriptionPlan) *entity.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &entity.SubscriptionPlan{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Price:         p.Price,
		BillingPeriod: p.BillingPeriod,
		TokenLimit:    p.TokenLimit,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *BillingMapper) PlanToModel(p *entity.SubscriptionPlan) *model.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &model.SubscriptionPlan{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Price:         p.Price,
		BillingPeriod: p.BillingPeriod,
		TokenLimit:    p.TokenLimit,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *BillingMapper) PlansToEntities(plans []*model.SubscriptionPlan) []*entity.SubscriptionPlan {
	entities := make([]*entity.SubscriptionPlan, len(plans))
	for i, p := range plans {
		entities[i] = m.PlanToEntity(p)
	}
	return entities
}

func (m *BillingMapper) SubscriptionToEntity(s *model.TenantSubscription) *entity.TenantSubscription {
	if s == nil {
		return nil
	}
	return &entity.TenantSubscription{
		Id:            s.Id,
		TenantId:      s.TenantId,
		PlanId:        s.PlanId,
		OrderId:       s.OrderId,
		PaymentStatus: entity.PaymentStatus(s.PaymentStatus),
		SnapToken:     s.SnapToken,
		RedirectURL:   s.RedirectURL,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAtPtr(s.UpdatedAt),
	}
}

func (m *BillingMapper) SubscriptionToModel(s *entity.TenantSubscription) *model.TenantSubscription {
	if s == nil {
		return nil
	}
	return &model.TenantSubscription{
		Id:            s.Id,
		TenantId:      s.TenantId,
		PlanId:        s.PlanId,
		OrderId:       s.OrderId,
		PaymentStatus: string(s.PaymentStatus),
		SnapToken:     s.SnapToken,
		RedirectURL:   s.RedirectURL,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAtValue(s.UpdatedAt),
	}
}

func (m *BillingMapper) SubscriptionsToEntities(subs []*model.TenantSubscription) []*entity.TenantSubscription {
	entities := make([]*entity.TenantSubscription, len(subs))
	for i, s := range subs {
		entities[i] = m.SubscriptionToEntity(s)
	}
	return entities
}

package service

import (
	"context"
	"fmt"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"

	"rlc-hub-be/pkg/events"
	pktNats "rlc-hub-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IBillingService interface {
	ListPlans(ctx context.Context) ([]*dto.SubscriptionPlanResponse, error)
	Checkout(ctx context.Context, tenantId uuid.UUID, adminEmail string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error
}

type billingService struct {
	uowFactory        unitofwork.RepositoryFactory
	eventPublisher    *pktNats.Publisher
	midtransServerKey string
	midtransEnv       string
}

func NewBillingService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, midtransServerKey, midtransEnv string) IBillingService {
	return &billingService{
		uowFactory:        uowFactory,
		eventPublisher:    eventPublisher,
		midtransServerKey: midtransServerKey,
		midtransEnv:       midtransEnv,
	}
}

func (s *billingService) ListPlans(ctx context.Context) ([]*dto.SubscriptionPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.SubscriptionPlanRepository().FindAll(ctx, specification.OrderBy{Field: "price", Desc: false})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SubscriptionPlanResponse, len(plans))
	for i, p := range plans {
		res[i] = &dto.SubscriptionPlanResponse{
			Id:            p.Id,
			Name:          p.Name,
			Slug:          p.Slug,
			Price:         p.Price,
			BillingPeriod: p.BillingPeriod,
			TokenLimit:    p.TokenLimit,
		}
	}
	return res, nil
}

func (s *billingService) Checkout(ctx context.Context, tenantId uuid.UUID, adminEmail string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: tenantId})
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, serverutils.NotFound("tenant not found")
	}

	plan, err := uow.SubscriptionPlanRepository().FindOne(ctx, specification.BySlug{Slug: req.PlanSlug})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, serverutils.NotFound("plan not found")
	}

	orderId := fmt.Sprintf("rlc-%s-%d", tenant.Slug, time.Now().Unix())

	var sClient snap.Client
	env := midtrans.Sandbox
	if s.midtransEnv == "production" {
		env = midtrans.Production
	}
	sClient.New(s.midtransServerKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(plan.Price),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: adminEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.Slug,
				Name:  plan.Name,
				Price: int64(plan.Price),
				Qty:   1,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	subscription := &entity.TenantSubscription{
		Id:            uuid.New(),
		TenantId:      tenant.Id,
		PlanId:        plan.Id,
		OrderId:       orderId,
		PaymentStatus: entity.PaymentStatusPending,
		SnapToken:     snapResp.Token,
		RedirectURL:   snapResp.RedirectURL,
		CreatedAt:     time.Now(),
	}
	if err := uow.TenantSubscriptionRepository().Create(ctx, subscription); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification applies the gateway's transaction status to the pending
// subscription. Settlement upgrades the tenant's plan and raises the token
// limits of its users.
func (s *billingService) HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.TenantSubscriptionRepository().FindOne(ctx, specification.ByOrderID{OrderID: req.OrderId})
	if err != nil {
		return err
	}
	if subscription == nil {
		return serverutils.NotFound("unknown order")
	}

	switch req.TransactionStatus {
	case "settlement", "capture":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			subscription.PaymentStatus = entity.PaymentStatusFailed
			return uow.TenantSubscriptionRepository().Update(ctx, subscription)
		}
		subscription.PaymentStatus = entity.PaymentStatusSuccess
	case "deny", "cancel", "expire", "failure":
		subscription.PaymentStatus = entity.PaymentStatusFailed
	default:
		// pending et al: nothing to apply yet
		return nil
	}

	if err := uow.TenantSubscriptionRepository().Update(ctx, subscription); err != nil {
		return err
	}

	if subscription.PaymentStatus != entity.PaymentStatusSuccess {
		return nil
	}

	plan, err := uow.SubscriptionPlanRepository().FindOne(ctx, specification.ByID{ID: subscription.PlanId})
	if err != nil || plan == nil {
		return fmt.Errorf("plan missing for paid subscription %s", subscription.Id)
	}

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: subscription.TenantId})
	if err != nil || tenant == nil {
		return fmt.Errorf("tenant missing for paid subscription %s", subscription.Id)
	}

	tenant.PlanSlug = plan.Slug
	if err := uow.TenantRepository().Update(ctx, tenant); err != nil {
		return err
	}

	// Raise the token budgets of everyone in the tenant
	members, err := uow.UserRepository().FindAll(ctx, specification.ByTenantID{TenantID: tenant.Id})
	if err == nil {
		for _, member := range members {
			ledger, err := uow.TokenUsageRepository().FindByUserId(ctx, member.Id)
			if err != nil || ledger == nil {
				continue
			}
			ledger.TokenLimit = plan.TokenLimit
			_ = uow.TokenUsageRepository().Update(ctx, ledger)
		}
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeSubscriptionChange,
			Data: map[string]interface{}{
				"tenant_id": tenant.Id,
				"plan_slug": plan.Slug,
				"order_id":  subscription.OrderId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_CHANGED event: %v\n", err)
		}
	}

	return nil
}

package rlcclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Tenant provisioning states reported by the status endpoint. StatusUnknown
// is the poller's terminal answer when the backend never settles.
const (
	StatusPending      = "pending"
	StatusProvisioning = "provisioning"
	StatusReady        = "ready"
	StatusFailed       = "failed"
	StatusUnknown      = "unknown"
)

// DefaultPollAttempts and DefaultPollInterval bound the provisioning wait at
// twenty minutes.
const (
	DefaultPollAttempts = 40
	DefaultPollInterval = 30 * time.Second
)

type TenantDraft struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	AdminEmail string `json:"admin_email"`
	PlanSlug   string `json:"plan_slug,omitempty"`
}

// CreateTenant queues provisioning and returns immediately with the pending
// tenant id. Poll TenantProvisioningStatus for the outcome.
func (c *Client) CreateTenant(ctx context.Context, draft TenantDraft) (uuid.UUID, error) {
	var out struct {
		Id     uuid.UUID `json:"id"`
		Status string    `json:"status"`
	}
	err := c.do(ctx, http.MethodPost, "/api/tenants/create", draft, &out)
	return out.Id, err
}

func (c *Client) Tenants(ctx context.Context) ([]Tenant, error) {
	var out []Tenant
	err := c.do(ctx, http.MethodGet, "/api/tenants/list", nil, &out)
	return out, err
}

func (c *Client) TenantProvisioningStatus(ctx context.Context, tenantId uuid.UUID) (*TenantStatus, error) {
	var out TenantStatus
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tenants/%s/status", tenantId), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RetryTenantProvisioning(ctx context.Context, tenantId uuid.UUID) (*TenantStatus, error) {
	var out TenantStatus
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/tenants/%s/retry", tenantId), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PollOption tunes PollTenantStatus; the defaults match the provisioning
// worker's worst-case runtime.
type PollOption func(*poller)

type poller struct {
	attempts int
	interval time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

func WithPollAttempts(n int) PollOption {
	return func(p *poller) { p.attempts = n }
}

func WithPollInterval(d time.Duration) PollOption {
	return func(p *poller) { p.interval = d }
}

// WithSleeper replaces the wait between attempts, for tests.
func WithSleeper(fn func(ctx context.Context, d time.Duration) error) PollOption {
	return func(p *poller) { p.sleep = fn }
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// PollTenantStatus watches a tenant until it reaches ready or failed. A
// failed poll counts against the attempt budget and the next attempt still
// runs; only context cancellation aborts early. When the budget runs out
// without a terminal state it returns StatusUnknown and no error.
func (c *Client) PollTenantStatus(ctx context.Context, tenantId uuid.UUID, opts ...PollOption) (*TenantStatus, error) {
	p := &poller{
		attempts: DefaultPollAttempts,
		interval: DefaultPollInterval,
		sleep:    sleepCtx,
	}
	for _, opt := range opts {
		opt(p)
	}

	for attempt := 0; attempt < p.attempts; attempt++ {
		if attempt > 0 {
			if err := p.sleep(ctx, p.interval); err != nil {
				return nil, err
			}
		}

		status, err := c.TenantProvisioningStatus(ctx, tenantId)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if status.Status == StatusReady || status.Status == StatusFailed {
			return status, nil
		}
	}

	return &TenantStatus{Id: tenantId, Status: StatusUnknown}, nil
}

package rlcclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"rlc-hub-be/pkg/authtoken"
	"rlc-hub-be/pkg/clientstate"
	"rlc-hub-be/pkg/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func tokenWithExp(exp time.Time) string {
	payload, _ := json.Marshal(map[string]any{"exp": exp.Unix()})
	return fmt.Sprintf("h.%s.s", base64.RawURLEncoding.EncodeToString(payload))
}

func authenticatedClient(t *testing.T, baseURL string, now time.Time) (*Client, *session.Store) {
	t.Helper()
	storage := clientstate.NewMemoryStorage()
	sess := session.NewStore(storage, session.WithClock(func() time.Time { return now }))
	err := sess.Login(context.Background(), func(context.Context) (*authtoken.Identity, error) {
		return &authtoken.Identity{Email: "ana@example.com", Token: tokenWithExp(now.Add(time.Hour))}, nil
	})
	assert.NoError(t, err)

	client := New(baseURL, sess, WithClock(func() time.Time { return now }))
	return client, sess
}

func TestDoShortCircuitsWithoutCredential(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	sess := session.NewStore(clientstate.NewMemoryStorage())
	client := New(srv.URL, sess)

	_, err := client.Projects(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Zero(t, atomic.LoadInt32(&hits), "no network traffic without a usable token")
}

func TestDoUnauthorizedForcesLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Invalid token"})
	}))
	defer srv.Close()

	now := time.Now()
	client, sess := authenticatedClient(t, srv.URL, now)

	_, err := client.Projects(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, session.PhaseUnauthenticated, sess.Phase())
	assert.True(t, sess.Expired())
}

func TestDoDecodesEnvelope(t *testing.T) {
	projectId := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"code":    200,
			"message": "Success get projects",
			"data": []map[string]any{
				{"id": projectId, "name": "Battery Redesign"},
			},
		})
	}))
	defer srv.Close()

	client, _ := authenticatedClient(t, srv.URL, time.Now())

	projects, err := client.Projects(context.Background())
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, projectId, projects[0].Id)
	assert.Equal(t, "Battery Redesign", projects[0].Name)
}

func TestDoSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"code":    403,
			"message": "you do not own this project",
		})
	}))
	defer srv.Close()

	client, sess := authenticatedClient(t, srv.URL, time.Now())

	_, err := client.Project(context.Background(), uuid.New())
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "you do not own this project", apiErr.Message)

	// A 403 is not a credential problem; the session stays up.
	assert.Equal(t, session.PhaseAuthenticated, sess.Phase())
}

func TestUploadArchiveDocumentSendsMultipart(t *testing.T) {
	projectId := uuid.New()
	documentId := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/api/archive/projects/%s/documents", projectId), r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		file, header, err := r.FormFile("file")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "retro-notes.md", header.Filename)

		content := make([]byte, header.Size)
		_, _ = file.Read(content)
		assert.Equal(t, "lessons learned", string(content))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id":         documentId,
				"project_id": projectId,
				"file_name":  "retro-notes.md",
			},
		})
	}))
	defer srv.Close()

	client, _ := authenticatedClient(t, srv.URL, time.Now())

	doc, err := client.UploadArchiveDocument(context.Background(), projectId, "retro-notes.md", strings.NewReader("lessons learned"))
	assert.NoError(t, err)
	assert.Equal(t, documentId, doc.Id)
	assert.Equal(t, "retro-notes.md", doc.FileName)
}

func TestUploadArchiveDocumentShortCircuitsWithoutCredential(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	sess := session.NewStore(clientstate.NewMemoryStorage())
	client := New(srv.URL, sess)

	_, err := client.UploadArchiveDocument(context.Background(), uuid.New(), "a.md", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestLoginExchangesFormCredentials(t *testing.T) {
	now := time.Now()
	token := tokenWithExp(now.Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/token":
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "ana@example.com", r.FormValue("username"))
			assert.Equal(t, "secret123", r.FormValue("password"))
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token": token,
				"token_type":   "bearer",
			})
		case "/api/auth/me":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"id":         uuid.New(),
					"email":      "ana@example.com",
					"first_name": "Ana",
					"role":       "user",
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	sess := session.NewStore(clientstate.NewMemoryStorage(), session.WithClock(func() time.Time { return now }))
	client := New(srv.URL, sess, WithClock(func() time.Time { return now }))

	assert.NoError(t, client.Login(context.Background(), "ana@example.com", "secret123"))
	assert.Equal(t, session.PhaseAuthenticated, sess.Phase())

	id := sess.Current()
	assert.Equal(t, token, id.Token)
	assert.Equal(t, "Ana", id.FirstName)
	assert.Equal(t, "user", id.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "invalid email or password"})
	}))
	defer srv.Close()

	sess := session.NewStore(clientstate.NewMemoryStorage())
	client := New(srv.URL, sess)

	err := client.Login(context.Background(), "ana@example.com", "wrong")
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, session.PhaseUnauthenticated, sess.Phase())
}

func TestPollTenantStatusReachesTerminal(t *testing.T) {
	tenantId := uuid.New()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		status := StatusProvisioning
		if n >= 3 {
			status = StatusReady
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": tenantId, "status": status},
		})
	}))
	defer srv.Close()

	client, _ := authenticatedClient(t, srv.URL, time.Now())

	status, err := client.PollTenantStatus(context.Background(), tenantId,
		WithSleeper(func(context.Context, time.Duration) error { return nil }),
	)
	assert.NoError(t, err)
	assert.Equal(t, StatusReady, status.Status)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestPollTenantStatusContinuesAcrossFailures(t *testing.T) {
	tenantId := uuid.New()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "transient"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": tenantId, "status": StatusReady},
		})
	}))
	defer srv.Close()

	client, _ := authenticatedClient(t, srv.URL, time.Now())

	status, err := client.PollTenantStatus(context.Background(), tenantId,
		WithSleeper(func(context.Context, time.Duration) error { return nil }),
	)
	assert.NoError(t, err)
	assert.Equal(t, StatusReady, status.Status)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestPollTenantStatusFailuresConsumeAttempts(t *testing.T) {
	tenantId := uuid.New()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, _ := authenticatedClient(t, srv.URL, time.Now())

	status, err := client.PollTenantStatus(context.Background(), tenantId,
		WithPollAttempts(4),
		WithSleeper(func(context.Context, time.Duration) error { return nil }),
	)
	assert.NoError(t, err)
	assert.Equal(t, StatusUnknown, status.Status)
	assert.EqualValues(t, 4, atomic.LoadInt32(&calls))
}

func TestPollTenantStatusExhaustsBudget(t *testing.T) {
	tenantId := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": tenantId, "status": StatusProvisioning},
		})
	}))
	defer srv.Close()

	client, _ := authenticatedClient(t, srv.URL, time.Now())

	status, err := client.PollTenantStatus(context.Background(), tenantId,
		WithPollAttempts(5),
		WithSleeper(func(context.Context, time.Duration) error { return nil }),
	)
	assert.NoError(t, err)
	assert.Equal(t, StatusUnknown, status.Status)
}

func TestPollTenantStatusStopsOnCancel(t *testing.T) {
	tenantId := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": tenantId, "status": StatusPending},
		})
	}))
	defer srv.Close()

	client, _ := authenticatedClient(t, srv.URL, time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	_, err := client.PollTenantStatus(ctx, tenantId,
		WithSleeper(func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"rlc-hub-be/internal/config"
	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/model"
	"rlc-hub-be/internal/repository/unitofwork"
	"rlc-hub-be/internal/service"
	"rlc-hub-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingMailer records outgoing mail instead of dialing SMTP.
type capturingMailer struct {
	mu         sync.Mutex
	resetToken string
	resetTo    string
}

func (m *capturingMailer) SendTenantReady(string, string, string) error { return nil }
func (m *capturingMailer) SendFeedbackReceipt(string, string) error     { return nil }

func (m *capturingMailer) SendResetToken(toEmail, token, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetTo = toEmail
	m.resetToken = token
	return nil
}

func (m *capturingMailer) lastReset() (string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetTo, m.resetToken
}

// TestPasswordResetFlow registers a user, requests a reset, and verifies the
// mailed token actually unlocks a password change.
func TestPasswordResetFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(db)
	mail := &capturingMailer{}
	authService := service.NewAuthService(uowFactory, mail, nil, cfg.App.ClientURL)

	ctx := context.Background()
	email := fmt.Sprintf("reset-%s@example.com", uuid.New().String()[:8])

	defer func() {
		db.Unscoped().Where("email = ?", email).Delete(&model.User{})
	}()

	_, err = authService.Register(ctx, &dto.RegisterRequest{
		Email:     email,
		Password:  "oldpassword1",
		FirstName: "Reset",
		LastName:  "Tester",
	})
	require.NoError(t, err)

	require.NoError(t, authService.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: email}))

	// The mail goes out on a goroutine after commit.
	var to, token string
	require.Eventually(t, func() bool {
		to, token = mail.lastReset()
		return token != ""
	}, 2*time.Second, 10*time.Millisecond, "reset token was never mailed")
	assert.Equal(t, email, to)

	require.NoError(t, authService.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Token:    token,
		Password: "newpassword1",
	}))

	_, err = authService.Login(ctx, &dto.LoginRequest{Email: email, Password: "oldpassword1"}, "test")
	assert.Error(t, err, "old password must stop working")

	login, err := authService.Login(ctx, &dto.LoginRequest{Email: email, Password: "newpassword1"}, "test")
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	// A used token is spent.
	err = authService.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Token:    token,
		Password: "anotherpass1",
	})
	assert.Error(t, err)
}

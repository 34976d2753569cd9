package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth/model"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
)

const testPassword = "correct horse battery staple"

func newTestService(t *testing.T) (*AuthService, *jwt.Manager, cache.Cache) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := jwt.NewManager("test-secret", time.Hour)
	store := cache.NewMemory()
	svc := NewAuthService(config.AdminConfig{
		Username:         "admin",
		PasswordHash:     string(hash),
		MaxLoginAttempts: 5,
		LockoutMinutes:   15,
	}, store, tokens)
	return svc, tokens, store
}

func TestAuthService_Login(t *testing.T) {
	svc, tokens, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), model.LoginRequest{Username: " admin ", Password: testPassword}, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	claims, err := tokens.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestAuthService_WrongCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, model.LoginRequest{Username: "admin", Password: "nope"}, "10.0.0.1")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = svc.Login(ctx, model.LoginRequest{Username: "root", Password: testPassword}, "10.0.0.1")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = svc.Login(ctx, model.LoginRequest{Username: "admin"}, "10.0.0.1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthService_LocksAfterMaxAttempts(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()
	bad := model.LoginRequest{Username: "admin", Password: "wrong"}

	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, bad, "10.0.0.1")
		require.ErrorIs(t, err, model.ErrInvalidCredentials, "attempt %d", i+1)
	}

	// even the right password is refused while locked
	_, err := svc.Login(ctx, model.LoginRequest{Username: "admin", Password: testPassword}, "10.0.0.1")
	assert.ErrorIs(t, err, model.ErrTooManyAttempts)
	var locked *model.LockedError
	require.ErrorAs(t, err, &locked)
	assert.InDelta(t, (15 * time.Minute).Seconds(), locked.RetryAfter.Seconds(), 5)

	ttl, err := store.TTL(ctx, lockKey("10.0.0.1"))
	require.NoError(t, err)
	assert.InDelta(t, (15 * time.Minute).Seconds(), ttl.Seconds(), 5)

	// other clients are unaffected
	_, err = svc.Login(ctx, model.LoginRequest{Username: "admin", Password: testPassword}, "10.0.0.2")
	assert.NoError(t, err)
}

func TestAuthService_SuccessResetsCounter(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, _ = svc.Login(ctx, model.LoginRequest{Username: "admin", Password: "wrong"}, "10.0.0.1")
	}
	_, err := svc.Login(ctx, model.LoginRequest{Username: "admin", Password: testPassword}, "10.0.0.1")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, attemptKey("10.0.0.1"))
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Login(ctx, model.LoginRequest{Username: "admin", Password: "wrong"}, "10.0.0.1")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthService_NoAdminConfigured(t *testing.T) {
	svc := NewAuthService(config.AdminConfig{Username: "admin"}, cache.NewMemory(), jwt.NewManager("s", time.Hour))

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "admin", Password: "anything"}, "10.0.0.1")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

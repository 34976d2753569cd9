package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth/model"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
)

// TokenIssuer is implemented by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(subject, role string) (string, time.Time, error)
}

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest, clientIP string) (*model.LoginResponse, error)
}

// AuthService authenticates the single configured admin. Failed attempts
// are counted per client IP; reaching MaxLoginAttempts inside the window
// locks that IP out for LockoutMinutes.
type AuthService struct {
	admin  config.AdminConfig
	cache  cache.Cache
	tokens TokenIssuer
}

func NewAuthService(admin config.AdminConfig, cache cache.Cache, tokens TokenIssuer) *AuthService {
	if admin.MaxLoginAttempts <= 0 {
		admin.MaxLoginAttempts = 5
	}
	if admin.LockoutMinutes <= 0 {
		admin.LockoutMinutes = 15
	}
	return &AuthService{admin: admin, cache: cache, tokens: tokens}
}

func attemptKey(ip string) string { return "failed_login:" + ip }
func lockKey(ip string) string    { return "login_locked:" + ip }

func (s *AuthService) window() time.Duration {
	return time.Duration(s.admin.LockoutMinutes) * time.Minute
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest, clientIP string) (*model.LoginResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Cache errors never block a login.
	locked, err := s.cache.Exists(ctx, lockKey(clientIP))
	if err != nil {
		log.Warn().Err(err).Msg("login throttle check failed")
	}
	if locked {
		return nil, &model.LockedError{RetryAfter: s.lockRemaining(ctx, clientIP)}
	}

	if !s.checkCredentials(req) {
		s.recordFailure(ctx, clientIP)
		return nil, model.ErrInvalidCredentials
	}

	if err := s.cache.Delete(ctx, attemptKey(clientIP)); err != nil {
		log.Warn().Err(err).Msg("failed to reset login attempts")
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(s.admin.Username, jwt.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	log.Info().Str("ip_address", clientIP).Msg("admin logged in")
	return &model.LoginResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// lockRemaining falls back to the full window when the TTL is unknown.
func (s *AuthService) lockRemaining(ctx context.Context, ip string) time.Duration {
	ttl, err := s.cache.TTL(ctx, lockKey(ip))
	if err != nil || ttl <= 0 {
		return s.window()
	}
	return ttl
}

func (s *AuthService) checkCredentials(req model.LoginRequest) bool {
	if s.admin.Username == "" || s.admin.PasswordHash == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	// bcrypt runs even for a wrong username
	passErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	return userOK && passErr == nil
}

func (s *AuthService) recordFailure(ctx context.Context, ip string) {
	key := attemptKey(ip)

	attempts, err := s.cache.Increment(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("failed to count login attempt")
		return
	}
	if attempts == 1 {
		if err := s.cache.Expire(ctx, key, s.window()); err != nil {
			log.Warn().Err(err).Msg("failed to set login attempt expiry")
		}
	}

	log.Info().Str("ip_address", ip).Int64("attempts", attempts).Msg("failed login attempt")

	if attempts >= int64(s.admin.MaxLoginAttempts) {
		if err := s.cache.Set(ctx, lockKey(ip), "1", s.window()); err != nil {
			log.Warn().Err(err).Msg("failed to lock login")
			return
		}
		_ = s.cache.Delete(ctx, key)
		log.Warn().Str("ip_address", ip).Dur("duration", s.window()).Msg("login locked")
	}
}

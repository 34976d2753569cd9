package model

import (
	"errors"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
)

// LoginRequest - POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required"), validation.Length(1, 72)),
	)
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrInvalidBody        = errors.New("invalid request body")
)

// LockedError is returned while a client IP is locked out.
// errors.Is(err, ErrTooManyAttempts) holds.
type LockedError struct {
	RetryAfter time.Duration
}

func (e *LockedError) Error() string { return ErrTooManyAttempts.Error() }
func (e *LockedError) Unwrap() error { return ErrTooManyAttempts }

// RetryAfterSeconds rounds up so clients never retry early.
func (e *LockedError) RetryAfterSeconds() int {
	secs := int((e.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

var authErrorMap = map[error]response.ErrorSpec{
	ErrInvalidCredentials: {Status: http.StatusUnauthorized, Message: "Invalid username or password"},
	ErrTooManyAttempts:    {Status: http.StatusTooManyRequests, Message: "Too many failed login attempts, try again later"},
	ErrInvalidBody:        {Status: http.StatusBadRequest, Message: "Invalid request body"},
}

func HandleAuthError(c *gin.Context, err error) {
	response.Handle(c, err, authErrorMap)
}

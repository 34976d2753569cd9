package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth/model"
	"portfolio-backend/internal/domains/auth/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
)

func setupRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := jwt.NewManager("test-secret", time.Hour)
	svc := service.NewAuthService(config.AdminConfig{
		Username:         "admin",
		PasswordHash:     string(hash),
		MaxLoginAttempts: 5,
		LockoutMinutes:   15,
	}, cache.NewMemory(), tokens)

	r := gin.New()
	r.Use(middleware.ClientIPMiddleware())
	r.POST("/auth/login", NewHandler(svc).Login)

	admin := r.Group("/admin", middleware.AuthMiddleware(tokens), middleware.AdminMiddleware())
	admin.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r, tokens
}

func login(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.9:5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r, _ := setupRouter(t)

	w := login(r, map[string]string{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogin_Errors(t *testing.T) {
	r, _ := setupRouter(t)

	assert.Equal(t, http.StatusBadRequest, login(r, map[string]string{"username": "admin"}).Code)

	for i := 0; i < 5; i++ {
		w := login(r, map[string]string{"username": "admin", "password": "guess"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := login(r, map[string]string{"username": "admin", "password": "s3cret"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "900", w.Header().Get("Retry-After"))
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	r, tokens := setupRouter(t)

	call := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, call(""))
	assert.Equal(t, http.StatusUnauthorized, call("Bearer not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, call("Basic abc"))

	viewer, _, err := tokens.GenerateAccessToken("someone", "viewer")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, call("Bearer "+viewer))
}

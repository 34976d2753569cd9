package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/auth/model"
	"portfolio-backend/internal/domains/auth/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Login - POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandleAuthError(c, model.ErrInvalidBody)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req, middleware.GetClientIP(c))
	if err != nil {
		var locked *model.LockedError
		if errors.As(err, &locked) {
			c.Header("Retry-After", strconv.Itoa(locked.RetryAfterSeconds()))
		}
		model.HandleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/video/model"
	"portfolio-backend/internal/domains/video/service"
	"portfolio-backend/internal/shared/query"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListVideos - GET /videos (visible only)
// Query params: page, limit, category, tag, search, featured
func (h *Handler) ListVideos(c *gin.Context) {
	h.list(c, true)
}

// ListAllVideos - GET /admin/videos (includes hidden)
func (h *Handler) ListAllVideos(c *gin.Context) {
	h.list(c, false)
}

func (h *Handler) list(c *gin.Context, public bool) {
	spec, err := query.Parse(c.Request.URL.Query(), service.QueryOptions, public)
	if err != nil {
		model.HandleVideoError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), spec)
	if err != nil {
		model.HandleVideoError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ListVideosResponse{
		Videos:     page.Items,
		Pagination: page.Pagination,
	})
}

// GetVideo - GET /videos/:id
func (h *Handler) GetVideo(c *gin.Context) {
	h.get(c, true)
}

// GetVideoAdmin - GET /admin/videos/:id
func (h *Handler) GetVideoAdmin(c *gin.Context) {
	h.get(c, false)
}

func (h *Handler) get(c *gin.Context, public bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	video, err := h.service.Get(c.Request.Context(), id, public)
	if err != nil {
		model.HandleVideoError(c, err)
		return
	}

	response.Success(c, http.StatusOK, video)
}

// CreateVideo - POST /admin/videos
func (h *Handler) CreateVideo(c *gin.Context) {
	var req model.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandleVideoError(c, model.ErrInvalidBody)
		return
	}

	video, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		model.HandleVideoError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, video)
}

// UpdateVideo - PUT/PATCH /admin/videos/:id
func (h *Handler) UpdateVideo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandleVideoError(c, model.ErrInvalidBody)
		return
	}

	video, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		model.HandleVideoError(c, err)
		return
	}

	response.Success(c, http.StatusOK, video)
}

// DeleteVideo - DELETE /admin/videos/:id
func (h *Handler) DeleteVideo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	video, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		model.HandleVideoError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Video deleted successfully",
		"video":   video,
	})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		model.HandleVideoError(c, model.ErrInvalidVideoID)
	}
	return id, ok
}

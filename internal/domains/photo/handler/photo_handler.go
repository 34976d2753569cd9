package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/photo/model"
	"portfolio-backend/internal/domains/photo/service"
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

// ListPhotos - GET /photos (visible only)
// Query params: page, limit, category, tag, search, featured
func (h *Handler) ListPhotos(c *gin.Context) {
	h.list(c, true)
}

// ListAllPhotos - GET /admin/photos (includes hidden)
func (h *Handler) ListAllPhotos(c *gin.Context) {
	h.list(c, false)
}

func (h *Handler) list(c *gin.Context, public bool) {
	spec, err := query.Parse(c.Request.URL.Query(), service.QueryOptions, public)
	if err != nil {
		model.HandlePhotoError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), spec)
	if err != nil {
		model.HandlePhotoError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ListPhotosResponse{
		Photos:     page.Items,
		Pagination: page.Pagination,
	})
}

// GetPhoto - GET /photos/:id
func (h *Handler) GetPhoto(c *gin.Context) {
	h.get(c, true)
}

// GetPhotoAdmin - GET /admin/photos/:id
func (h *Handler) GetPhotoAdmin(c *gin.Context) {
	h.get(c, false)
}

func (h *Handler) get(c *gin.Context, public bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	photo, err := h.service.Get(c.Request.Context(), id, public)
	if err != nil {
		model.HandlePhotoError(c, err)
		return
	}

	response.Success(c, http.StatusOK, photo)
}

// CreatePhoto - POST /admin/photos
func (h *Handler) CreatePhoto(c *gin.Context) {
	var req model.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandlePhotoError(c, model.ErrInvalidBody)
		return
	}

	photo, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		model.HandlePhotoError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, photo)
}

// UpdatePhoto - PUT/PATCH /admin/photos/:id
func (h *Handler) UpdatePhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandlePhotoError(c, model.ErrInvalidBody)
		return
	}

	photo, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		model.HandlePhotoError(c, err)
		return
	}

	response.Success(c, http.StatusOK, photo)
}

// DeletePhoto - DELETE /admin/photos/:id
func (h *Handler) DeletePhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	photo, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		model.HandlePhotoError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Photo deleted successfully",
		"photo":   photo,
	})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		model.HandlePhotoError(c, model.ErrInvalidPhotoID)
	}
	return id, ok
}

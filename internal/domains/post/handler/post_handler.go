package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/post/model"
	"portfolio-backend/internal/domains/post/service"
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

// ListPosts - GET /blog (published only)
// Query params: page, limit, category (slug), tag (slug), search, featured
func (h *Handler) ListPosts(c *gin.Context) {
	h.list(c, true)
}

// ListAllPosts - GET /admin/blog (includes drafts)
func (h *Handler) ListAllPosts(c *gin.Context) {
	h.list(c, false)
}

func (h *Handler) list(c *gin.Context, public bool) {
	spec, err := query.Parse(c.Request.URL.Query(), service.QueryOptions, public)
	if err != nil {
		model.HandlePostError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), spec)
	if err != nil {
		model.HandlePostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ListPostsResponse{
		Posts:      page.Items,
		Pagination: page.Pagination,
	})
}

// GetPost - GET /blog/:id
func (h *Handler) GetPost(c *gin.Context) {
	h.get(c, true)
}

// GetPostAdmin - GET /admin/blog/:id
func (h *Handler) GetPostAdmin(c *gin.Context) {
	h.get(c, false)
}

func (h *Handler) get(c *gin.Context, public bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.service.Get(c.Request.Context(), id, public)
	if err != nil {
		model.HandlePostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// GetPostBySlug - GET /blog/slug/:slug
func (h *Handler) GetPostBySlug(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))
	if slug == "" {
		model.HandlePostError(c, model.ErrPostNotFound)
		return
	}

	post, err := h.service.GetBySlug(c.Request.Context(), slug, true)
	if err != nil {
		model.HandlePostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// CreatePost - POST /admin/blog
func (h *Handler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandlePostError(c, model.ErrInvalidBody)
		return
	}

	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		model.HandlePostError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// UpdatePost - PUT/PATCH /admin/blog/:id
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandlePostError(c, model.ErrInvalidBody)
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		model.HandlePostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// DeletePost - DELETE /admin/blog/:id
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		model.HandlePostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Post deleted successfully",
		"post":    post,
	})
}

// ListCategories - GET /blog/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		model.HandlePostError(c, err)
		return
	}
	response.Success(c, http.StatusOK, model.ListCategoriesResponse{Categories: categories})
}

// ListTags - GET /blog/tags
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		model.HandlePostError(c, err)
		return
	}
	response.Success(c, http.StatusOK, model.ListTagsResponse{Tags: tags})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		model.HandlePostError(c, model.ErrInvalidPostID)
	}
	return id, ok
}

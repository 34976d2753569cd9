package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/post/model"
	"portfolio-backend/internal/domains/post/repository"
	"portfolio-backend/internal/domains/post/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(service.NewService(repository.NewMemoryRepository(), nil))

	r := gin.New()
	r.GET("/blog", h.ListPosts)
	r.GET("/blog/categories", h.ListCategories)
	r.GET("/blog/tags", h.ListTags)
	r.GET("/blog/slug/:slug", h.GetPostBySlug)
	r.GET("/blog/:id", h.GetPost)
	admin := r.Group("/admin")
	admin.GET("/blog", h.ListAllPosts)
	admin.POST("/blog", h.CreatePost)
	admin.GET("/blog/:id", h.GetPostAdmin)
	admin.PUT("/blog/:id", h.UpdatePost)
	admin.PATCH("/blog/:id", h.UpdatePost)
	admin.DELETE("/blog/:id", h.DeletePost)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func createPost(t *testing.T, r *gin.Engine, body map[string]any) model.PostResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/admin/blog", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[model.PostResponse](t, w)
}

func TestCreatePost(t *testing.T) {
	r := setupRouter()

	t.Run("slug is derived from the title", func(t *testing.T) {
		post := createPost(t, r, map[string]any{
			"title":     "Hello, World! 2024",
			"content":   "first post",
			"category":  "News",
			"tags":      []string{"Intro", "Meta"},
			"published": true,
		})
		assert.Equal(t, "hello-world-2024", post.Slug)
		assert.Equal(t, 1, post.ReadingTime)
		assert.NotNil(t, post.PublishedAt)
		assert.Equal(t, "news", post.Category.Slug)
		assert.Len(t, post.Tags, 2)
	})

	t.Run("missing content", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/admin/blog", map[string]any{"title": "Only title"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[map[string]string](t, w)["error"], "content")
	})

	t.Run("invalid cover image url", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/admin/blog", map[string]any{
			"title": "x", "content": "y", "coverImage": "not a url",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetPost(t *testing.T) {
	r := setupRouter()
	draft := createPost(t, r, map[string]any{"title": "Draft", "content": "wip"})
	live := createPost(t, r, map[string]any{"title": "Live", "content": "done", "published": true})

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/blog/"+draft.ID.String(), nil).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/admin/blog/"+draft.ID.String(), nil).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/blog/"+live.ID.String(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/blog/nope", nil).Code)

	w := do(t, r, http.MethodGet, "/blog/slug/live", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, live.ID, decode[model.PostResponse](t, w).ID)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/blog/slug/draft", nil).Code)
}

func TestListPosts(t *testing.T) {
	r := setupRouter()
	createPost(t, r, map[string]any{"title": "Go tips", "content": "x", "category": "Go", "tags": []string{"tips"}, "published": true})
	createPost(t, r, map[string]any{"title": "Rust tips", "content": "x", "category": "Rust", "published": true, "featured": true})
	createPost(t, r, map[string]any{"title": "Unfinished", "content": "x", "category": "Go"})

	public := decode[model.ListPostsResponse](t, do(t, r, http.MethodGet, "/blog", nil))
	assert.Len(t, public.Posts, 2)
	assert.Equal(t, 12, public.Pagination.Limit)
	for _, p := range public.Posts {
		assert.True(t, p.Published)
	}

	admin := decode[model.ListPostsResponse](t, do(t, r, http.MethodGet, "/admin/blog", nil))
	assert.Equal(t, 3, admin.Pagination.TotalCount)

	byCategory := decode[model.ListPostsResponse](t, do(t, r, http.MethodGet, "/blog?category=GO", nil))
	require.Len(t, byCategory.Posts, 1)
	assert.Equal(t, "Go tips", byCategory.Posts[0].Title)

	byTag := decode[model.ListPostsResponse](t, do(t, r, http.MethodGet, "/blog?tag=Tips", nil))
	assert.Len(t, byTag.Posts, 1)

	featured := decode[model.ListPostsResponse](t, do(t, r, http.MethodGet, "/blog?featured=true", nil))
	require.Len(t, featured.Posts, 1)
	assert.Equal(t, "Rust tips", featured.Posts[0].Title)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/blog?featured=maybe", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/blog?limit=0", nil).Code)

	categories := decode[model.ListCategoriesResponse](t, do(t, r, http.MethodGet, "/blog/categories", nil))
	assert.Len(t, categories.Categories, 2)
	tags := decode[model.ListTagsResponse](t, do(t, r, http.MethodGet, "/blog/tags", nil))
	assert.Len(t, tags.Tags, 1)
}

func TestUpdateAndDeletePost(t *testing.T) {
	r := setupRouter()
	post := createPost(t, r, map[string]any{"title": "Stable link", "content": "x"})

	w := do(t, r, http.MethodPatch, "/admin/blog/"+post.ID.String(), map[string]any{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[model.PostResponse](t, w)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "stable-link", updated.Slug)

	w = do(t, r, http.MethodPut, "/admin/blog/"+post.ID.String(), map[string]any{"content": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/admin/blog/"+uuid.NewString(), nil).Code)

	w = do(t, r, http.MethodDelete, "/admin/blog/"+post.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post deleted successfully", decode[map[string]any](t, w)["message"])

	admin := decode[model.ListPostsResponse](t, do(t, r, http.MethodGet, "/admin/blog", nil))
	assert.Zero(t, admin.Pagination.TotalCount)
}

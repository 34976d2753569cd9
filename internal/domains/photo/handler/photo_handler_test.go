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

	"portfolio-backend/internal/domains/photo/model"
	"portfolio-backend/internal/domains/photo/repository"
	"portfolio-backend/internal/domains/photo/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(service.NewService(repository.NewMemoryRepository(), nil))

	r := gin.New()
	r.GET("/photos", h.ListPhotos)
	r.GET("/photos/:id", h.GetPhoto)
	admin := r.Group("/admin")
	admin.GET("/photos", h.ListAllPhotos)
	admin.POST("/photos", h.CreatePhoto)
	admin.GET("/photos/:id", h.GetPhotoAdmin)
	admin.PUT("/photos/:id", h.UpdatePhoto)
	admin.PATCH("/photos/:id", h.UpdatePhoto)
	admin.DELETE("/photos/:id", h.DeletePhoto)
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

func createPhoto(t *testing.T, r *gin.Engine, body map[string]any) model.PhotoResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/admin/photos", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[model.PhotoResponse](t, w)
}

func TestCreatePhoto(t *testing.T) {
	r := setupRouter()

	t.Run("missing imageUrl is 400 and persists nothing", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/admin/photos", map[string]any{"title": "no image"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[map[string]string](t, w)["error"], "imageUrl")

		list := decode[model.ListPhotosResponse](t, do(t, r, http.MethodGet, "/admin/photos", nil))
		assert.Equal(t, 0, list.Pagination.TotalCount)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/photos", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create then get returns the same derived fields", func(t *testing.T) {
		created := createPhoto(t, r, map[string]any{
			"title":    "Harbor",
			"imageUrl": "https://cdn.example.com/photos/harbor.jpg",
			"category": "travel",
		})
		assert.Equal(t, "travel", created.Category)
		assert.Equal(t, created.ImageURL, created.Thumbnail)

		w := do(t, r, http.MethodGet, "/photos/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[model.PhotoResponse](t, w)
		assert.Equal(t, created.Thumbnail, got.Thumbnail)
		assert.Equal(t, created.Category, got.Category)
		assert.Equal(t, created.Tags, got.Tags)
	})
}

func TestListPhotos(t *testing.T) {
	r := setupRouter()
	createPhoto(t, r, map[string]any{"title": "shown", "imageUrl": "https://x/1.jpg", "featured": true})
	createPhoto(t, r, map[string]any{"title": "hidden", "imageUrl": "https://x/2.jpg", "visible": false})

	t.Run("public never returns hidden photos", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/photos", nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[model.ListPhotosResponse](t, w)
		require.Len(t, list.Photos, 1)
		assert.Equal(t, "shown", list.Photos[0].Title)
		assert.Equal(t, 20, list.Pagination.Limit)
	})

	t.Run("admin sees hidden photos", func(t *testing.T) {
		list := decode[model.ListPhotosResponse](t, do(t, r, http.MethodGet, "/admin/photos", nil))
		assert.Len(t, list.Photos, 2)
	})

	t.Run("public get of a hidden photo is 404", func(t *testing.T) {
		list := decode[model.ListPhotosResponse](t, do(t, r, http.MethodGet, "/admin/photos?search=hidden", nil))
		require.Len(t, list.Photos, 1)
		w := do(t, r, http.MethodGet, "/photos/"+list.Photos[0].ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("featured filter", func(t *testing.T) {
		list := decode[model.ListPhotosResponse](t, do(t, r, http.MethodGet, "/admin/photos?featured=true", nil))
		require.Len(t, list.Photos, 1)
		assert.Equal(t, "shown", list.Photos[0].Title)
	})

	for _, q := range []string{"page=abc", "limit=0", "featured=maybe"} {
		t.Run("rejects "+q, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/photos?"+q, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	t.Run("page past the end", func(t *testing.T) {
		list := decode[model.ListPhotosResponse](t, do(t, r, http.MethodGet, "/photos?page=5", nil))
		assert.NotNil(t, list.Photos)
		assert.Empty(t, list.Photos)
		assert.False(t, list.Pagination.HasNext)
		assert.True(t, list.Pagination.HasPrev)
	})
}

func TestUpdatePhoto_LastWriterWins(t *testing.T) {
	r := setupRouter()
	created := createPhoto(t, r, map[string]any{"title": "v0", "imageUrl": "https://x/1.jpg"})
	path := "/admin/photos/" + created.ID.String()

	w := do(t, r, http.MethodPut, path, map[string]any{"title": "first", "featured": true})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPatch, path, map[string]any{"title": "second"})
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[model.PhotoResponse](t, do(t, r, http.MethodGet, path, nil))
	assert.Equal(t, "second", got.Title)
	assert.True(t, got.Featured)
}

func TestDeletePhoto(t *testing.T) {
	r := setupRouter()
	a := createPhoto(t, r, map[string]any{"title": "a", "imageUrl": "https://x/a.jpg"})
	createPhoto(t, r, map[string]any{"title": "b", "imageUrl": "https://x/b.jpg"})

	t.Run("nonexistent id is 404 and nothing changes", func(t *testing.T) {
		w := do(t, r, http.MethodDelete, "/admin/photos/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Photo not found", decode[map[string]string](t, w)["error"])

		list := decode[model.ListPhotosResponse](t, do(t, r, http.MethodGet, "/admin/photos", nil))
		assert.Equal(t, 2, list.Pagination.TotalCount)
	})

	t.Run("invalid id is 400", func(t *testing.T) {
		w := do(t, r, http.MethodDelete, "/admin/photos/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("existing id removes exactly that photo", func(t *testing.T) {
		w := do(t, r, http.MethodDelete, "/admin/photos/"+a.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[struct {
			Message string              `json:"message"`
			Photo   model.PhotoResponse `json:"photo"`
		}](t, w)
		assert.NotEmpty(t, body.Message)
		assert.Equal(t, a.ID, body.Photo.ID)

		list := decode[model.ListPhotosResponse](t, do(t, r, http.MethodGet, "/admin/photos", nil))
		require.Len(t, list.Photos, 1)
		assert.Equal(t, "b", list.Photos[0].Title)
	})
}

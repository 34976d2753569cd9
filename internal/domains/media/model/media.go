package model

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/response"
)

// Folders an upload may target. Empty selects DefaultFolder.
const (
	FolderPhotos = "photos"
	FolderVideos = "videos"
	FolderBlog   = "blog"

	DefaultFolder = FolderPhotos
	thumbSuffix   = "_thumb.jpg"
)

var Folders = []string{FolderPhotos, FolderVideos, FolderBlog}

// UploadResult - POST /admin/uploads response
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Key          string `json:"key"`
}

var (
	ErrFileRequired  = errors.New("file is required")
	ErrInvalidFolder = errors.New("invalid upload folder")
)

var mediaErrorMap = map[error]response.ErrorSpec{
	ErrFileRequired:               {Status: http.StatusBadRequest, Message: "file is required (multipart/form-data)"},
	ErrInvalidFolder:              {Status: http.StatusBadRequest, Message: "folder must be one of photos, videos, blog"},
	storage.ErrImageTooLarge:      {Status: http.StatusBadRequest, Message: "Image exceeds the maximum upload size"},
	storage.ErrInvalidImageFormat: {Status: http.StatusBadRequest, Message: "Image must be JPEG or PNG"},
}

func HandleMediaError(c *gin.Context, err error) {
	response.Handle(c, err, mediaErrorMap)
}

// ParseFolder lower-cases and checks folder.
func ParseFolder(folder string) (string, error) {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if folder == "" {
		return DefaultFolder, nil
	}
	for _, f := range Folders {
		if f == folder {
			return f, nil
		}
	}
	return "", ErrInvalidFolder
}

// ObjectKey is <folder>/<id>.<ext>.
func ObjectKey(folder, id, ext string) string {
	return folder + "/" + id + "." + ext
}

// ThumbnailKey is the thumbnail stored next to an uploaded original:
// photos/abc.png → photos/abc_thumb.jpg. Thumbnails have none.
func ThumbnailKey(key string) (string, bool) {
	if strings.HasSuffix(key, thumbSuffix) {
		return "", false
	}
	dot := strings.LastIndex(key, ".")
	if dot <= strings.LastIndex(key, "/") {
		return "", false
	}
	return key[:dot] + thumbSuffix, true
}

package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/media/model"
	"portfolio-backend/internal/domains/media/service"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Upload - POST /admin/uploads
// multipart/form-data: file (JPEG or PNG), folder (photos|videos|blog, optional)
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		model.HandleMediaError(c, model.ErrFileRequired)
		return
	}

	maxSize := h.service.MaxSize()
	if file.Size > maxSize {
		model.HandleMediaError(c, fmt.Errorf("%w (%d bytes)", storage.ErrImageTooLarge, file.Size))
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalServerError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		response.InternalServerError(c, fmt.Errorf("read upload: %w", err))
		return
	}

	log.Info().
		Str("file_name", file.Filename).
		Int64("file_size", file.Size).
		Msg("[UploadHandler] received upload")

	result, err := h.service.Upload(c.Request.Context(), c.PostForm("folder"), data)
	if err != nil {
		model.HandleMediaError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

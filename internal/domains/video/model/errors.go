package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
)

var (
	ErrVideoNotFound     = errors.New("video not found")
	ErrInvalidVideoID    = errors.New("invalid video id")
	ErrInvalidYouTubeURL = errors.New("could not extract a YouTube video id")
	ErrInvalidBody       = errors.New("invalid request body")
)

var videoErrorMap = map[error]response.ErrorSpec{
	ErrVideoNotFound:     {Status: http.StatusNotFound, Message: "Video not found"},
	ErrInvalidVideoID:    {Status: http.StatusBadRequest, Message: "Invalid video id"},
	ErrInvalidYouTubeURL: {Status: http.StatusBadRequest, Message: "Invalid YouTube URL"},
	ErrInvalidBody:       {Status: http.StatusBadRequest, Message: "Invalid request body"},
}

func HandleVideoError(c *gin.Context, err error) {
	response.Handle(c, err, videoErrorMap)
}

package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrInvalidPostID = errors.New("invalid post id")
	ErrSlugTaken     = errors.New("post slug already exists")
	ErrInvalidBody   = errors.New("invalid request body")
)

var postErrorMap = map[error]response.ErrorSpec{
	ErrPostNotFound:  {Status: http.StatusNotFound, Message: "Post not found"},
	ErrInvalidPostID: {Status: http.StatusBadRequest, Message: "Invalid post id"},
	ErrSlugTaken:     {Status: http.StatusConflict, Message: "A post with this slug already exists"},
	ErrInvalidBody:   {Status: http.StatusBadRequest, Message: "Invalid request body"},
}

// HandlePostError writes the error response for err.
func HandlePostError(c *gin.Context, err error) {
	response.Handle(c, err, postErrorMap)
}

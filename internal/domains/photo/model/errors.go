package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
)

var (
	ErrPhotoNotFound  = errors.New("photo not found")
	ErrInvalidPhotoID = errors.New("invalid photo id")
	ErrInvalidBody    = errors.New("invalid request body")
)

var photoErrorMap = map[error]response.ErrorSpec{
	ErrPhotoNotFound:  {Status: http.StatusNotFound, Message: "Photo not found"},
	ErrInvalidPhotoID: {Status: http.StatusBadRequest, Message: "Invalid photo id"},
	ErrInvalidBody:    {Status: http.StatusBadRequest, Message: "Invalid request body"},
}

// HandlePhotoError writes the error response for err.
func HandlePhotoError(c *gin.Context, err error) {
	response.Handle(c, err, photoErrorMap)
}

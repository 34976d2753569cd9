package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const genericInternalMessage = "Internal server error"

// ErrorBody is the only error envelope the API emits.
type ErrorBody struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message})
}

// InternalServerError logs err and answers 500.
// The raw error text is only exposed outside gin release mode.
func InternalServerError(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString("request_id")).
		Msg("request failed")

	message := genericInternalMessage
	if gin.Mode() != gin.ReleaseMode && err != nil {
		message = err.Error()
	}
	Error(c, http.StatusInternalServerError, message)
}

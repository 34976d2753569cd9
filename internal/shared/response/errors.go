package response

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/query"
)

// ErrorSpec is the HTTP rendering of a domain sentinel error.
type ErrorSpec struct {
	Status  int
	Message string
}

// FromTable writes the first table entry matching err (errors.Is).
func FromTable(c *gin.Context, err error, table map[error]ErrorSpec) bool {
	for sentinel, spec := range table {
		if errors.Is(err, sentinel) {
			Error(c, spec.Status, spec.Message)
			return true
		}
	}
	return false
}

// ValidationError answers 400 for ozzo validation failures and malformed list parameters.
func ValidationError(c *gin.Context, err error) bool {
	var (
		verrs    validation.Errors
		verr     validation.Error
		paramErr *query.ParamError
	)
	switch {
	case errors.As(err, &verrs), errors.As(err, &verr), errors.As(err, &paramErr):
		Error(c, http.StatusBadRequest, err.Error())
		return true
	}
	return false
}

// Handle renders err using table, then validation, then 500.
func Handle(c *gin.Context, err error, table map[error]ErrorSpec) {
	if err == nil {
		return
	}
	if FromTable(c, err, table) || ValidationError(c, err) {
		return
	}
	InternalServerError(c, err)
}

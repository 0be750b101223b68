package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"peoplebook/internal/apperrors"
	"peoplebook/pkg/logger"
)

// ProblemDetail is the error body shape shared by every failure response.
type ProblemDetail struct {
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Detail    string            `json:"detail"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func problem(c *gin.Context, status int, title, detail string, fields map[string]string) {
	c.JSON(status, ProblemDetail{
		Title:     title,
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
		Errors:    fields,
	})
}

// respondError translates a classified service error into a response.
// Unclassified errors are logged and become a 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.CodeNotFound:
			problem(c, http.StatusNotFound, "Record Not Found", appErr.Message, nil)
		case apperrors.CodeConflict:
			problem(c, http.StatusConflict, "Duplicate Record", appErr.Message, nil)
		case apperrors.CodeValidation:
			problem(c, http.StatusUnprocessableEntity, "Validation Error", appErr.Message, appErr.Fields)
		}
		return
	}

	logger.WithError(err).Error("Unhandled service error")
	problem(c, http.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred", nil)
}

// respondBindingError maps request decoding failures: field constraint
// violations become a 422 with a field map, everything else (malformed
// JSON, wrong types, unparseable dates) a 400.
func respondBindingError(c *gin.Context, err error) {
	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		fields := make(map[string]string, len(violations))
		for _, violation := range violations {
			fields[violation.Field()] = violationMessage(violation)
		}
		problem(c, http.StatusUnprocessableEntity, "Validation Error", "request body failed validation", fields)
		return
	}

	problem(c, http.StatusBadRequest, "Bad Request", err.Error(), nil)
}

func violationMessage(violation validator.FieldError) string {
	field := violation.Field()
	switch violation.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, violation.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", field, violation.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "pastdate":
		return fmt.Sprintf("%s must be in the past", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// idParam parses an integer path parameter, answering a 400 itself when
// the value is not a number.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		problem(c, http.StatusBadRequest, "Bad Request", fmt.Sprintf("invalid %s parameter", name), nil)
		return 0, false
	}
	return id, true
}

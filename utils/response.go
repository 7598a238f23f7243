package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is an error that knows which HTTP status it maps to.
type AppError struct {
	Code    int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewValidationError(message string, fields []FieldError) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Errors: fields}
}

// RespondWithError aborts the request with {"error": message}.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RespondWithAppError writes err using its status and field errors; any
// other error is reported as a 500 with fallback.
func RespondWithAppError(c *gin.Context, err error, fallback string) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		RespondWithError(c, http.StatusInternalServerError, fallback)
		return
	}
	body := gin.H{"error": appErr.Message}
	if len(appErr.Errors) > 0 {
		body["errors"] = appErr.Errors
	}
	c.AbortWithStatusJSON(appErr.Code, body)
}

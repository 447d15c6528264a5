package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message, Fields: appErr.Fields})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// BadRequest sends a 400 with the given message and optional binding details.
func BadRequest(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Fields: fields})
}

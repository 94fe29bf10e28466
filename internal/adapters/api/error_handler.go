package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"climatestats.app/internal/ports"
	errorspkg "climatestats.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		s.logUnexpected(c, err)
		s.formatter.Write(c, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError, errorspkg.InvalidDateError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.EmptyDatasetError, errorspkg.NoMatchingRecordsError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.StorageUnavailableError:
		statusCode = http.StatusServiceUnavailable
		message = "Measurement store unavailable"
	default:
		s.logUnexpected(c, err)
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	s.formatter.Write(c, statusCode, ErrorResponse{Error: message, Type: appErr.Type.String()})
}


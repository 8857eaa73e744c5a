package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gagnaveita/portvakt/internal/kennitala"
	usagedomain "github.com/gagnaveita/portvakt/internal/usage/domain"
	"github.com/gin-gonic/gin"
)

// APIError is the wire form of every non-200 response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

var ErrNotFound = &APIError{
	Status:  http.StatusNotFound,
	Code:    "not_found",
	Message: "not found",
}

func invalidRequestError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "invalid request body",
	}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// kennitalaValidationError maps validator sentinels to per-field messages.
func kennitalaValidationError(err error) *APIError {
	switch {
	case errors.Is(err, kennitala.ErrInvalidLength):
		return newValidationError("kennitala", "invalid_length", "Kennitala must be exactly 10 digits")
	case errors.Is(err, kennitala.ErrInvalidDate):
		return newValidationError("kennitala", "invalid_date", "Invalid date in kennitala")
	default:
		return newValidationError("kennitala", "invalid_format",
			"Invalid kennitala format. Expected format: DDMMYY-XXXX or DDMMYYXXXX")
	}
}

// AbortWithError writes the response for err. Lookup misses become 404 with
// the directory's message; everything unrecognized is a generic 500 carrying
// the causing message.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	var notFound *usagedomain.NotFoundError
	if errors.As(err, &notFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": &APIError{
			Status:  http.StatusNotFound,
			Code:    "not_found",
			Message: notFound.Message,
		}})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: fmt.Sprintf("Error processing request: %s", err),
	}})
}

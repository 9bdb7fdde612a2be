package utils

import (
	"errors"
	"log"
	"net/http"

	"referral-coordination-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// ListResponse sends a success response carrying a collection and its count
func ListResponse(c *gin.Context, message string, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
		"count":   count,
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// ValidationErrorResponse sends a 400 with per-field details
func ValidationErrorResponse(c *gin.Context, message string, details []apperrors.FieldError) {
	body := gin.H{
		"success": false,
		"error":   message,
	}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(http.StatusBadRequest, body)
}

// HandleError normalizes a service error into the standard failure envelope.
// Unrecognized errors are reported as a generic 500.
func HandleError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		conflictErr   *apperrors.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		ValidationErrorResponse(c, validationErr.Message, validationErr.Details)
	case errors.As(err, &notFoundErr):
		ErrorResponse(c, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		ErrorResponse(c, http.StatusBadRequest, conflictErr.Message)
	default:
		log.Printf("Unexpected error: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

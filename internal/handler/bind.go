package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"referral-coordination-backend/pkg/apperrors"
	"referral-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds the request body into dst and translates validator failures
// into the per-field details contract. Returns false when a failure response
// was already written.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]apperrors.FieldError, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, apperrors.FieldError{
				Field:   fieldPath(fieldErr),
				Message: fieldMessage(fieldErr),
			})
		}
		utils.ValidationErrorResponse(c, "Validation failed", details)
		return false
	}

	utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
	return false
}

// fieldPath converts a validator namespace like
// "createOrganizationRequest.Contact.Email" into the JSON path "contact.email"
func fieldPath(fieldErr validator.FieldError) string {
	parts := strings.Split(fieldErr.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToLower(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, ".")
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("Must contain at least %s items", fieldErr.Param())
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	default:
		return "Invalid value"
	}
}

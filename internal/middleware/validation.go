package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// BindJSON decodes and validates the request body into obj. Validation failures
// come back as *apperrors.ValidationError keyed by JSON field name.
func BindJSON(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return translateValidationErrors(obj, verrs)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError().Add(typeErr.Field, fmt.Sprintf("%s has an invalid type", typeErr.Field))
	}

	return apperrors.NewBadRequestError("Malformed JSON request")
}

func translateValidationErrors(obj interface{}, verrs validator.ValidationErrors) *apperrors.ValidationError {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	result := apperrors.NewValidationError()
	for _, fe := range verrs {
		label := fe.Field()
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if l := sf.Tag.Get("label"); l != "" {
				label = l
			}
		}
		result.Add(fe.Field(), formatValidationError(fe, label))
	}
	return result
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError, label string) string {
	switch e.Tag() {
	case "required", "notblank":
		return label + " cannot be empty"
	case "email":
		return "Invalid email format"
	case "phone":
		return label + " must be between 10-15 digits"
	case "datetime":
		return label + " must be a date in YYYY-MM-DD format"
	case "min":
		if e.Kind() == reflect.String {
			return label + " must be at least " + e.Param() + " characters"
		}
		return label + " must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return label + " must be at most " + e.Param() + " characters"
		}
		return label + " must be at most " + e.Param()
	default:
		return label + " is invalid"
	}
}

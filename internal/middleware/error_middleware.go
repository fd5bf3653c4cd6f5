package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

const internalErrorMessage = "Internal Server Error"

// HandleAPIError translates err into the response envelope and aborts the request.
func HandleAPIError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError

	switch {
	case errors.As(err, &verr):
		abortWith(c, http.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, apperrors.ErrValidationFailed):
		abortWith(c, http.StatusBadRequest, "Validation failed", nil)
	case errors.Is(err, apperrors.ErrBadRequest):
		abortWith(c, http.StatusBadRequest, apperrors.Message(err, "Bad request"), nil)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWith(c, http.StatusNotFound, apperrors.Message(err, "Resource not found"), nil)
	case errors.Is(err, apperrors.ErrConflict):
		abortWith(c, http.StatusConflict, apperrors.Message(err, "Duplicate value exists"), nil)
	case errors.Is(err, apperrors.ErrUnauthorized):
		abortWith(c, http.StatusUnauthorized, apperrors.Message(err, "Unauthorized"), nil)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		abortWith(c, http.StatusForbidden, apperrors.Message(err, "Access denied"), nil)
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		abortWith(c, http.StatusInternalServerError, internalErrorMessage, nil)
	}
}

// RespondJSON writes a success envelope.
func RespondJSON(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.NewAPIResponse(status, message, data))
}

func abortWith(c *gin.Context, status int, message string, data interface{}) {
	c.AbortWithStatusJSON(status, dto.NewAPIResponse(status, message, data))
}

// Recovery converts panics into the 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		abortWith(c, http.StatusInternalServerError, internalErrorMessage, nil)
	})
}

// NotFound answers unmatched routes with the envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		abortWith(c, http.StatusNotFound, "Resource not found", nil)
	}
}

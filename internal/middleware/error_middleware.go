package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sectiontrack/internal/app/models/dto"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
	"github.com/yigit/sectiontrack/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps err onto a status code and a dto.ErrorResponse.
// Lookup misses always become 404 carrying the entity's own message.
func HandleAPIError(c *gin.Context, err error) {
	var ce *apperrors.CustomError
	hasCustom := errors.As(err, &ce)

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound,
			apperrors.Message(err, "Resource not found"), nil)
	case errors.Is(err, apperrors.ErrValidationFailed):
		var details interface{}
		if hasCustom && ce.Details != nil {
			details = ce.Details
		}
		abortWithError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed,
			apperrors.Message(err, "Validation failed"), details)
	case errors.Is(err, apperrors.ErrBadRequest):
		abortWithError(c, http.StatusBadRequest, dto.ErrorCodeBadRequest,
			apperrors.Message(err, "Bad request"), nil)
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		abortWithError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists,
			apperrors.Message(err, "Resource already exists"), nil)
	case errors.Is(err, apperrors.ErrConflict):
		abortWithError(c, http.StatusConflict, dto.ErrorCodeConflict,
			apperrors.Message(err, "Conflict"), nil)
	default:
		logger.FromContext(c.Request.Context()).Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		abortWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer,
			"Internal server error", nil)
	}
}

// RespondBadRequest writes a 400 for malformed input that never reached a service.
func RespondBadRequest(c *gin.Context, message string, details interface{}) {
	abortWithError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message, details)
}

func abortWithError(c *gin.Context, status int, code dto.ErrorCode, message string, details interface{}) {
	resp := dto.NewErrorResponse(code, message)
	if details != nil {
		resp = resp.WithDetails(details)
	}
	c.AbortWithStatusJSON(status, resp)
}

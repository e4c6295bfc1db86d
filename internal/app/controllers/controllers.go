package controllers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sectiontrack/internal/middleware"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// a 400 and returns false.
func parseIDParam(ctx *gin.Context, param, entity string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid "+entity+" ID"))
		return 0, false
	}
	return id, true
}

// bindOptionalJSON binds the request body into obj. An empty body leaves obj
// untouched. On failure it writes a 400 and returns false.
func bindOptionalJSON(ctx *gin.Context, obj interface{}, message string) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		middleware.RespondBadRequest(ctx, message, middleware.FieldErrors(err))
		return false
	}
	return true
}

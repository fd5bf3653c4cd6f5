// Package controllers handles HTTP request handling
package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// parseIDParam reads a positive int64 path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s: must be a positive integer", name))
	}
	return id, nil
}

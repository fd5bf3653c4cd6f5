package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 0 // Pages are 0-based
	DefaultSort     = "id,asc"
)

// ParsePageQuery extracts and validates page, size and sort from the request.
// Sort fields are resolved against columns so only whitelisted columns reach SQL.
func ParsePageQuery(c *gin.Context, columns models.SortColumns) (models.PageQuery, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 0 {
		return models.PageQuery{}, apperrors.NewBadRequestError("Page index must be a non-negative integer")
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size <= 0 {
		return models.PageQuery{}, apperrors.NewBadRequestError("Page size must be a positive integer")
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	sortSpec, err := ParseSort(c.DefaultQuery("sort", DefaultSort), columns)
	if err != nil {
		return models.PageQuery{}, err
	}

	return models.PageQuery{Page: page, Size: size, Sort: sortSpec}, nil
}

// ParseSort parses a "field,direction" sort expression. The direction is optional
// and defaults to ascending.
func ParseSort(raw string, columns models.SortColumns) (models.SortSpec, error) {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultSort
	}

	field, direction, _ := strings.Cut(raw, ",")
	field = strings.TrimSpace(field)
	direction = strings.TrimSpace(direction)

	column, ok := columns[field]
	if !ok {
		return models.SortSpec{}, apperrors.NewBadRequestError(fmt.Sprintf("Unknown sort field: %s", field))
	}

	spec := models.SortSpec{Field: field, Column: column}
	switch strings.ToLower(direction) {
	case "", "asc":
	case "desc":
		spec.Desc = true
	default:
		return models.SortSpec{}, apperrors.NewBadRequestError(fmt.Sprintf("Invalid sort direction: %s", direction))
	}

	return spec, nil
}

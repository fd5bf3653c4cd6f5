package dto

import (
	"time"

	"github.com/yigit/schoolhub/internal/app/models"
)

// APIResponse is the envelope wrapped around every response body.
type APIResponse struct {
	Status    int         `json:"status" example:"200"`
	Message   string      `json:"message" example:"Operation completed successfully"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse creates an envelope stamped with the current time.
func NewAPIResponse(status int, message string, data interface{}) APIResponse {
	return APIResponse{
		Status:    status,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Page is a single page of results together with the totals of the full result set.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number" example:"0"`
	Size             int   `json:"size" example:"10"`
	TotalElements    int64 `json:"totalElements" example:"42"`
	TotalPages       int   `json:"totalPages" example:"5"`
	NumberOfElements int   `json:"numberOfElements" example:"10"`
	First            bool  `json:"first" example:"true"`
	Last             bool  `json:"last" example:"false"`
	Empty            bool  `json:"empty" example:"false"`
}

// NewPage builds a page from the items of the requested slice and the total count.
func NewPage[T any](items []T, total int64, query models.PageQuery) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if query.Size > 0 {
		totalPages = int((total + int64(query.Size) - 1) / int64(query.Size))
	}

	return Page[T]{
		Content:          items,
		Number:           query.Page,
		Size:             query.Size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(items),
		First:            query.Page == 0,
		Last:             query.Page >= totalPages-1,
		Empty:            len(items) == 0,
	}
}

// MapPage converts the content of a page, keeping its totals.
func MapPage[S, T any](page Page[S], fn func(S) T) Page[T] {
	content := make([]T, 0, len(page.Content))
	for _, item := range page.Content {
		content = append(content, fn(item))
	}

	return Page[T]{
		Content:          content,
		Number:           page.Number,
		Size:             page.Size,
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages,
		NumberOfElements: page.NumberOfElements,
		First:            page.First,
		Last:             page.Last,
		Empty:            page.Empty,
	}
}

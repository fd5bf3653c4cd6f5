package models

import (
	"fmt"
	"math"
)

// PageQuery holds validated paging and ordering parameters.
type PageQuery struct {
	Page int
	Size int
	Sort SortSpec
}

// SortSpec is a resolved sort column. Column is always a value taken from one
// of the SortColumns maps below, never raw user input.
type SortSpec struct {
	Field  string
	Column string
	Desc   bool
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt64,
// the largest OFFSET PostgreSQL accepts, so far-out pages come back empty.
func (q PageQuery) Offset() uint64 {
	if q.Page <= 0 || q.Size <= 0 {
		return 0
	}
	if uint64(q.Page) > math.MaxInt64/uint64(q.Size) {
		return math.MaxInt64
	}
	return uint64(q.Page) * uint64(q.Size)
}

// OrderBy returns the ORDER BY clause for the query. When alias is given the
// column is qualified with it.
func (q PageQuery) OrderBy(alias ...string) string {
	dir := "ASC"
	if q.Sort.Desc {
		dir = "DESC"
	}
	column := q.Sort.Column
	if len(alias) > 0 && alias[0] != "" {
		column = alias[0] + "." + column
	}
	return fmt.Sprintf("%s %s", column, dir)
}

// SortColumns maps the sort field names accepted by the API to table columns.
type SortColumns map[string]string

// Sortable fields per entity.
var (
	AdminSortColumns = SortColumns{
		"id":    "id",
		"name":  "name",
		"email": "email",
	}
	TeacherSortColumns = SortColumns{
		"id":         "id",
		"name":       "name",
		"email":      "email",
		"subject":    "subject",
		"department": "department",
		"age":        "age",
	}
	StudentSortColumns = SortColumns{
		"id":             "id",
		"name":           "name",
		"email":          "email",
		"studentId":      "student_id",
		"department":     "department",
		"grade":          "grade",
		"age":            "age",
		"enrollmentDate": "enrollment_date",
	}
)

package helpers

import (
	"errors"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/students?"+rawQuery, nil)
	return c
}

func TestParsePageQueryDefaults(t *testing.T) {
	q, err := ParsePageQuery(contextWithQuery(""), models.StudentSortColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Page != 0 || q.Size != DefaultPageSize {
		t.Fatalf("expected page 0 size 10, got page %d size %d", q.Page, q.Size)
	}
	if q.OrderBy() != "id ASC" {
		t.Fatalf("expected default order id ASC, got %q", q.OrderBy())
	}
	if q.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", q.Offset())
	}
}

func TestParsePageQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantOrder string
		wantSize  int
		wantErr   bool
	}{
		{name: "desc upper case", query: "sort=name,DESC", wantOrder: "name DESC", wantSize: 10},
		{name: "missing direction", query: "sort=email", wantOrder: "email ASC", wantSize: 10},
		{name: "mapped column", query: "sort=studentId,asc&size=5", wantOrder: "student_id ASC", wantSize: 5},
		{name: "size capped", query: "size=1000", wantOrder: "id ASC", wantSize: MaxPageSize},
		{name: "bad direction", query: "sort=name,sideways", wantErr: true},
		{name: "unknown field", query: "sort=password,asc", wantErr: true},
		{name: "negative page", query: "page=-1", wantErr: true},
		{name: "zero size", query: "size=0", wantErr: true},
		{name: "non numeric page", query: "page=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParsePageQuery(contextWithQuery(tt.query), models.StudentSortColumns)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrBadRequest) {
					t.Fatalf("expected bad request, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := q.OrderBy(); got != tt.wantOrder {
				t.Fatalf("expected order %q, got %q", tt.wantOrder, got)
			}
			if q.Size != tt.wantSize {
				t.Fatalf("expected size %d, got %d", tt.wantSize, q.Size)
			}
		})
	}
}

func TestOffsetAndQualifiedOrder(t *testing.T) {
	q, err := ParsePageQuery(contextWithQuery("page=3&size=20&sort=grade,desc"), models.StudentSortColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Offset() != 60 {
		t.Fatalf("expected offset 60, got %d", q.Offset())
	}
	if got := q.OrderBy("s"); got != "s.grade DESC" {
		t.Fatalf("expected qualified order, got %q", got)
	}
}

func TestOffsetSaturatesForHugePages(t *testing.T) {
	q, err := ParsePageQuery(contextWithQuery("page=9223372036854775807&size=10"), models.StudentSortColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Offset() != math.MaxInt64 {
		t.Fatalf("expected offset to saturate at MaxInt64, got %d", q.Offset())
	}

	q.Page = 922337203685477581
	if q.Offset() != math.MaxInt64 {
		t.Fatalf("expected offset to saturate just past the int64 boundary, got %d", q.Offset())
	}
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"jo":     "%jo%",
		"50%":    `%50\%%`,
		"a_b":    `%a\_b%`,
		`c:\dir`: `%c:\\dir%`,
	}
	for in, want := range tests {
		if got := ContainsPattern(in); got != want {
			t.Fatalf("ContainsPattern(%q) = %q, want %q", in, got, want)
		}
	}
}

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/validation"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func init() {
	gin.SetMode(gin.TestMode)
	validation.Register()
}

func serve(t *testing.T, handler gin.HandlerFunc, method, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := gin.New()
	r.Use(Recovery())
	r.Handle(method, "/x", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, "/x", strings.NewReader(body)))

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "not found", err: apperrors.ErrStudentNotFound, status: http.StatusNotFound, message: "Student not found"},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", apperrors.ErrTeacherNotFound), status: http.StatusNotFound, message: "Teacher not found"},
		{name: "conflict", err: apperrors.ErrEmailAlreadyExists, status: http.StatusConflict, message: "Email already exists"},
		{name: "bad request", err: apperrors.NewBadRequestError("Invalid sort direction: up"), status: http.StatusBadRequest, message: "Invalid sort direction: up"},
		{name: "unauthorized", err: apperrors.ErrUserNotFound, status: http.StatusUnauthorized, message: "User not found"},
		{name: "forbidden", err: apperrors.ErrAccessDenied, status: http.StatusForbidden, message: "Access denied"},
		{name: "internal", err: errors.New("connection reset by peer"), status: http.StatusInternalServerError, message: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := serve(t, func(c *gin.Context) { HandleAPIError(c, tt.err) }, "GET", "")
			if w.Code != tt.status || env.Status != tt.status {
				t.Fatalf("expected status %d, got %d / %d", tt.status, w.Code, env.Status)
			}
			if env.Message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, env.Message)
			}
			if string(env.Data) != "null" {
				t.Fatalf("expected null data, got %s", env.Data)
			}
		})
	}
}

func TestRecoveryReturnsEnvelope(t *testing.T) {
	w, env := serve(t, func(c *gin.Context) { panic("boom") }, "GET", "")
	if w.Code != http.StatusInternalServerError || env.Message != "Internal Server Error" {
		t.Fatalf("unexpected response %d %+v", w.Code, env)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Fatalf("panic detail must not leak: %s", w.Body.String())
	}
}

func TestBindJSONFieldMessages(t *testing.T) {
	handler := func(c *gin.Context) {
		var req dto.TeacherRequest
		if err := BindJSON(c, &req); err != nil {
			HandleAPIError(c, err)
			return
		}
		RespondJSON(c, http.StatusOK, "ok", nil)
	}

	body := `{"name":"  ","email":"not-an-email","subject":"Math","department":"Sci","age":17,"phone":"12ab","password":"123"}`
	w, env := serve(t, handler, "POST", body)
	if w.Code != http.StatusBadRequest || env.Message != "Validation failed" {
		t.Fatalf("unexpected response %d %+v", w.Code, env)
	}

	var fields map[string]string
	if err := json.Unmarshal(env.Data, &fields); err != nil {
		t.Fatalf("expected field map: %v", err)
	}
	want := map[string]string{
		"name":     "Teacher name cannot be empty",
		"email":    "Invalid email format",
		"age":      "Teacher age must be at least 18",
		"phone":    "Phone number must be between 10-15 digits",
		"password": "Password must be at least 6 characters",
	}
	for field, msg := range want {
		if fields[field] != msg {
			t.Fatalf("field %s: expected %q, got %q", field, msg, fields[field])
		}
	}
	if _, ok := fields["subject"]; ok {
		t.Fatalf("valid field must not be reported")
	}
}

func TestBindJSONMalformedBody(t *testing.T) {
	handler := func(c *gin.Context) {
		var req dto.LoginRequest
		HandleAPIError(c, BindJSON(c, &req))
	}

	w, env := serve(t, handler, "POST", `{"email":`)
	if w.Code != http.StatusBadRequest || env.Message != "Malformed JSON request" {
		t.Fatalf("unexpected response %d %+v", w.Code, env)
	}
}

func TestBindJSONTypeMismatch(t *testing.T) {
	handler := func(c *gin.Context) {
		var req dto.StudentRequest
		HandleAPIError(c, BindJSON(c, &req))
	}

	w, env := serve(t, handler, "POST", `{"name":"A","email":"a@b.co","studentId":"S1","department":"D","age":"old"}`)
	if w.Code != http.StatusBadRequest || env.Message != "Validation failed" {
		t.Fatalf("unexpected response %d %+v", w.Code, env)
	}
	if !strings.Contains(string(env.Data), `"age"`) {
		t.Fatalf("expected age field error, got %s", env.Data)
	}
}

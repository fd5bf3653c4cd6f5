package auth

import (
	"testing"

	"github.com/yigit/schoolhub/internal/app/models"
)

func TestDefaultPolicy(t *testing.T) {
	admin := &Identity{ID: 1, Email: "admin@school.edu", Authority: models.RoleAdmin}
	teacher := &Identity{ID: 2, Email: "teacher@school.edu", Authority: models.RoleTeacher}

	tests := []struct {
		name   string
		method string
		path   string
		id     *Identity
		want   bool
	}{
		{name: "admin login is public", method: "POST", path: "/api/admins/login", want: true},
		{name: "teacher login is public", method: "POST", path: "/api/teachers/login", want: true},
		{name: "preflight is public", method: "OPTIONS", path: "/api/students/3", want: true},
		{name: "anonymous admin list", method: "GET", path: "/api/admins", want: false},
		{name: "teacher on admins", method: "GET", path: "/api/admins", id: teacher, want: false},
		{name: "teacher creating admin", method: "POST", path: "/api/admins", id: teacher, want: false},
		{name: "admin on admins", method: "DELETE", path: "/api/admins/4", id: admin, want: true},
		{name: "teacher on teachers", method: "GET", path: "/api/teachers/search", id: teacher, want: true},
		{name: "admin on students", method: "PUT", path: "/api/students/1/teacher/2", id: admin, want: true},
		{name: "teacher on students", method: "GET", path: "/api/students", id: teacher, want: true},
		{name: "anonymous students", method: "GET", path: "/api/students", want: false},
		{name: "prefix must end at segment", method: "GET", path: "/api/studentsx", id: nil, want: false},
		{name: "unlisted path needs identity", method: "GET", path: "/api/unknown", want: false},
		{name: "unlisted path with identity", method: "GET", path: "/api/unknown", id: teacher, want: true},
	}

	policy := DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Allows(tt.method, tt.path, tt.id); got != tt.want {
				t.Fatalf("Allows(%s %s) = %v, want %v", tt.method, tt.path, got, tt.want)
			}
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	policy := NewPolicy(
		Rule{Pattern: "/api/things/open", Access: PermitAll},
		Rule{Pattern: "/api/things/**", Access: AnyAuthority, Authorities: []models.Role{models.RoleAdmin}},
		Rule{Pattern: "/api/things/open", Access: AnyAuthority, Authorities: []models.Role{models.RoleAdmin}},
	)

	if !policy.Allows("GET", "/api/things/open", nil) {
		t.Fatalf("expected earlier permit rule to win")
	}
	if policy.Allows("GET", "/api/things/closed", nil) {
		t.Fatalf("expected anonymous caller to be rejected")
	}
}

func TestWithPublicPaths(t *testing.T) {
	policy := DefaultPolicy(WithPublicPaths("/swagger/**"))

	if !policy.Allows("GET", "/swagger/index.html", nil) {
		t.Fatalf("expected swagger to be public when configured")
	}
	if DefaultPolicy().Allows("GET", "/swagger/index.html", nil) {
		t.Fatalf("expected swagger to require identity by default")
	}
}

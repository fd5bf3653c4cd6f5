package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories/repotest"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type fixture struct {
	store    *repotest.Store
	admins   AdminService
	teachers TeacherService
	students StudentService
	auth     AuthService
	jwt      *auth.JWTService
}

func newFixture() *fixture {
	store := repotest.NewStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", AccessTokenExp: 24 * time.Hour, TokenIssuer: "test"})
	return &fixture{
		store:    store,
		admins:   NewAdminService(store.Admins()),
		teachers: NewTeacherService(store.Teachers()),
		students: NewStudentService(store.Students(), store.Teachers()),
		auth:     NewAuthService(store.Admins(), store.Teachers(), jwtService),
		jwt:      jwtService,
	}
}

func firstPage(size int) models.PageQuery {
	return models.PageQuery{Page: 0, Size: size, Sort: models.SortSpec{Field: "id", Column: "id"}}
}

func ptr[T any](v T) *T { return &v }

func teacherRequest(name, email string) dto.TeacherRequest {
	return dto.TeacherRequest{
		Name:       name,
		Email:      email,
		Subject:    "Math",
		Department: "Science",
		Password:   "secret123",
	}
}

func studentRequest(name, email, studentID string) dto.StudentRequest {
	return dto.StudentRequest{
		Name:       name,
		Email:      email,
		StudentID:  studentID,
		Department: "Science",
	}
}

func TestCreateAdminHashesPasswordAndRejectsDuplicateEmail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.admins.CreateAdmin(ctx, dto.AdminRequest{Name: "Ada", Email: "ada@school.edu", Password: "secret123"})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if created.ID == 0 || created.Email != "ada@school.edu" {
		t.Fatalf("unexpected response %+v", created)
	}

	stored, err := f.store.Admins().GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Password == "secret123" || !auth.CheckPassword(stored.Password, "secret123") {
		t.Fatalf("expected a bcrypt hash of the password")
	}

	_, err = f.admins.CreateAdmin(ctx, dto.AdminRequest{Name: "Other", Email: "ada@school.edu", Password: "secret456"})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	page, err := f.admins.ListAdmins(ctx, firstPage(10))
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if page.TotalElements != 1 {
		t.Fatalf("expected exactly one admin after rejected duplicate, got %d", page.TotalElements)
	}
}

func TestUpdateAdminPasswordHandling(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.admins.CreateAdmin(ctx, dto.AdminRequest{Name: "Ada", Email: "ada@school.edu", Password: "original"})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	if _, err := f.admins.UpdateAdmin(ctx, created.ID, dto.AdminUpdateRequest{Name: "Ada L", Email: "ada@school.edu"}); err != nil {
		t.Fatalf("UpdateAdmin without password: %v", err)
	}
	if _, err := f.auth.LoginAdmin(ctx, dto.LoginRequest{Email: "ada@school.edu", Password: "original"}); err != nil {
		t.Fatalf("expected original password to still work: %v", err)
	}

	if _, err := f.admins.UpdateAdmin(ctx, created.ID, dto.AdminUpdateRequest{Name: "Ada L", Email: "ada@school.edu", Password: "changed1"}); err != nil {
		t.Fatalf("UpdateAdmin with password: %v", err)
	}
	if _, err := f.auth.LoginAdmin(ctx, dto.LoginRequest{Email: "ada@school.edu", Password: "original"}); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}
	if _, err := f.auth.LoginAdmin(ctx, dto.LoginRequest{Email: "ada@school.edu", Password: "changed1"}); err != nil {
		t.Fatalf("expected new password to work: %v", err)
	}
}

func TestUpdateEmailUniquenessExcludesSelf(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, _ := f.teachers.CreateTeacher(ctx, teacherRequest("Alice", "alice@school.edu"))
	if _, err := f.teachers.CreateTeacher(ctx, teacherRequest("Bob", "bob@school.edu")); err != nil {
		t.Fatalf("CreateTeacher: %v", err)
	}

	same := dto.TeacherUpdateRequest{Name: "Alice B", Email: "alice@school.edu", Subject: "Math", Department: "Science"}
	if _, err := f.teachers.UpdateTeacher(ctx, a.ID, same); err != nil {
		t.Fatalf("keeping own email must succeed: %v", err)
	}

	taken := same
	taken.Email = "bob@school.edu"
	if _, err := f.teachers.UpdateTeacher(ctx, a.ID, taken); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict on another teacher's email, got %v", err)
	}
}

func TestNotFoundMessages(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "admin", err: func() error { _, err := f.admins.GetAdminByID(ctx, 99); return err }(), want: "Admin not found"},
		{name: "teacher", err: f.teachers.DeleteTeacher(ctx, 99), want: "Teacher not found"},
		{name: "student", err: func() error { _, err := f.students.GetStudentByID(ctx, 99); return err }(), want: "Student not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, apperrors.ErrResourceNotFound) {
				t.Fatalf("expected not found, got %v", tt.err)
			}
			if got := apperrors.Message(tt.err, ""); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoginMessages(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.teachers.CreateTeacher(ctx, teacherRequest("Tina", "tina@school.edu")); err != nil {
		t.Fatalf("CreateTeacher: %v", err)
	}

	_, err := f.auth.LoginTeacher(ctx, dto.LoginRequest{Email: "nobody@school.edu", Password: "secret123"})
	if apperrors.Message(err, "") != "Invalid email" || !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected Invalid email not-found error, got %v", err)
	}

	_, err = f.auth.LoginTeacher(ctx, dto.LoginRequest{Email: "tina@school.edu", Password: "wrong"})
	if apperrors.Message(err, "") != "Invalid password" || !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected Invalid password not-found error, got %v", err)
	}

	token, err := f.auth.LoginTeacher(ctx, dto.LoginRequest{Email: "tina@school.edu", Password: "secret123"})
	if err != nil {
		t.Fatalf("LoginTeacher: %v", err)
	}
	if token.Role != models.RoleTeacher || token.TokenType != "Bearer" || token.ExpiresIn != 86400 {
		t.Fatalf("unexpected token response %+v", token)
	}

	claims, err := f.jwt.ValidateToken(token.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "tina@school.edu" || claims.Role != models.RoleTeacher {
		t.Fatalf("unexpected claims %+v", claims)
	}

	// A teacher account cannot log in through the admin endpoint.
	if _, err := f.auth.LoginAdmin(ctx, dto.LoginRequest{Email: "tina@school.edu", Password: "secret123"}); apperrors.Message(err, "") != "Invalid email" {
		t.Fatalf("expected Invalid email on admin login, got %v", err)
	}
}

func TestResolveIdentityPrefersAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.teachers.CreateTeacher(ctx, teacherRequest("Dual", "dual@school.edu")); err != nil {
		t.Fatalf("CreateTeacher: %v", err)
	}
	id, err := f.auth.ResolveIdentity(ctx, "dual@school.edu")
	if err != nil || id.Authority != models.RoleTeacher {
		t.Fatalf("expected TEACHER identity, got %+v, %v", id, err)
	}

	if _, err := f.admins.CreateAdmin(ctx, dto.AdminRequest{Name: "Dual", Email: "dual@school.edu", Password: "secret123"}); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	id, err = f.auth.ResolveIdentity(ctx, "dual@school.edu")
	if err != nil || id.Authority != models.RoleAdmin {
		t.Fatalf("expected ADMIN identity to win, got %+v, %v", id, err)
	}

	_, err = f.auth.ResolveIdentity(ctx, "ghost@school.edu")
	if !errors.Is(err, apperrors.ErrUnauthorized) || apperrors.Message(err, "") != "User not found" {
		t.Fatalf("expected User not found, got %v", err)
	}
}

func TestStudentTeacherAssignment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	teacher, _ := f.teachers.CreateTeacher(ctx, teacherRequest("Grace", "grace@school.edu"))
	student, err := f.students.CreateStudent(ctx, studentRequest("Alan", "alan@school.edu", "S1"))
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	if _, err := f.students.AssignTeacher(ctx, student.ID, 999); apperrors.Message(err, "") != "Teacher not found" {
		t.Fatalf("expected Teacher not found, got %v", err)
	}
	if _, err := f.students.AssignTeacher(ctx, 999, teacher.ID); apperrors.Message(err, "") != "Student not found" {
		t.Fatalf("expected Student not found, got %v", err)
	}

	assigned, err := f.students.AssignTeacher(ctx, student.ID, teacher.ID)
	if err != nil {
		t.Fatalf("AssignTeacher: %v", err)
	}
	if assigned.TeacherID == nil || *assigned.TeacherID != teacher.ID || assigned.TeacherName == nil || *assigned.TeacherName != "Grace" {
		t.Fatalf("unexpected assignment %+v", assigned)
	}

	got, _ := f.teachers.GetTeacherByID(ctx, teacher.ID)
	if len(got.StudentIDs) != 1 || got.StudentIDs[0] != student.ID {
		t.Fatalf("expected teacher to list the student, got %v", got.StudentIDs)
	}

	// Update without teacherId keeps the assignment.
	req := studentRequest("Alan T", "alan@school.edu", "S1")
	updated, err := f.students.UpdateStudent(ctx, student.ID, req)
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}
	if updated.TeacherID == nil || *updated.TeacherID != teacher.ID {
		t.Fatalf("expected assignment to survive update, got %+v", updated.TeacherID)
	}

	removed, err := f.students.RemoveTeacher(ctx, student.ID)
	if err != nil || removed.TeacherID != nil || removed.TeacherName != nil {
		t.Fatalf("expected teacher removed, got %+v, %v", removed, err)
	}
	if _, err := f.students.RemoveTeacher(ctx, student.ID); err != nil {
		t.Fatalf("removing twice must be a no-op: %v", err)
	}
}

func TestCreateStudentValidatesReferencesAndUniqueness(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := studentRequest("Alan", "alan@school.edu", "S1")
	req.TeacherID = ptr(int64(42))
	if _, err := f.students.CreateStudent(ctx, req); apperrors.Message(err, "") != "Teacher not found" {
		t.Fatalf("expected Teacher not found, got %v", err)
	}

	req.TeacherID = nil
	req.EnrollmentDate = ptr("2024-09-01")
	created, err := f.students.CreateStudent(ctx, req)
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if created.EnrollmentDate == nil || *created.EnrollmentDate != "2024-09-01" {
		t.Fatalf("unexpected enrollment date %v", created.EnrollmentDate)
	}

	dupEmail := studentRequest("Other", "alan@school.edu", "S2")
	if _, err := f.students.CreateStudent(ctx, dupEmail); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected email conflict, got %v", err)
	}

	dupID := studentRequest("Other", "other@school.edu", "S1")
	if _, err := f.students.CreateStudent(ctx, dupID); apperrors.Message(err, "") != "Student ID already exists" {
		t.Fatalf("expected student id conflict, got %v", err)
	}
}

func TestDeleteTeacherOrphansStudents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	teacher, _ := f.teachers.CreateTeacher(ctx, teacherRequest("Grace", "grace@school.edu"))
	req := studentRequest("Alan", "alan@school.edu", "S1")
	req.TeacherID = &teacher.ID
	student, err := f.students.CreateStudent(ctx, req)
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	if err := f.teachers.DeleteTeacher(ctx, teacher.ID); err != nil {
		t.Fatalf("DeleteTeacher: %v", err)
	}

	got, err := f.students.GetStudentByID(ctx, student.ID)
	if err != nil {
		t.Fatalf("student must survive teacher deletion: %v", err)
	}
	if got.TeacherID != nil || got.TeacherName != nil {
		t.Fatalf("expected student to be unassigned, got %+v", got)
	}
}

func TestPaginationAndSearch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	names := []string{"John", "Joanna", "Mary", "Bjorn", "Eve"}
	for i, n := range names {
		req := studentRequest(n, n+"@school.edu", "S"+string(rune('0'+i)))
		if _, err := f.students.CreateStudent(ctx, req); err != nil {
			t.Fatalf("CreateStudent %s: %v", n, err)
		}
	}

	p, err := f.students.ListStudents(ctx, firstPage(2))
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(p.Content) != 2 || p.TotalElements != 5 || p.TotalPages != 3 {
		t.Fatalf("unexpected page %+v", p)
	}

	beyond := firstPage(2)
	beyond.Page = 5
	p, err = f.students.ListStudents(ctx, beyond)
	if err != nil {
		t.Fatalf("ListStudents beyond range: %v", err)
	}
	if len(p.Content) != 0 || !p.Empty || p.TotalElements != 5 {
		t.Fatalf("expected empty out-of-range page, got %+v", p)
	}

	p, err = f.students.SearchStudents(ctx, "JO", firstPage(10))
	if err != nil {
		t.Fatalf("SearchStudents: %v", err)
	}
	if p.TotalElements != 3 {
		t.Fatalf("expected John, Joanna and Bjorn, got %d", p.TotalElements)
	}

	byName := models.PageQuery{Page: 0, Size: 10, Sort: models.SortSpec{Field: "name", Column: "name", Desc: true}}
	p, err = f.students.ListStudents(ctx, byName)
	if err != nil {
		t.Fatalf("ListStudents sorted: %v", err)
	}
	if p.Content[0].Name != "Mary" || p.Content[4].Name != "Bjorn" {
		t.Fatalf("unexpected order: first %s last %s", p.Content[0].Name, p.Content[4].Name)
	}
}

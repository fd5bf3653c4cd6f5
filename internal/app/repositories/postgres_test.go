package repositories

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/migrations"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// newTestPool connects to TEST_DATABASE_URL, migrates and empties the schema.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrations.NewMigrator(&db.PostgresDB{Pool: pool}).Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE students, teachers, admins RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func byID() models.PageQuery {
	return models.PageQuery{Page: 0, Size: 10, Sort: models.SortSpec{Field: "id", Column: "id"}}
}

func TestAdminRepositoryPostgres(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(newTestPool(t))

	admin := &models.Admin{Name: "Ada", Email: "ada@school.edu", Password: "hash"}
	if err := repo.Create(ctx, admin); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if admin.ID == 0 || admin.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamps, got %+v", admin)
	}

	dup := &models.Admin{Name: "Other", Email: "ada@school.edu", Password: "hash"}
	if err := repo.Create(ctx, dup); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	taken, err := repo.ExistsByEmail(ctx, "ada@school.edu", admin.ID)
	if err != nil || taken {
		t.Fatalf("expected own email to be free when excluded, got %v %v", taken, err)
	}

	if err := repo.Delete(ctx, admin.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, admin.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := repo.GetByID(ctx, admin.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStudentTeacherRelationPostgres(t *testing.T) {
	ctx := context.Background()
	pool := newTestPool(t)
	teachers := NewTeacherRepository(pool)
	students := NewStudentRepository(pool)

	teacher := &models.Teacher{Name: "Grace", Email: "grace@school.edu", Subject: "CS", Department: "Eng", Password: "hash"}
	if err := teachers.Create(ctx, teacher); err != nil {
		t.Fatalf("create teacher: %v", err)
	}

	student := &models.Student{Name: "Alan", Email: "alan@school.edu", StudentID: "S-1", Department: "Math", TeacherID: &teacher.ID}
	if err := students.Create(ctx, student); err != nil {
		t.Fatalf("create student: %v", err)
	}

	clash := &models.Student{Name: "Alan 2", Email: "alan2@school.edu", StudentID: "S-1", Department: "Math"}
	if err := students.Create(ctx, clash); !errors.Is(err, apperrors.ErrStudentIDExists) {
		t.Fatalf("expected ErrStudentIDExists, got %v", err)
	}

	missing := int64(999999)
	orphan := &models.Student{Name: "Bob", Email: "bob@school.edu", StudentID: "S-2", Department: "Math", TeacherID: &missing}
	if err := students.Create(ctx, orphan); !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound for a dangling teacher id, got %v", err)
	}

	loaded, err := teachers.GetByID(ctx, teacher.ID)
	if err != nil {
		t.Fatalf("get teacher: %v", err)
	}
	if len(loaded.StudentIDs) != 1 || loaded.StudentIDs[0] != student.ID {
		t.Fatalf("expected student ids [%d], got %v", student.ID, loaded.StudentIDs)
	}

	got, err := students.GetByID(ctx, student.ID)
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if got.Teacher == nil || got.Teacher.Name != "Grace" {
		t.Fatalf("expected joined teacher name, got %+v", got.Teacher)
	}

	if err := teachers.Delete(ctx, teacher.ID); err != nil {
		t.Fatalf("delete teacher: %v", err)
	}
	got, err = students.GetByID(ctx, student.ID)
	if err != nil {
		t.Fatalf("get student after teacher delete: %v", err)
	}
	if got.TeacherID != nil || got.Teacher != nil {
		t.Fatalf("expected student to be unassigned, got %+v", got)
	}
}

func TestSearchEscapesWildcardsPostgres(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(newTestPool(t))

	for i, name := range []string{"Alice", "100% Malik", "Bob_Ross"} {
		st := &models.Student{Name: name, Email: name + "@school.edu", StudentID: string(rune('A' + i)), Department: "D"}
		if err := repo.Create(ctx, st); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	tests := map[string]int64{
		"ALI": 2,
		"%":   1,
		"_":   1,
		"zzz": 0,
	}
	for term, want := range tests {
		_, total, err := repo.SearchByName(ctx, term, byID())
		if err != nil {
			t.Fatalf("search %q: %v", term, err)
		}
		if total != want {
			t.Fatalf("search %q: expected %d matches, got %d", term, want, total)
		}
	}

	page, total, err := repo.List(ctx, models.PageQuery{Page: 1, Size: 2, Sort: models.SortSpec{Field: "name", Column: "name", Desc: true}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(page) != 1 {
		t.Fatalf("expected one item on page 1 of 3, got %d of %d", len(page), total)
	}

	page, total, err = repo.List(ctx, models.PageQuery{Page: math.MaxInt, Size: 10, Sort: models.SortSpec{Field: "id", Column: "id"}})
	if err != nil {
		t.Fatalf("list far-out page: %v", err)
	}
	if total != 3 || len(page) != 0 {
		t.Fatalf("expected an empty far-out page, got %d of %d", len(page), total)
	}
}

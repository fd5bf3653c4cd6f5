package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Unique constraint names from the schema
const (
	constraintAdminEmail       = "admins_email_key"
	constraintTeacherEmail     = "teachers_email_key"
	constraintStudentEmail     = "students_email_key"
	constraintStudentStudentID = "students_student_id_key"
)

// IAdminRepository defines admin persistence
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query models.PageQuery) ([]*models.Admin, int64, error)
	SearchByName(ctx context.Context, name string, query models.PageQuery) ([]*models.Admin, int64, error)
	Count(ctx context.Context) (int64, error)
}

// ITeacherRepository defines teacher persistence. Teachers returned by lookups
// carry the ids of their students.
type ITeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query models.PageQuery) ([]*models.Teacher, int64, error)
	SearchByName(ctx context.Context, name string, query models.PageQuery) ([]*models.Teacher, int64, error)
}

// IStudentRepository defines student persistence. Students returned by lookups
// carry their teacher's id and name when assigned.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByStudentID(ctx context.Context, studentID string, excludeID int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query models.PageQuery) ([]*models.Student, int64, error)
	SearchByName(ctx context.Context, name string, query models.PageQuery) ([]*models.Student, int64, error)
	SetTeacher(ctx context.Context, studentID int64, teacherID *int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository   *AdminRepository
	TeacherRepository *TeacherRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:   NewAdminRepository(db),
		TeacherRepository: NewTeacherRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// nameFilter restricts a query to rows whose column contains name, ignoring case.
func nameFilter(column, name string) squirrel.Sqlizer {
	return squirrel.ILike{column: helpers.ContainsPattern(name)}
}

// excludeID adds "id <> excludeID" when excludeID is set.
func excludeID(where squirrel.And, column string, id int64) squirrel.And {
	if id > 0 {
		where = append(where, squirrel.NotEq{column: id})
	}
	return where
}

// translateWriteError maps constraint violations to application errors.
func translateWriteError(err error) error {
	if dberrors.IsUniqueViolation(err) {
		switch dberrors.ConstraintName(err) {
		case constraintAdminEmail, constraintTeacherEmail, constraintStudentEmail:
			return apperrors.ErrEmailAlreadyExists
		case constraintStudentStudentID:
			return apperrors.ErrStudentIDExists
		default:
			return apperrors.ErrDuplicateValue
		}
	}
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

var studentColumns = []string{
	"s.id", "s.name", "s.email", "s.student_id", "s.phone", "s.address", "s.department",
	"s.enrollment_date", "s.age", "s.grade", "s.teacher_id", "s.created_at", "s.updated_at", "t.name",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanStudent(row rowScanner) (*models.Student, error) {
	s := &models.Student{}
	var teacherName *string
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.StudentID, &s.Phone, &s.Address, &s.Department,
		&s.EnrollmentDate, &s.Age, &s.Grade, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt, &teacherName)
	if err != nil {
		return nil, err
	}
	if s.TeacherID != nil && teacherName != nil {
		s.Teacher = &models.Teacher{ID: *s.TeacherID, Name: *teacherName}
	}
	return s, nil
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select(studentColumns...).
		From("students s").
		LeftJoin("teachers t ON t.id = s.teacher_id")
}

// Create inserts a new student and fills its id and timestamps
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "email", "student_id", "phone", "address", "department",
			"enrollment_date", "age", "grade", "teacher_id").
		Values(student.Name, student.Email, student.StudentID, student.Phone, student.Address, student.Department,
			student.EnrollmentDate, student.Age, student.Grade, student.TeacherID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if appErr := translateWriteError(err); appErr != nil {
			return appErr
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by ID together with its teacher's name
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.selectStudents().
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return student, nil
}

// ExistsByEmail reports whether another student uses email
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string, excludeStudentID int64) (bool, error) {
	return exists(ctx, r.db, r.sb, "students", excludeID(squirrel.And{squirrel.Eq{"email": email}}, "id", excludeStudentID))
}

// ExistsByStudentID reports whether another student uses the institutional student id
func (r *StudentRepository) ExistsByStudentID(ctx context.Context, studentID string, excludeStudentID int64) (bool, error) {
	return exists(ctx, r.db, r.sb, "students", excludeID(squirrel.And{squirrel.Eq{"student_id": studentID}}, "id", excludeStudentID))
}

// Update replaces the mutable fields of a student, including the teacher assignment
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":            student.Name,
			"email":           student.Email,
			"student_id":      student.StudentID,
			"phone":           student.Phone,
			"address":         student.Address,
			"department":      student.Department,
			"enrollment_date": student.EnrollmentDate,
			"age":             student.Age,
			"grade":           student.Grade,
			"teacher_id":      student.TeacherID,
			"updated_at":      squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": student.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if appErr := translateWriteError(err); appErr != nil {
			return appErr
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// SetTeacher assigns teacherID to the student, or clears the assignment when nil
func (r *StudentRepository) SetTeacher(ctx context.Context, studentID int64, teacherID *int64) error {
	sql, args, err := r.sb.Update("students").
		Set("teacher_id", teacherID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if appErr := translateWriteError(err); appErr != nil {
			return appErr
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing set teacher query")
		return fmt.Errorf("error setting student teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a student
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "students", id)
}

// List returns one page of students and the total count
func (r *StudentRepository) List(ctx context.Context, query models.PageQuery) ([]*models.Student, int64, error) {
	return r.findPage(ctx, nil, query)
}

// SearchByName returns one page of students whose name contains name, ignoring case
func (r *StudentRepository) SearchByName(ctx context.Context, name string, query models.PageQuery) ([]*models.Student, int64, error) {
	return r.findPage(ctx, nameFilter("s.name", name), query)
}

func (r *StudentRepository) findPage(ctx context.Context, where squirrel.Sqlizer, query models.PageQuery) ([]*models.Student, int64, error) {
	countBuilder := r.sb.Select("COUNT(*)").From("students s")
	selectBuilder := r.selectStudents()
	if where != nil {
		countBuilder = countBuilder.Where(where)
		selectBuilder = selectBuilder.Where(where)
	}

	total, err := count(ctx, r.db, countBuilder)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := selectBuilder.
		OrderBy(query.OrderBy("s"), "s.id ASC").
		Limit(uint64(query.Size)).
		Offset(query.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

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

var teacherColumns = []string{
	"id", "name", "email", "subject", "department", "address", "age", "phone", "password", "created_at", "updated_at",
}

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanTeacher(row rowScanner) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Subject, &t.Department, &t.Address,
		&t.Age, &t.Phone, &t.Password, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create inserts a new teacher and fills its id and timestamps
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Insert("teachers").
		Columns("name", "email", "subject", "department", "address", "age", "phone", "password").
		Values(teacher.Name, teacher.Email, teacher.Subject, teacher.Department, teacher.Address,
			teacher.Age, teacher.Phone, teacher.Password).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		if appErr := translateWriteError(err); appErr != nil {
			return appErr
		}
		logger.Error().Err(err).Str("email", teacher.Email).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}
	teacher.StudentIDs = []int64{}
	return nil
}

// GetByID retrieves a teacher by ID together with its student ids
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a teacher by email together with its student ids
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *TeacherRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}

	if err := r.loadStudentIDs(ctx, []*models.Teacher{teacher}); err != nil {
		return nil, err
	}
	return teacher, nil
}

// ExistsByEmail reports whether another teacher uses email
func (r *TeacherRepository) ExistsByEmail(ctx context.Context, email string, excludeTeacherID int64) (bool, error) {
	return exists(ctx, r.db, r.sb, "teachers", excludeID(squirrel.And{squirrel.Eq{"email": email}}, "id", excludeTeacherID))
}

// Update replaces the mutable fields of a teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Update("teachers").
		SetMap(map[string]interface{}{
			"name":       teacher.Name,
			"email":      teacher.Email,
			"subject":    teacher.Subject,
			"department": teacher.Department,
			"address":    teacher.Address,
			"age":        teacher.Age,
			"phone":      teacher.Phone,
			"password":   teacher.Password,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": teacher.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&teacher.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if appErr := translateWriteError(err); appErr != nil {
			return appErr
		}
		logger.Error().Err(err).Int64("teacherID", teacher.ID).Msg("Error executing update teacher query")
		return fmt.Errorf("error updating teacher: %w", err)
	}
	return nil
}

// Delete removes a teacher. Its students stay and lose the assignment
// through the ON DELETE SET NULL foreign key.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "teachers", id)
}

// List returns one page of teachers and the total count
func (r *TeacherRepository) List(ctx context.Context, query models.PageQuery) ([]*models.Teacher, int64, error) {
	return r.findPage(ctx, nil, query)
}

// SearchByName returns one page of teachers whose name contains name, ignoring case
func (r *TeacherRepository) SearchByName(ctx context.Context, name string, query models.PageQuery) ([]*models.Teacher, int64, error) {
	return r.findPage(ctx, nameFilter("name", name), query)
}

func (r *TeacherRepository) findPage(ctx context.Context, where squirrel.Sqlizer, query models.PageQuery) ([]*models.Teacher, int64, error) {
	countBuilder := r.sb.Select("COUNT(*)").From("teachers")
	selectBuilder := r.sb.Select(teacherColumns...).From("teachers")
	if where != nil {
		countBuilder = countBuilder.Where(where)
		selectBuilder = selectBuilder.Where(where)
	}

	total, err := count(ctx, r.db, countBuilder)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := selectBuilder.
		OrderBy(query.OrderBy(), "id ASC").
		Limit(uint64(query.Size)).
		Offset(query.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list teachers query")
		return nil, 0, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	if err := r.loadStudentIDs(ctx, teachers); err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

// loadStudentIDs fills StudentIDs of every teacher with one query.
func (r *TeacherRepository) loadStudentIDs(ctx context.Context, teachers []*models.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Teacher, len(teachers))
	ids := make([]int64, 0, len(teachers))
	for _, t := range teachers {
		t.StudentIDs = []int64{}
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	sql, args, err := r.sb.Select("id", "teacher_id").
		From("students").
		Where(squirrel.Eq{"teacher_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build teacher students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing teacher students query")
		return fmt.Errorf("error querying teacher students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var studentID, teacherID int64
		if err := rows.Scan(&studentID, &teacherID); err != nil {
			return fmt.Errorf("error scanning teacher student row: %w", err)
		}
		if t, ok := byID[teacherID]; ok {
			t.StudentIDs = append(t.StudentIDs, studentID)
		}
	}
	return rows.Err()
}

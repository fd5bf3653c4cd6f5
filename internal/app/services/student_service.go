package services

import (
	"context"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context, query models.PageQuery) (dto.Page[dto.StudentResponse], error)
	SearchStudents(ctx context.Context, name string, query models.PageQuery) (dto.Page[dto.StudentResponse], error)
	UpdateStudent(ctx context.Context, id int64, req dto.StudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id int64) error
	AssignTeacher(ctx context.Context, studentID, teacherID int64) (*dto.StudentResponse, error)
	RemoveTeacher(ctx context.Context, studentID int64) (*dto.StudentResponse, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	teacherRepo repositories.ITeacherRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, teacherRepo repositories.ITeacherRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
	}
}

// checkUnique rejects an email or student id already used by another student
func (s *studentServiceImpl) checkUnique(ctx context.Context, email, studentID string, selfID int64) error {
	taken, err := s.studentRepo.ExistsByEmail(ctx, email, selfID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrEmailAlreadyExists
	}

	taken, err = s.studentRepo.ExistsByStudentID(ctx, studentID, selfID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrStudentIDExists
	}
	return nil
}

func (s *studentServiceImpl) findTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrTeacherNotFound)
	}
	return teacher, nil
}

func (s *studentServiceImpl) findStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrStudentNotFound)
	}
	return student, nil
}

func applyStudentRequest(student *models.Student, req dto.StudentRequest) {
	student.Name = req.Name
	student.Email = req.Email
	student.StudentID = req.StudentID
	student.Phone = req.Phone
	student.Address = req.Address
	student.Department = req.Department
	student.EnrollmentDate = req.ParsedEnrollmentDate()
	student.Age = req.Age
	student.Grade = req.Grade
}

// CreateStudent creates a new student, optionally assigned to a teacher
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error) {
	if err := s.checkUnique(ctx, req.Email, req.StudentID, 0); err != nil {
		return nil, err
	}

	student := &models.Student{}
	applyStudentRequest(student, req)

	if req.TeacherID != nil {
		teacher, err := s.findTeacher(ctx, *req.TeacherID)
		if err != nil {
			return nil, err
		}
		student.TeacherID = &teacher.ID
		student.Teacher = teacher
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", student.ID).Str("email", student.Email).Msg("Student created")
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.findStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// ListStudents returns one page of students
func (s *studentServiceImpl) ListStudents(ctx context.Context, query models.PageQuery) (dto.Page[dto.StudentResponse], error) {
	students, total, err := s.studentRepo.List(ctx, query)
	if err != nil {
		return dto.Page[dto.StudentResponse]{}, err
	}
	return studentPage(students, total, query), nil
}

// SearchStudents returns one page of students whose name contains name
func (s *studentServiceImpl) SearchStudents(ctx context.Context, name string, query models.PageQuery) (dto.Page[dto.StudentResponse], error) {
	students, total, err := s.studentRepo.SearchByName(ctx, name, query)
	if err != nil {
		return dto.Page[dto.StudentResponse]{}, err
	}
	return studentPage(students, total, query), nil
}

// UpdateStudent replaces the student's fields. A nil teacherId keeps the
// current assignment; a non-nil one re-assigns.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req dto.StudentRequest) (*dto.StudentResponse, error) {
	student, err := s.findStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, req.Email, req.StudentID, id); err != nil {
		return nil, err
	}

	applyStudentRequest(student, req)

	if req.TeacherID != nil {
		teacher, err := s.findTeacher(ctx, *req.TeacherID)
		if err != nil {
			return nil, err
		}
		student.TeacherID = &teacher.ID
		student.Teacher = teacher
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, mapNotFound(err, apperrors.ErrStudentNotFound)
	}

	logger.Info().Int64("studentID", student.ID).Msg("Student updated")
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// DeleteStudent removes a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, apperrors.ErrStudentNotFound)
	}
	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}

// AssignTeacher assigns an existing teacher to an existing student
func (s *studentServiceImpl) AssignTeacher(ctx context.Context, studentID, teacherID int64) (*dto.StudentResponse, error) {
	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	teacher, err := s.findTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.SetTeacher(ctx, student.ID, &teacher.ID); err != nil {
		return nil, mapNotFound(err, apperrors.ErrStudentNotFound)
	}
	student.TeacherID = &teacher.ID
	student.Teacher = teacher

	logger.Info().Int64("studentID", student.ID).Int64("teacherID", teacher.ID).Msg("Teacher assigned to student")
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// RemoveTeacher clears the student's teacher. Removing from an unassigned student is a no-op.
func (s *studentServiceImpl) RemoveTeacher(ctx context.Context, studentID int64) (*dto.StudentResponse, error) {
	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if student.TeacherID != nil {
		if err := s.studentRepo.SetTeacher(ctx, student.ID, nil); err != nil {
			return nil, mapNotFound(err, apperrors.ErrStudentNotFound)
		}
		logger.Info().Int64("studentID", student.ID).Int64("teacherID", *student.TeacherID).Msg("Teacher removed from student")
	}
	student.TeacherID = nil
	student.Teacher = nil

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func studentPage(students []*models.Student, total int64, query models.PageQuery) dto.Page[dto.StudentResponse] {
	items := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		items = append(items, dto.NewStudentResponse(st))
	}
	return dto.NewPage(items, total, query)
}

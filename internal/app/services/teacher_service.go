package services

import (
	"context"
	"fmt"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req dto.TeacherRequest) (*dto.TeacherResponse, error)
	GetTeacherByID(ctx context.Context, id int64) (*dto.TeacherResponse, error)
	ListTeachers(ctx context.Context, query models.PageQuery) (dto.Page[dto.TeacherResponse], error)
	SearchTeachers(ctx context.Context, name string, query models.PageQuery) (dto.Page[dto.TeacherResponse], error)
	UpdateTeacher(ctx context.Context, id int64, req dto.TeacherUpdateRequest) (*dto.TeacherResponse, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teacherRepo repositories.ITeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo repositories.ITeacherRepository) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
	}
}

// CreateTeacher creates a new teacher with a hashed password
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req dto.TeacherRequest) (*dto.TeacherResponse, error) {
	taken, err := s.teacherRepo.ExistsByEmail(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	teacher := &models.Teacher{
		Name:       req.Name,
		Email:      req.Email,
		Subject:    req.Subject,
		Department: req.Department,
		Address:    req.Address,
		Age:        req.Age,
		Phone:      req.Phone,
		Password:   hashed,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	logger.Info().Int64("teacherID", teacher.ID).Str("email", teacher.Email).Msg("Teacher created")
	resp := dto.NewTeacherResponse(teacher)
	return &resp, nil
}

// GetTeacherByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*dto.TeacherResponse, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrTeacherNotFound)
	}
	resp := dto.NewTeacherResponse(teacher)
	return &resp, nil
}

// ListTeachers returns one page of teachers
func (s *teacherServiceImpl) ListTeachers(ctx context.Context, query models.PageQuery) (dto.Page[dto.TeacherResponse], error) {
	teachers, total, err := s.teacherRepo.List(ctx, query)
	if err != nil {
		return dto.Page[dto.TeacherResponse]{}, err
	}
	return teacherPage(teachers, total, query), nil
}

// SearchTeachers returns one page of teachers whose name contains name
func (s *teacherServiceImpl) SearchTeachers(ctx context.Context, name string, query models.PageQuery) (dto.Page[dto.TeacherResponse], error) {
	teachers, total, err := s.teacherRepo.SearchByName(ctx, name, query)
	if err != nil {
		return dto.Page[dto.TeacherResponse]{}, err
	}
	return teacherPage(teachers, total, query), nil
}

// UpdateTeacher replaces the teacher's fields and re-hashes the password when one is given
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req dto.TeacherUpdateRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrTeacherNotFound)
	}

	if req.Email != teacher.Email {
		taken, err := s.teacherRepo.ExistsByEmail(ctx, req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	teacher.Name = req.Name
	teacher.Email = req.Email
	teacher.Subject = req.Subject
	teacher.Department = req.Department
	teacher.Address = req.Address
	teacher.Age = req.Age
	teacher.Phone = req.Phone
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		teacher.Password = hashed
	}

	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, mapNotFound(err, apperrors.ErrTeacherNotFound)
	}

	logger.Info().Int64("teacherID", teacher.ID).Msg("Teacher updated")
	resp := dto.NewTeacherResponse(teacher)
	return &resp, nil
}

// DeleteTeacher removes a teacher. Students assigned to it become unassigned.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, apperrors.ErrTeacherNotFound)
	}
	logger.Info().Int64("teacherID", id).Msg("Teacher deleted")
	return nil
}

func teacherPage(teachers []*models.Teacher, total int64, query models.PageQuery) dto.Page[dto.TeacherResponse] {
	items := make([]dto.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		items = append(items, dto.NewTeacherResponse(t))
	}
	return dto.NewPage(items, total, query)
}

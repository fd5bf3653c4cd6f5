package services

import (
	"context"
	"errors"

	appauth "github.com/yigit/schoolhub/internal/app/auth"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// AuthService handles login and token subject resolution
type AuthService interface {
	LoginAdmin(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	LoginTeacher(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	ResolveIdentity(ctx context.Context, email string) (*appauth.Identity, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	adminRepo   repositories.IAdminRepository
	teacherRepo repositories.ITeacherRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.IAdminRepository, teacherRepo repositories.ITeacherRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		adminRepo:   adminRepo,
		teacherRepo: teacherRepo,
		jwtService:  jwtService,
	}
}

// LoginAdmin verifies admin credentials and issues an ADMIN token
func (s *authServiceImpl) LoginAdmin(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrInvalidEmail)
	}
	return s.issue(admin.Email, admin.Password, req.Password, models.RoleAdmin)
}

// LoginTeacher verifies teacher credentials and issues a TEACHER token
func (s *authServiceImpl) LoginTeacher(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	teacher, err := s.teacherRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrInvalidEmail)
	}
	return s.issue(teacher.Email, teacher.Password, req.Password, models.RoleTeacher)
}

func (s *authServiceImpl) issue(email, hashed, password string, role models.Role) (*dto.TokenResponse, error) {
	if !auth.CheckPassword(hashed, password) {
		logger.Warn().Str("email", email).Str("role", string(role)).Msg("Login rejected: wrong password")
		return nil, apperrors.ErrInvalidPassword
	}

	token, expiresIn, err := s.jwtService.GenerateToken(email, role)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("email", email).Str("role", string(role)).Msg("Login successful")
	return &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		Role:      role,
	}, nil
}

// ResolveIdentity finds the account a token subject refers to. Admins are
// checked before teachers.
func (s *authServiceImpl) ResolveIdentity(ctx context.Context, email string) (*appauth.Identity, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return &appauth.Identity{ID: admin.ID, Email: admin.Email, Authority: models.RoleAdmin}, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	teacher, err := s.teacherRepo.GetByEmail(ctx, email)
	if err == nil {
		return &appauth.Identity{ID: teacher.ID, Email: teacher.Email, Authority: models.RoleTeacher}, nil
	}
	return nil, mapNotFound(err, apperrors.ErrUserNotFound)
}

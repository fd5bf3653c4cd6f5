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

// AdminService defines the interface for admin-related operations
type AdminService interface {
	CreateAdmin(ctx context.Context, req dto.AdminRequest) (*dto.AdminResponse, error)
	GetAdminByID(ctx context.Context, id int64) (*dto.AdminResponse, error)
	ListAdmins(ctx context.Context, query models.PageQuery) (dto.Page[dto.AdminResponse], error)
	SearchAdmins(ctx context.Context, name string, query models.PageQuery) (dto.Page[dto.AdminResponse], error)
	UpdateAdmin(ctx context.Context, id int64, req dto.AdminUpdateRequest) (*dto.AdminResponse, error)
	DeleteAdmin(ctx context.Context, id int64) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	adminRepo repositories.IAdminRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminRepo repositories.IAdminRepository) AdminService {
	return &adminServiceImpl{
		adminRepo: adminRepo,
	}
}

// CreateAdmin creates a new admin with a hashed password
func (s *adminServiceImpl) CreateAdmin(ctx context.Context, req dto.AdminRequest) (*dto.AdminResponse, error) {
	taken, err := s.adminRepo.ExistsByEmail(ctx, req.Email, 0)
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

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info().Int64("adminID", admin.ID).Str("email", admin.Email).Msg("Admin created")
	resp := dto.NewAdminResponse(admin)
	return &resp, nil
}

// GetAdminByID retrieves an admin by ID
func (s *adminServiceImpl) GetAdminByID(ctx context.Context, id int64) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrAdminNotFound)
	}
	resp := dto.NewAdminResponse(admin)
	return &resp, nil
}

// ListAdmins returns one page of admins
func (s *adminServiceImpl) ListAdmins(ctx context.Context, query models.PageQuery) (dto.Page[dto.AdminResponse], error) {
	admins, total, err := s.adminRepo.List(ctx, query)
	if err != nil {
		return dto.Page[dto.AdminResponse]{}, err
	}
	return adminPage(admins, total, query), nil
}

// SearchAdmins returns one page of admins whose name contains name
func (s *adminServiceImpl) SearchAdmins(ctx context.Context, name string, query models.PageQuery) (dto.Page[dto.AdminResponse], error) {
	admins, total, err := s.adminRepo.SearchByName(ctx, name, query)
	if err != nil {
		return dto.Page[dto.AdminResponse]{}, err
	}
	return adminPage(admins, total, query), nil
}

// UpdateAdmin replaces name and email and re-hashes the password when one is given
func (s *adminServiceImpl) UpdateAdmin(ctx context.Context, id int64, req dto.AdminUpdateRequest) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrAdminNotFound)
	}

	if req.Email != admin.Email {
		taken, err := s.adminRepo.ExistsByEmail(ctx, req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	admin.Name = req.Name
	admin.Email = req.Email
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		admin.Password = hashed
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, mapNotFound(err, apperrors.ErrAdminNotFound)
	}

	logger.Info().Int64("adminID", admin.ID).Msg("Admin updated")
	resp := dto.NewAdminResponse(admin)
	return &resp, nil
}

// DeleteAdmin removes an admin
func (s *adminServiceImpl) DeleteAdmin(ctx context.Context, id int64) error {
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, apperrors.ErrAdminNotFound)
	}
	logger.Info().Int64("adminID", id).Msg("Admin deleted")
	return nil
}

func adminPage(admins []*models.Admin, total int64, query models.PageQuery) dto.Page[dto.AdminResponse] {
	items := make([]dto.AdminResponse, 0, len(admins))
	for _, a := range admins {
		items = append(items, dto.NewAdminResponse(a))
	}
	return dto.NewPage(items, total, query)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
)

// AdminController handles admin-related operations
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// CreateAdmin handles admin creation
// @Summary Create a new admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=dto.AdminResponse} "Admin created successfully"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /admins [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.AdminRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	admin, err := c.adminService.CreateAdmin(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusCreated, "Admin created successfully", admin)
}

// GetAdmins lists admins page by page
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page index (0-based)"
// @Param size query int false "Page size"
// @Param sort query string false "Sort as field,direction"
// @Success 200 {object} dto.APIResponse{data=dto.Page[dto.AdminResponse]} "Admins fetched successfully"
// @Failure 400 {object} dto.APIResponse "Invalid pagination parameters"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Router /admins [get]
func (c *AdminController) GetAdmins(ctx *gin.Context) {
	query, err := helpers.ParsePageQuery(ctx, models.AdminSortColumns)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.adminService.ListAdmins(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Admins fetched successfully", page)
}

// SearchAdmins searches admins by name
// @Summary Search admins by name
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param name query string false "Case-insensitive name fragment"
// @Param page query int false "Page index (0-based)"
// @Param size query int false "Page size"
// @Param sort query string false "Sort as field,direction"
// @Success 200 {object} dto.APIResponse{data=dto.Page[dto.AdminResponse]} "Admins searched successfully"
// @Failure 400 {object} dto.APIResponse "Invalid pagination parameters"
// @Router /admins/search [get]
func (c *AdminController) SearchAdmins(ctx *gin.Context) {
	query, err := helpers.ParsePageQuery(ctx, models.AdminSortColumns)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.adminService.SearchAdmins(ctx.Request.Context(), ctx.Query("name"), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Admins searched successfully", page)
}

// GetAdminByID retrieves an admin by ID
// @Summary Get admin by ID
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=dto.AdminResponse} "Admin fetched successfully"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *AdminController) GetAdminByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	admin, err := c.adminService.GetAdminByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Admin fetched successfully", admin)
}

// UpdateAdmin updates an existing admin
// @Summary Update an admin
// @Description A blank password keeps the current one
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param request body dto.AdminUpdateRequest true "Admin information"
// @Success 200 {object} dto.APIResponse{data=dto.AdminResponse} "Admin updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AdminUpdateRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	admin, err := c.adminService.UpdateAdmin(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Admin updated successfully", admin)
}

// DeleteAdmin deletes an admin
// @Summary Delete an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse "Admin deleted successfully"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.adminService.DeleteAdmin(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Admin deleted successfully", nil)
}

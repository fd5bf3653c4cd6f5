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

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher created successfully"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.TeacherRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusCreated, "Teacher created successfully", teacher)
}

// GetTeachers lists teachers page by page
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page index (0-based)"
// @Param size query int false "Page size"
// @Param sort query string false "Sort as field,direction"
// @Success 200 {object} dto.APIResponse{data=dto.Page[dto.TeacherResponse]} "Teachers fetched successfully"
// @Failure 400 {object} dto.APIResponse "Invalid pagination parameters"
// @Router /teachers [get]
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	query, err := helpers.ParsePageQuery(ctx, models.TeacherSortColumns)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.teacherService.ListTeachers(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Teachers fetched successfully", page)
}

// SearchTeachers searches teachers by name
// @Summary Search teachers by name
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param name query string false "Case-insensitive name fragment"
// @Param page query int false "Page index (0-based)"
// @Param size query int false "Page size"
// @Param sort query string false "Sort as field,direction"
// @Success 200 {object} dto.APIResponse{data=dto.Page[dto.TeacherResponse]} "Teachers searched successfully"
// @Router /teachers/search [get]
func (c *TeacherController) SearchTeachers(ctx *gin.Context) {
	query, err := helpers.ParsePageQuery(ctx, models.TeacherSortColumns)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.teacherService.SearchTeachers(ctx.Request.Context(), ctx.Query("name"), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Teachers searched successfully", page)
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher by ID
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher fetched successfully"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Teacher fetched successfully", teacher)
}

// UpdateTeacher updates an existing teacher
// @Summary Update a teacher
// @Description A blank password keeps the current one
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Param request body dto.TeacherUpdateRequest true "Teacher information"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.TeacherUpdateRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Teacher updated successfully", teacher)
}

// DeleteTeacher deletes a teacher. Their students become unassigned.
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse "Teacher deleted successfully"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Teacher deleted successfully", nil)
}

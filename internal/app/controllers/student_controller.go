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

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 409 {object} dto.APIResponse "Email or student ID already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusCreated, "Student created successfully", student)
}

// GetStudents lists students page by page
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page index (0-based)"
// @Param size query int false "Page size"
// @Param sort query string false "Sort as field,direction"
// @Success 200 {object} dto.APIResponse{data=dto.Page[dto.StudentResponse]} "Students fetched successfully"
// @Failure 400 {object} dto.APIResponse "Invalid pagination parameters"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	query, err := helpers.ParsePageQuery(ctx, models.StudentSortColumns)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.studentService.ListStudents(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Students fetched successfully", page)
}

// SearchStudents searches students by name
// @Summary Search students by name
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param name query string false "Case-insensitive name fragment"
// @Param page query int false "Page index (0-based)"
// @Param size query int false "Page size"
// @Param sort query string false "Sort as field,direction"
// @Success 200 {object} dto.APIResponse{data=dto.Page[dto.StudentResponse]} "Students searched successfully"
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	query, err := helpers.ParsePageQuery(ctx, models.StudentSortColumns)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, err := c.studentService.SearchStudents(ctx.Request.Context(), ctx.Query("name"), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Students searched successfully", page)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student fetched successfully"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Student fetched successfully", student)
}

// UpdateStudent updates an existing student
// @Summary Update a student
// @Description A null teacherId keeps the current assignment
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Student or teacher not found"
// @Failure 409 {object} dto.APIResponse "Email or student ID already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.StudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Student updated successfully", student)
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Student deleted successfully", nil)
}

// AssignTeacher assigns a teacher to a student
// @Summary Assign a teacher to a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param teacherId path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Teacher assigned successfully"
// @Failure 404 {object} dto.APIResponse "Student or teacher not found"
// @Router /students/{id}/teacher/{teacherId} [put]
func (c *StudentController) AssignTeacher(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	teacherID, err := parseIDParam(ctx, "teacherId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.AssignTeacher(ctx.Request.Context(), id, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Teacher assigned successfully", student)
}

// RemoveTeacher clears a student's teacher assignment
// @Summary Remove a student's teacher
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Teacher removed successfully"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/teacher [delete]
func (c *StudentController) RemoveTeacher(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.RemoveTeacher(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Teacher removed successfully", student)
}

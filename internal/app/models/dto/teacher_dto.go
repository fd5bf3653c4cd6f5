package dto

import "github.com/yigit/schoolhub/internal/app/models"

// TeacherRequest represents teacher creation data
type TeacherRequest struct {
	Name       string  `json:"name" binding:"notblank" label:"Teacher name" example:"Grace Hopper"`
	Email      string  `json:"email" binding:"notblank,email" label:"Email" example:"grace@school.edu"`
	Subject    string  `json:"subject" binding:"notblank" label:"Subject" example:"Computer Science"`
	Address    string  `json:"address" example:"12 Harbour Rd"`
	Department string  `json:"department" binding:"notblank" label:"Department" example:"Engineering"`
	Age        *int    `json:"age,omitempty" binding:"omitempty,min=18,max=80" label:"Teacher age" example:"45"`
	Phone      *string `json:"phone,omitempty" binding:"omitempty,phone" label:"Phone number" example:"5551234567"`
	Password   string  `json:"password" binding:"notblank,min=6" label:"Password" example:"secret123"`
}

// TeacherUpdateRequest represents teacher update data. An empty password keeps the current one.
type TeacherUpdateRequest struct {
	Name       string  `json:"name" binding:"notblank" label:"Teacher name"`
	Email      string  `json:"email" binding:"notblank,email" label:"Email"`
	Subject    string  `json:"subject" binding:"notblank" label:"Subject"`
	Address    string  `json:"address"`
	Department string  `json:"department" binding:"notblank" label:"Department"`
	Age        *int    `json:"age,omitempty" binding:"omitempty,min=18,max=80" label:"Teacher age"`
	Phone      *string `json:"phone,omitempty" binding:"omitempty,phone" label:"Phone number"`
	Password   string  `json:"password,omitempty" binding:"omitempty,min=6" label:"Password"`
}

// TeacherResponse is the public projection of a teacher
type TeacherResponse struct {
	ID         int64   `json:"id" example:"1"`
	Name       string  `json:"name" example:"Grace Hopper"`
	Email      string  `json:"email" example:"grace@school.edu"`
	Subject    string  `json:"subject" example:"Computer Science"`
	Address    string  `json:"address" example:"12 Harbour Rd"`
	Department string  `json:"department" example:"Engineering"`
	Age        *int    `json:"age" example:"45"`
	Phone      *string `json:"phone" example:"5551234567"`
	StudentIDs []int64 `json:"studentIds"`
}

// NewTeacherResponse converts a model to its response
func NewTeacherResponse(teacher *models.Teacher) TeacherResponse {
	studentIDs := teacher.StudentIDs
	if studentIDs == nil {
		studentIDs = []int64{}
	}

	return TeacherResponse{
		ID:         teacher.ID,
		Name:       teacher.Name,
		Email:      teacher.Email,
		Subject:    teacher.Subject,
		Address:    teacher.Address,
		Department: teacher.Department,
		Age:        teacher.Age,
		Phone:      teacher.Phone,
		StudentIDs: studentIDs,
	}
}

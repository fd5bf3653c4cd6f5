package dto

import (
	"time"

	"github.com/yigit/schoolhub/internal/app/models"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// StudentRequest represents student create and update data
type StudentRequest struct {
	Name           string  `json:"name" binding:"notblank" label:"Student name" example:"Alan Turing"`
	Email          string  `json:"email" binding:"notblank,email" label:"Email" example:"alan@school.edu"`
	StudentID      string  `json:"studentId" binding:"notblank" label:"Student ID" example:"S-2024-001"`
	Phone          *string `json:"phone,omitempty" binding:"omitempty,phone" label:"Phone number" example:"5551234567"`
	Address        string  `json:"address" example:"1 Bletchley Park"`
	Department     string  `json:"department" binding:"notblank" label:"Department" example:"Mathematics"`
	EnrollmentDate *string `json:"enrollmentDate,omitempty" binding:"omitempty,datetime=2006-01-02" label:"Enrollment date" example:"2024-09-01"`
	Age            *int    `json:"age,omitempty" binding:"omitempty,min=5,max=100" label:"Age" example:"19"`
	Grade          string  `json:"grade" example:"A"`
	TeacherID      *int64  `json:"teacherId,omitempty" example:"1"`
}

// ParsedEnrollmentDate returns the enrollment date, or nil when none was sent.
// The value has already passed the datetime binding rule.
func (r *StudentRequest) ParsedEnrollmentDate() *time.Time {
	if r.EnrollmentDate == nil || *r.EnrollmentDate == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, *r.EnrollmentDate)
	if err != nil {
		return nil
	}
	return &t
}

// StudentResponse is the public projection of a student
type StudentResponse struct {
	ID             int64   `json:"id" example:"1"`
	Name           string  `json:"name" example:"Alan Turing"`
	Email          string  `json:"email" example:"alan@school.edu"`
	StudentID      string  `json:"studentId" example:"S-2024-001"`
	Phone          *string `json:"phone" example:"5551234567"`
	Address        string  `json:"address" example:"1 Bletchley Park"`
	Department     string  `json:"department" example:"Mathematics"`
	EnrollmentDate *string `json:"enrollmentDate" example:"2024-09-01"`
	Age            *int    `json:"age" example:"19"`
	Grade          string  `json:"grade" example:"A"`
	TeacherID      *int64  `json:"teacherId" example:"1"`
	TeacherName    *string `json:"teacherName" example:"Grace Hopper"`
}

// NewStudentResponse converts a model to its response
func NewStudentResponse(student *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:         student.ID,
		Name:       student.Name,
		Email:      student.Email,
		StudentID:  student.StudentID,
		Phone:      student.Phone,
		Address:    student.Address,
		Department: student.Department,
		Age:        student.Age,
		Grade:      student.Grade,
		TeacherID:  student.TeacherID,
	}

	if student.EnrollmentDate != nil {
		date := student.EnrollmentDate.Format(DateLayout)
		resp.EnrollmentDate = &date
	}
	if student.Teacher != nil {
		name := student.Teacher.Name
		resp.TeacherName = &name
	}

	return resp
}

package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64      `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Email          string     `json:"email" db:"email"`
	StudentID      string     `json:"studentId" db:"student_id"`
	Phone          *string    `json:"phone,omitempty" db:"phone"`
	Address        string     `json:"address" db:"address"`
	Department     string     `json:"department" db:"department"`
	EnrollmentDate *time.Time `json:"enrollmentDate,omitempty" db:"enrollment_date"`
	Age            *int       `json:"age,omitempty" db:"age"`
	Grade          string     `json:"grade" db:"grade"`
	TeacherID      *int64     `json:"teacherId,omitempty" db:"teacher_id"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
	Teacher        *Teacher   `json:"teacher,omitempty"` // Relation, no db tag
}

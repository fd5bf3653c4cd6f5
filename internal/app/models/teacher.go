package models

import (
	"time"
)

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Subject    string    `json:"subject" db:"subject"`
	Department string    `json:"department" db:"department"`
	Address    string    `json:"address" db:"address"`
	Age        *int      `json:"age,omitempty" db:"age"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Password   string    `json:"-" db:"password"` // bcrypt hash
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
	StudentIDs []int64   `json:"studentIds,omitempty"` // Loaded by query, no db tag
}

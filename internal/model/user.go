package model

import "time"

// Roles carried by issued tokens.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User represents an admin credential record. Students authenticate against
// the students table instead and never get a User row.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;default:'admin'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package model

import "time"

// Student represents a registered student. The registration number doubles
// as the login identifier, so it carries a uniqueness constraint.
type Student struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	RegNo     string    `json:"reg_no" gorm:"uniqueIndex;size:64;not null"`
	Major     string    `json:"major,omitempty" gorm:"size:255"`
	Contact   string    `json:"contact,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

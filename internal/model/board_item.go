package model

import "time"

// Priority levels for board items.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// BoardItem is the shared record shape of announcements, events, timetable
// entries and results. All four collections carry the same columns and live
// in separate tables; the repository picks the table.
type BoardItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Category    string    `json:"category" gorm:"size:100;not null"`
	Date        string    `json:"date" gorm:"size:32;not null"`
	Time        string    `json:"time,omitempty" gorm:"size:32"`
	Location    string    `json:"location,omitempty" gorm:"size:255"`
	Priority    string    `json:"priority" gorm:"size:20;default:'normal'"`
	Author      string    `json:"author" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

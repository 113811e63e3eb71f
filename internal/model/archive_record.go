package model

import "time"

// ArchiveRecord marks a board item as archived without touching the
// original. Title and category are snapshotted at archival time so the
// archive stays readable after the original is deleted. Records are
// immutable once created; the only permitted mutation is deletion.
type ArchiveRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ItemType   string    `json:"item_type" gorm:"size:50;not null;index"`
	ItemID     uint      `json:"item_id" gorm:"not null;index"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Category   string    `json:"category" gorm:"size:100"`
	ArchivedBy string    `json:"archived_by" gorm:"size:255"`
	ArchivedAt time.Time `json:"archived_at" gorm:"autoCreateTime"`
}

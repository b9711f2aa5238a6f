package models

import (
	"time"
)

// Report statuses. The set is open ended: the office can write any
// status string, these are just the conventional values.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// Report is a citizen-submitted civic issue. UserPhoto and Category are
// set once at creation and never change; Status and OfficePhoto are
// mutated only by the office resolution flow.
type Report struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	SubmitterID string    `gorm:"not null;index" json:"submitter_id"`
	UserPhoto   string    `gorm:"not null" json:"user_photo"`
	Status      string    `gorm:"not null;default:'Pending'" json:"status"`
	OfficePhoto *string   `json:"office_photo"`
	Category    string    `gorm:"not null" json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}

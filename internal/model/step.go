package model

import "time"

// StepRecord is one row per user per calendar day. Date is stored as
// "2006-01-02" so the upsert key stays timezone-free.
type StepRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_step_user_date,unique" json:"user_id"`
	Date       string    `gorm:"size:10;not null;index:idx_step_user_date,unique" json:"date"`
	Steps      int       `gorm:"not null" json:"steps"`
	DistanceKm float64   `json:"distance_km"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

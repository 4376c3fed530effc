package model

import "time"

type Mountain struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:128;not null;index" json:"name"`
	Region      string    `gorm:"size:128" json:"region"`
	Height      float64   `json:"height"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MountainCourse struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	MountainID uint    `gorm:"not null;index" json:"mountain_id"`
	Name       string  `gorm:"size:128;not null" json:"name"`
	DistanceKm float64 `json:"distance_km"`
	DurationUp int     `json:"duration_up_minute"`
	DurationDn int     `json:"duration_down_minute"`
	Difficulty string  `gorm:"size:16" json:"difficulty"`
}

type MountainImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	MountainID uint   `gorm:"not null;index" json:"mountain_id"`
	URL        string `gorm:"size:255;not null" json:"url"`
}

type MountainBookmark struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	MountainID uint      `gorm:"not null;index" json:"mountain_id"`
	CreatedAt  time.Time `json:"created_at"`
}

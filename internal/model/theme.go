package model

import "time"

// Theme is a curated set of mountains (e.g. "autumn foliage", "sunrise").
type Theme struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:128;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:255" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`

	Mountains []Mountain `gorm:"many2many:theme_mountains" json:"mountains,omitempty"`
}

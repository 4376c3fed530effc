package model

import "time"

// EmailVerification is a short-lived signup code. Rows are replaced on every
// send and swept by the cleanup scheduler once expired.
type EmailVerification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:128;not null;index" json:"email"`
	Code      string    `gorm:"size:8;not null" json:"-"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

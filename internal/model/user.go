package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LoginID      string    `gorm:"size:64;not null;uniqueIndex" json:"userid"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Nickname     string    `gorm:"size:64;not null;uniqueIndex" json:"nickname"`
	Email        string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	Role         string    `gorm:"size:16;not null;default:user" json:"role"`
	ProfileImage string    `gorm:"size:255" json:"profile"`
	Points       int       `gorm:"not null;default:0" json:"points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

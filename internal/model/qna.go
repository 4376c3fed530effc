package model

import "time"

type Question struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Nickname    string    `gorm:"size:64;not null" json:"nickname"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Solved      bool      `gorm:"not null;default:false" json:"solved"`
	ViewCount   int       `gorm:"not null;default:0" json:"view_count"`
	LikeCount   int       `gorm:"not null;default:0" json:"like_count"`
	AnswerCount int       `gorm:"not null;default:0" json:"answer_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Nickname   string    `gorm:"size:64;not null" json:"nickname"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Accepted   bool      `gorm:"not null;default:false" json:"accepted"`
	LikeCount  int       `gorm:"not null;default:0" json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Like rows carry no unique constraint; the toggle path assumes at most one
// row per (subject, user) and keeps the denormalized counters itself.
type QuestionLike struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type AnswerLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AnswerID  uint      `gorm:"not null;index" json:"answer_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Question is a post opened by a user. UpdatedAt stays nil until the first edit.
type Question struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text;not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false;default:null"`

	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// QuestionWithAuthor pairs a question with its author's display name.
type QuestionWithAuthor struct {
	Question       Question
	AuthorUsername string
}

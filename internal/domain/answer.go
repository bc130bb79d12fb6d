package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer is a reply to a question. At most one answer per question carries
// Accepted=true; the swap happens atomically in the repository.
type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	Accepted   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
}

// AnswerWithAuthor pairs an answer with its author's display name.
type AnswerWithAuthor struct {
	Answer         Answer
	AuthorUsername string
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/BhavyNayak/stackit/internal/domain"
)

// AnswerRepository defines persistence operations for Answer entities.
type AnswerRepository interface {
	Create(ctx context.Context, answer *domain.Answer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.AnswerWithAuthor, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID, skip, limit int) ([]domain.Answer, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Answer, error)
	Update(ctx context.Context, answer *domain.Answer) error
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkAccepted flips the accepted flag to the given answer in one
	// transaction: every other answer of the question is unset first.
	MarkAccepted(ctx context.Context, questionID, answerID uuid.UUID) error
	GetAcceptedForQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error)
}

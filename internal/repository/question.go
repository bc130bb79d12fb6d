package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/BhavyNayak/stackit/internal/domain"
)

// QuestionRepository defines persistence operations for Question entities.
type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.QuestionWithAuthor, error)
	List(ctx context.Context, skip, limit int) ([]domain.Question, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Question, error)
	Search(ctx context.Context, term string, skip, limit int) ([]domain.Question, error)
	Update(ctx context.Context, question *domain.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/repository"
)

// QuestionService describes question lifecycle operations. Mutations are
// gated on authorship of the question.
type QuestionService interface {
	Create(ctx context.Context, title, description string, authorID uuid.UUID) (*domain.Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.QuestionWithAuthor, error)
	List(ctx context.Context, skip, limit int) ([]domain.Question, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Question, error)
	Search(ctx context.Context, term string, skip, limit int) ([]domain.Question, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateQuestionInput, requesterID uuid.UUID) (*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
}

// UpdateQuestionInput carries the optional fields of a question update.
type UpdateQuestionInput struct {
	Title       *string
	Description *string
}

type questionService struct {
	questions repository.QuestionRepository
}

func NewQuestionService(questions repository.QuestionRepository) QuestionService {
	return &questionService{questions: questions}
}

func (s *questionService) Create(ctx context.Context, title, description string, authorID uuid.UUID) (*domain.Question, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required: %w", domain.ErrInvalidInput)
	}

	question := &domain.Question{
		UserID:      authorID,
		Title:       title,
		Description: description,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return s.questions.GetByID(ctx, id)
}

func (s *questionService) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.QuestionWithAuthor, error) {
	return s.questions.GetWithAuthor(ctx, id)
}

func (s *questionService) List(ctx context.Context, skip, limit int) ([]domain.Question, error) {
	return s.questions.List(ctx, skip, limit)
}

func (s *questionService) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Question, error) {
	return s.questions.ListByUser(ctx, userID, skip, limit)
}

func (s *questionService) Search(ctx context.Context, term string, skip, limit int) ([]domain.Question, error) {
	return s.questions.Search(ctx, term, skip, limit)
}

func (s *questionService) Update(ctx context.Context, id uuid.UUID, input UpdateQuestionInput, requesterID uuid.UUID) (*domain.Question, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question.UserID != requesterID {
		return nil, fmt.Errorf("only the author can update this question: %w", domain.ErrForbidden)
	}

	changed := false
	if input.Title != nil && *input.Title != question.Title {
		question.Title = *input.Title
		changed = true
	}
	if input.Description != nil && *input.Description != question.Description {
		question.Description = *input.Description
		changed = true
	}
	if !changed {
		return question, nil
	}

	now := time.Now().UTC()
	question.UpdatedAt = &now
	if err := s.questions.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question.UserID != requesterID {
		return fmt.Errorf("only the author can delete this question: %w", domain.ErrForbidden)
	}
	return s.questions.Delete(ctx, id)
}

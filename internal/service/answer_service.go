package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/repository"
)

// AnswerService describes answer lifecycle operations. Content mutations are
// gated on answer authorship; the accepted flag is gated on question
// authorship.
type AnswerService interface {
	Create(ctx context.Context, questionID uuid.UUID, content string, authorID uuid.UUID) (*domain.Answer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.AnswerWithAuthor, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID, skip, limit int) ([]domain.Answer, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Answer, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateAnswerInput, requesterID uuid.UUID) (*domain.Answer, error)
	Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
	MarkAccepted(ctx context.Context, answerID, requesterID uuid.UUID) (*domain.Answer, error)
	GetAcceptedForQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error)
}

// UpdateAnswerInput carries the optional fields of an answer update.
type UpdateAnswerInput struct {
	Content  *string
	Accepted *bool
}

type answerService struct {
	answers   repository.AnswerRepository
	questions repository.QuestionRepository
}

func NewAnswerService(answers repository.AnswerRepository, questions repository.QuestionRepository) AnswerService {
	return &answerService{
		answers:   answers,
		questions: questions,
	}
}

func (s *answerService) Create(ctx context.Context, questionID uuid.UUID, content string, authorID uuid.UUID) (*domain.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required: %w", domain.ErrInvalidInput)
	}

	// the answered question must exist
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	answer := &domain.Answer{
		QuestionID: questionID,
		UserID:     authorID,
		Content:    content,
	}
	if err := s.answers.Create(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *answerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	return s.answers.GetByID(ctx, id)
}

func (s *answerService) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.AnswerWithAuthor, error) {
	return s.answers.GetWithAuthor(ctx, id)
}

func (s *answerService) ListByQuestion(ctx context.Context, questionID uuid.UUID, skip, limit int) ([]domain.Answer, error) {
	return s.answers.ListByQuestion(ctx, questionID, skip, limit)
}

func (s *answerService) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Answer, error) {
	return s.answers.ListByUser(ctx, userID, skip, limit)
}

// Update edits answer content as the answer's author. Setting Accepted=true
// goes through the accept swap instead and is reserved to the question's
// author, whoever wrote the answer. There is no direct un-accept: a false
// flag is ignored, the flag only clears when another answer gets accepted.
// Every check runs before the first write, so a forbidden request leaves the
// answer untouched even when it carries other fields.
func (s *answerService) Update(ctx context.Context, id uuid.UUID, input UpdateAnswerInput, requesterID uuid.UUID) (*domain.Answer, error) {
	answer, err := s.answers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	acceptRequested := input.Accepted != nil && *input.Accepted

	if input.Content != nil {
		if answer.UserID != requesterID {
			return nil, fmt.Errorf("only the author can update this answer: %w", domain.ErrForbidden)
		}
		if strings.TrimSpace(*input.Content) == "" {
			return nil, fmt.Errorf("content is required: %w", domain.ErrInvalidInput)
		}
	}
	if acceptRequested {
		question, err := s.questions.GetByID(ctx, answer.QuestionID)
		if err != nil {
			return nil, err
		}
		if question.UserID != requesterID {
			return nil, fmt.Errorf("only the question author can accept answers: %w", domain.ErrForbidden)
		}
	}

	if input.Content != nil {
		answer.Content = *input.Content
		if err := s.answers.Update(ctx, answer); err != nil {
			return nil, err
		}
	}
	if acceptRequested {
		if err := s.answers.MarkAccepted(ctx, answer.QuestionID, id); err != nil {
			return nil, err
		}
		return s.answers.GetByID(ctx, id)
	}
	return answer, nil
}

func (s *answerService) Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	answer, err := s.answers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if answer.UserID != requesterID {
		return fmt.Errorf("only the author can delete this answer: %w", domain.ErrForbidden)
	}
	return s.answers.Delete(ctx, id)
}

// MarkAccepted makes the given answer the single accepted one for its
// question. Only the question's author may call it; the swap itself is a
// single repository transaction.
func (s *answerService) MarkAccepted(ctx context.Context, answerID, requesterID uuid.UUID) (*domain.Answer, error) {
	answer, err := s.answers.GetByID(ctx, answerID)
	if err != nil {
		return nil, err
	}

	question, err := s.questions.GetByID(ctx, answer.QuestionID)
	if err != nil {
		return nil, err
	}
	if question.UserID != requesterID {
		return nil, fmt.Errorf("only the question author can accept answers: %w", domain.ErrForbidden)
	}

	if err := s.answers.MarkAccepted(ctx, answer.QuestionID, answerID); err != nil {
		return nil, err
	}
	return s.answers.GetByID(ctx, answerID)
}

func (s *answerService) GetAcceptedForQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error) {
	return s.answers.GetAcceptedForQuestion(ctx, questionID)
}

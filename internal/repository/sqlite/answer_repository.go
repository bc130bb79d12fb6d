package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/repository"
)

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) repository.AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) Create(ctx context.Context, answer *domain.Answer) error {
	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	answer.CreatedAt = time.Now().UTC()
	answer.Accepted = false

	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (r *AnswerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	var answer domain.Answer
	if err := r.db.WithContext(ctx).First(&answer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query answer: %w", err)
	}
	return &answer, nil
}

func (r *AnswerRepository) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.AnswerWithAuthor, error) {
	answer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var author domain.User
	if err := r.db.WithContext(ctx).Select("username").First(&author, "id = ?", answer.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer author: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query answer author: %w", err)
	}

	return &domain.AnswerWithAuthor{
		Answer:         *answer,
		AuthorUsername: author.Username,
	}, nil
}

// ListByQuestion returns answers in chronological discussion order.
func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID uuid.UUID, skip, limit int) ([]domain.Answer, error) {
	var answers []domain.Answer
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Offset(skip).
		Limit(limit).
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("list answers by question: %w", err)
	}
	return answers, nil
}

func (r *AnswerRepository) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Answer, error) {
	var answers []domain.Answer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("list answers by user: %w", err)
	}
	return answers, nil
}

// Update persists content edits. The accepted column is written solely by
// the MarkAccepted transaction, so a stale in-memory flag can never clobber
// a concurrent accept.
func (r *AnswerRepository) Update(ctx context.Context, answer *domain.Answer) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Answer{}).
		Where("id = ?", answer.ID).
		Update("content", answer.Content)
	if res.Error != nil {
		return fmt.Errorf("update answer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update answer: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *AnswerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Answer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete answer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete answer: %w", domain.ErrNotFound)
	}
	return nil
}

// MarkAccepted swaps the accepted flag to the given answer in a single
// transaction so no reader observes zero or two accepted answers.
func (r *AnswerRepository) MarkAccepted(ctx context.Context, questionID, answerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Answer{}).
			Where("question_id = ? AND accepted = ?", questionID, true).
			Update("accepted", false).Error
		if err != nil {
			return fmt.Errorf("unset accepted answers: %w", err)
		}

		res := tx.Model(&domain.Answer{}).
			Where("id = ? AND question_id = ?", answerID, questionID).
			Update("accepted", true)
		if res.Error != nil {
			return fmt.Errorf("set accepted answer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("set accepted answer: %w", domain.ErrNotFound)
		}
		return nil
	})
}

func (r *AnswerRepository) GetAcceptedForQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error) {
	var answer domain.Answer
	err := r.db.WithContext(ctx).
		First(&answer, "question_id = ? AND accepted = ?", questionID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query accepted answer: %w", err)
	}
	return &answer, nil
}

package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/repository"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	question.CreatedAt = time.Now().UTC()
	question.UpdatedAt = nil

	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	var question domain.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query question: %w", err)
	}
	return &question, nil
}

func (r *QuestionRepository) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.QuestionWithAuthor, error) {
	question, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var author domain.User
	if err := r.db.WithContext(ctx).Select("username").First(&author, "id = ?", question.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question author: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query question author: %w", err)
	}

	return &domain.QuestionWithAuthor{
		Question:       *question,
		AuthorUsername: author.Username,
	}, nil
}

func (r *QuestionRepository) List(ctx context.Context, skip, limit int) ([]domain.Question, error) {
	var questions []domain.Question
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Question, error) {
	var questions []domain.Question
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions by user: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) Search(ctx context.Context, term string, skip, limit int) ([]domain.Question, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var questions []domain.Question
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) Update(ctx context.Context, question *domain.Question) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Question{}).
		Where("id = ?", question.ID).
		Updates(map[string]any{
			"title":       question.Title,
			"description": question.Description,
			"updated_at":  question.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update question: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update question: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes the question; its answers follow via ON DELETE CASCADE.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Question{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete question: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete question: %w", domain.ErrNotFound)
	}
	return nil
}

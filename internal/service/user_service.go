package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BhavyNayak/stackit/internal/auth"
	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/repository"
)

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role, skip, limit int) ([]domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateUserInput carries the optional fields of a user update; nil means
// "leave unchanged".
type UpdateUserInput struct {
	Username *string
	Email    *string
	Role     *domain.Role
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, fmt.Errorf("username is required: %w", domain.ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", domain.ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", domain.ErrInvalidInput)
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username already taken: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the email/password pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *userService) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	return s.users.List(ctx, skip, limit)
}

func (s *userService) ListByRole(ctx context.Context, role domain.Role, skip, limit int) ([]domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, domain.ErrInvalidInput)
	}
	return s.users.ListByRole(ctx, role, skip, limit)
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, *input.Email); err == nil {
			return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Username != nil && *input.Username != user.Username {
		if _, err := s.users.GetByUsername(ctx, *input.Username); err == nil {
			return nil, fmt.Errorf("username already taken: %w", domain.ErrConflict)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Username = *input.Username
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, fmt.Errorf("unknown role %q: %w", *input.Role, domain.ErrInvalidInput)
		}
		user.Role = *input.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/repository/sqlite"
)

type testEnv struct {
	users     UserService
	questions QuestionService
	answers   AnswerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "stackit.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	userRepo := sqlite.NewUserRepository(db)
	questionRepo := sqlite.NewQuestionRepository(db)
	answerRepo := sqlite.NewAnswerRepository(db)

	return &testEnv{
		users:     NewUserService(userRepo),
		questions: NewQuestionService(questionRepo),
		answers:   NewAnswerService(answerRepo, questionRepo),
	}
}

func (e *testEnv) mustRegister(t *testing.T, username, email string) *domain.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), username, email, "password123", domain.RoleUser)
	require.NoError(t, err)
	return user
}

func (e *testEnv) mustAsk(t *testing.T, author *domain.User, title, description string) *domain.Question {
	t.Helper()
	question, err := e.questions.Create(context.Background(), title, description, author.ID)
	require.NoError(t, err)
	tick()
	return question
}

func (e *testEnv) mustAnswer(t *testing.T, author *domain.User, question *domain.Question, content string) *domain.Answer {
	t.Helper()
	answer, err := e.answers.Create(context.Background(), question.ID, content, author.ID)
	require.NoError(t, err)
	tick()
	return answer
}

// tick keeps creation timestamps strictly ordered for the order-sensitive
// listing tests.
func tick() {
	time.Sleep(2 * time.Millisecond)
}

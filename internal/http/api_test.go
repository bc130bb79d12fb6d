package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BhavyNayak/stackit/internal/auth"
	"github.com/BhavyNayak/stackit/internal/repository/sqlite"
	"github.com/BhavyNayak/stackit/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "stackit.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	userRepo := sqlite.NewUserRepository(db)
	questionRepo := sqlite.NewQuestionRepository(db)
	answerRepo := sqlite.NewAnswerRepository(db)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewHandler(
		service.NewUserService(userRepo),
		service.NewQuestionService(questionRepo),
		service.NewAnswerService(answerRepo, questionRepo),
		auth.NewTokenManager("test-secret", "stackit", time.Hour),
		logger,
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) (int, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	return w.Code, envelope
}

func registerAndLogin(t *testing.T, router *gin.Engine, username, email string) string {
	t.Helper()

	code, _ := doJSON(t, router, http.MethodPost, "/api/users/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, code)

	code, envelope := doJSON(t, router, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, code)

	data := envelope.Data.(map[string]any)
	require.Equal(t, "bearer", data["token_type"])
	token, _ := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterAndEnvelopeShape(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doJSON(t, router, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, http.StatusCreated, envelope.Status)
	assert.NotEmpty(t, envelope.Message)

	data := envelope.Data.(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "user", data["role"])
	_, hasPassword := data["password"]
	assert.False(t, hasPassword, "password never leaves the server")
	_, hasHash := data["password_hash"]
	assert.False(t, hasHash)
}

func TestRegisterDuplicateEmailHTTP(t *testing.T) {
	router := newTestRouter(t)

	registerAndLogin(t, router, "alice", "alice@example.com")

	code, envelope := doJSON(t, router, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice-two",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, http.StatusConflict, envelope.Status)
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	registerAndLogin(t, router, "alice", "alice@example.com")

	code, _ := doJSON(t, router, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, router, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	code, _ := doJSON(t, router, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, router, http.MethodGet, "/api/users/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, router, http.MethodPost, "/api/questions/", "", gin.H{
		"title":       "t",
		"description": "d",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestMe(t *testing.T) {
	router := newTestRouter(t)

	token := registerAndLogin(t, router, "alice", "alice@example.com")

	code, envelope := doJSON(t, router, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "alice@example.com", data["email"])
}

func TestUserUpdateAuthorization(t *testing.T) {
	router := newTestRouter(t)

	registerAndLogin(t, router, "alice", "alice@example.com")
	bobToken := registerAndLogin(t, router, "bob", "bob@example.com")

	// look up alice's id as bob
	code, envelope := doJSON(t, router, http.MethodGet, "/api/users/", bobToken, nil)
	require.Equal(t, http.StatusOK, code)
	var aliceID string
	for _, item := range envelope.Data.([]any) {
		user := item.(map[string]any)
		if user["username"] == "alice" {
			aliceID = user["user_id"].(string)
		}
	}
	require.NotEmpty(t, aliceID)

	// bob is neither alice nor an admin
	code, _ = doJSON(t, router, http.MethodPut, "/api/users/"+aliceID, bobToken, gin.H{
		"username": "hacked",
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doJSON(t, router, http.MethodDelete, "/api/users/"+aliceID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

// Only admins assign roles: a user editing their own account cannot ride the
// self-or-admin gate into a role change.
func TestUserCannotSelfPromote(t *testing.T) {
	router := newTestRouter(t)

	token := registerAndLogin(t, router, "alice", "alice@example.com")

	code, envelope := doJSON(t, router, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	aliceID := envelope.Data.(map[string]any)["user_id"].(string)

	code, _ = doJSON(t, router, http.MethodPut, "/api/users/"+aliceID, token, gin.H{
		"role": "admin",
	})
	assert.Equal(t, http.StatusForbidden, code)

	// role unchanged, so the admin-only delete gate still holds
	code, envelope = doJSON(t, router, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user", envelope.Data.(map[string]any)["role"])

	code, _ = doJSON(t, router, http.MethodDelete, "/api/users/"+aliceID, token, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestQuestionSearchHTTP(t *testing.T) {
	router := newTestRouter(t)

	token := registerAndLogin(t, router, "alice", "alice@example.com")

	for _, q := range []gin.H{
		{"title": "Gopher things", "description": "about gophers"},
		{"title": "other", "description": "no match here"},
	} {
		code, _ := doJSON(t, router, http.MethodPost, "/api/questions/", token, q)
		require.Equal(t, http.StatusCreated, code)
	}

	code, envelope := doJSON(t, router, http.MethodGet, "/api/questions/?search=GOPHER", token, nil)
	require.Equal(t, http.StatusOK, code)
	results := envelope.Data.([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "Gopher things", results[0].(map[string]any)["title"])
}

// Full accept flow: U1 asks, U2 answers, only U1 can accept, and the accepted
// answer is readable afterwards.
func TestAcceptAnswerEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	u1Token := registerAndLogin(t, router, "asker", "asker@example.com")
	u2Token := registerAndLogin(t, router, "helper", "helper@example.com")

	code, envelope := doJSON(t, router, http.MethodPost, "/api/questions/", u1Token, gin.H{
		"title":       "how to test handlers?",
		"description": "httptest or otherwise",
	})
	require.Equal(t, http.StatusCreated, code)
	questionID := envelope.Data.(map[string]any)["question_id"].(string)

	code, envelope = doJSON(t, router, http.MethodPost, "/api/answers/", u2Token, gin.H{
		"question_id": questionID,
		"content":     "use httptest",
	})
	require.Equal(t, http.StatusCreated, code)
	answerID := envelope.Data.(map[string]any)["answer_id"].(string)

	// the answer's own author cannot accept it
	code, _ = doJSON(t, router, http.MethodPost, "/api/answers/"+answerID+"/accept", u2Token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// the question's author can
	code, envelope = doJSON(t, router, http.MethodPost, "/api/answers/"+answerID+"/accept", u1Token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope.Data.(map[string]any)["is_accepted"])

	code, envelope = doJSON(t, router, http.MethodGet, "/api/answers/question/"+questionID+"/accepted", u1Token, nil)
	require.Equal(t, http.StatusOK, code)
	accepted := envelope.Data.(map[string]any)
	assert.Equal(t, answerID, accepted["answer_id"])
	assert.Equal(t, true, accepted["is_accepted"])
}

func TestQuestionUpdateForbiddenHTTP(t *testing.T) {
	router := newTestRouter(t)

	u1Token := registerAndLogin(t, router, "asker", "asker@example.com")
	u2Token := registerAndLogin(t, router, "other", "other@example.com")

	code, envelope := doJSON(t, router, http.MethodPost, "/api/questions/", u1Token, gin.H{
		"title":       "mine",
		"description": "hands off",
	})
	require.Equal(t, http.StatusCreated, code)
	questionID := envelope.Data.(map[string]any)["question_id"].(string)

	code, _ = doJSON(t, router, http.MethodPut, "/api/questions/"+questionID, u2Token, gin.H{
		"title": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doJSON(t, router, http.MethodDelete, "/api/questions/"+questionID, u2Token, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestGetQuestionWithAuthorHTTP(t *testing.T) {
	router := newTestRouter(t)

	token := registerAndLogin(t, router, "alice", "alice@example.com")

	code, envelope := doJSON(t, router, http.MethodPost, "/api/questions/", token, gin.H{
		"title":       "who asked?",
		"description": "check author_username",
	})
	require.Equal(t, http.StatusCreated, code)
	questionID := envelope.Data.(map[string]any)["question_id"].(string)

	code, envelope = doJSON(t, router, http.MethodGet, "/api/questions/"+questionID, token, nil)
	require.Equal(t, http.StatusOK, code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, "alice", data["author_username"])
	assert.Equal(t, "who asked?", data["question"].(map[string]any)["title"])
}

func TestValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	// short password
	code, _ := doJSON(t, router, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// malformed email
	code, _ = doJSON(t, router, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice",
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	token := registerAndLogin(t, router, "alice", "alice@example.com")

	// missing title
	code, _ = doJSON(t, router, http.MethodPost, "/api/questions/", token, gin.H{
		"description": "no title",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// whitespace-only title slips past the required binding but stays a 400
	code, _ = doJSON(t, router, http.MethodPost, "/api/questions/", token, gin.H{
		"title":       "   ",
		"description": "body",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// bad uuid in path
	code, _ = doJSON(t, router, http.MethodGet, "/api/questions/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

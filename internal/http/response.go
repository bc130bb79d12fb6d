package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BhavyNayak/stackit/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Envelope is the uniform shape of every response body.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// respondError maps the error taxonomy onto HTTP statuses. Unclassified
// errors are logged and surfaced as a generic 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respond(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrConflict):
		respond(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, domain.ErrForbidden):
		respond(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		respond(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidInput):
		respond(c, http.StatusBadRequest, err.Error(), nil)
	default:
		h.log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respond(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func respondBadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, message, nil)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

type UserResponse struct {
	ID        string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

type QuestionResponse struct {
	ID          string  `json:"question_id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

func questionToResponse(question domain.Question) QuestionResponse {
	resp := QuestionResponse{
		ID:          question.ID.String(),
		UserID:      question.UserID.String(),
		Title:       question.Title,
		Description: question.Description,
		CreatedAt:   question.CreatedAt.Format(time.RFC3339),
	}
	if question.UpdatedAt != nil {
		v := question.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}

type AnswerResponse struct {
	ID         string `json:"answer_id"`
	QuestionID string `json:"question_id"`
	UserID     string `json:"user_id"`
	Content    string `json:"content"`
	IsAccepted bool   `json:"is_accepted"`
	CreatedAt  string `json:"created_at"`
}

func answerToResponse(answer domain.Answer) AnswerResponse {
	return AnswerResponse{
		ID:         answer.ID.String(),
		QuestionID: answer.QuestionID.String(),
		UserID:     answer.UserID.String(),
		Content:    answer.Content,
		IsAccepted: answer.Accepted,
		CreatedAt:  answer.CreatedAt.Format(time.RFC3339),
	}
}

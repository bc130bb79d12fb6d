package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/service"
)

type createAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required,uuid"`
	Content    string `json:"content" binding:"required"`
}

type updateAnswerRequest struct {
	Content    *string `json:"content"`
	IsAccepted *bool   `json:"is_accepted"`
}

func (h *Handler) createAnswer(c *gin.Context) {
	var req createAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		respondBadRequest(c, "invalid question_id")
		return
	}

	answer, err := h.answers.Create(c.Request.Context(), questionID, req.Content, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "answer created", answerToResponse(*answer))
}

func (h *Handler) myAnswers(c *gin.Context) {
	skip, limit := pagination(c)
	answers, err := h.answers.ListByUser(c.Request.Context(), currentUser(c).ID, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "answers", answersToResponse(answers))
}

// answersByQuestion lists a question's answers in chronological order.
func (h *Handler) answersByQuestion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	skip, limit := pagination(c)
	answers, err := h.answers.ListByQuestion(c.Request.Context(), id, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "answers", answersToResponse(answers))
}

func (h *Handler) acceptedAnswer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	answer, err := h.answers.GetAcceptedForQuestion(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if answer == nil {
		respond(c, http.StatusOK, "no accepted answer", nil)
		return
	}
	respond(c, http.StatusOK, "accepted answer", answerToResponse(*answer))
}

func (h *Handler) answersByUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	skip, limit := pagination(c)
	answers, err := h.answers.ListByUser(c.Request.Context(), id, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "answers", answersToResponse(answers))
}

func (h *Handler) getAnswer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	aa, err := h.answers.GetWithAuthor(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "answer", gin.H{
		"answer":          answerToResponse(aa.Answer),
		"author_username": aa.AuthorUsername,
	})
}

func (h *Handler) updateAnswer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	answer, err := h.answers.Update(c.Request.Context(), id, service.UpdateAnswerInput{
		Content:  req.Content,
		Accepted: req.IsAccepted,
	}, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "answer updated", answerToResponse(*answer))
}

func (h *Handler) deleteAnswer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.answers.Delete(c.Request.Context(), id, currentUser(c).ID); err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "answer deleted", nil)
}

// acceptAnswer marks the answer as the question's single accepted one.
func (h *Handler) acceptAnswer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	answer, err := h.answers.MarkAccepted(c.Request.Context(), id, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "answer accepted", answerToResponse(*answer))
}

func answersToResponse(answers []domain.Answer) []AnswerResponse {
	resp := make([]AnswerResponse, len(answers))
	for i := range answers {
		resp[i] = answerToResponse(answers[i])
	}
	return resp
}

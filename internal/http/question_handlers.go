package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/service"
)

type createQuestionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateQuestionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *Handler) createQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	question, err := h.questions.Create(c.Request.Context(), req.Title, req.Description, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "question created", questionToResponse(*question))
}

// listQuestions returns the newest questions first; with ?search= it narrows
// to questions whose title or description contains the term.
func (h *Handler) listQuestions(c *gin.Context) {
	skip, limit := pagination(c)

	var (
		questions []domain.Question
		err       error
	)
	if term := c.Query("search"); term != "" {
		questions, err = h.questions.Search(c.Request.Context(), term, skip, limit)
	} else {
		questions, err = h.questions.List(c.Request.Context(), skip, limit)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "questions", questionsToResponse(questions))
}

func questionsToResponse(questions []domain.Question) []QuestionResponse {
	resp := make([]QuestionResponse, len(questions))
	for i := range questions {
		resp[i] = questionToResponse(questions[i])
	}
	return resp
}

func (h *Handler) myQuestions(c *gin.Context) {
	skip, limit := pagination(c)
	questions, err := h.questions.ListByUser(c.Request.Context(), currentUser(c).ID, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "questions", questionsToResponse(questions))
}

func (h *Handler) questionsByUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	skip, limit := pagination(c)
	questions, err := h.questions.ListByUser(c.Request.Context(), id, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "questions", questionsToResponse(questions))
}

func (h *Handler) getQuestion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	qa, err := h.questions.GetWithAuthor(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "question", gin.H{
		"question":        questionToResponse(qa.Question),
		"author_username": qa.AuthorUsername,
	})
}

func (h *Handler) updateQuestion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	question, err := h.questions.Update(c.Request.Context(), id, service.UpdateQuestionInput{
		Title:       req.Title,
		Description: req.Description,
	}, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "question updated", questionToResponse(*question))
}

func (h *Handler) deleteQuestion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.questions.Delete(c.Request.Context(), id, currentUser(c).ID); err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "question deleted", nil)
}

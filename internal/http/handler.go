package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BhavyNayak/stackit/internal/auth"
	"github.com/BhavyNayak/stackit/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	questions service.QuestionService
	answers   service.AnswerService
	tokens    *auth.TokenManager
	log       *logrus.Logger
}

func NewHandler(
	users service.UserService,
	questions service.QuestionService,
	answers service.AnswerService,
	tokens *auth.TokenManager,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		users:     users,
		questions: questions,
		answers:   answers,
		tokens:    tokens,
		log:       log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		respond(c, http.StatusOK, "ok", nil)
	})

	users := api.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)

		authed := users.Group("", h.requireAuth())
		authed.GET("/", h.listUsers)
		authed.GET("/me", h.me)
		authed.GET("/role/:role", h.listUsersByRole)
		authed.GET("/:id", h.getUser)
		authed.PUT("/:id", h.updateUser)
		authed.DELETE("/:id", h.deleteUser)
	}

	questions := api.Group("/questions", h.requireAuth())
	{
		questions.POST("/", h.createQuestion)
		questions.GET("/", h.listQuestions)
		questions.GET("/my-questions", h.myQuestions)
		questions.GET("/user/:id", h.questionsByUser)
		questions.GET("/:id", h.getQuestion)
		questions.PUT("/:id", h.updateQuestion)
		questions.DELETE("/:id", h.deleteQuestion)
	}

	answers := api.Group("/answers", h.requireAuth())
	{
		answers.POST("/", h.createAnswer)
		answers.GET("/my-answers", h.myAnswers)
		answers.GET("/question/:id", h.answersByQuestion)
		answers.GET("/question/:id/accepted", h.acceptedAnswer)
		answers.GET("/user/:id", h.answersByUser)
		answers.GET("/:id", h.getAnswer)
		answers.PUT("/:id", h.updateAnswer)
		answers.DELETE("/:id", h.deleteAnswer)
		answers.POST("/:id/accept", h.acceptAnswer)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

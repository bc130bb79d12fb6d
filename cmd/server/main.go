package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BhavyNayak/stackit/internal/auth"
	"github.com/BhavyNayak/stackit/internal/config"
	apphttp "github.com/BhavyNayak/stackit/internal/http"
	"github.com/BhavyNayak/stackit/internal/repository/sqlite"
	"github.com/BhavyNayak/stackit/internal/service"
)

const tokenIssuer = "stackit"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path, cfg.Debug)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer func() {
		if err := sqlite.Close(db); err != nil {
			logger.Warnf("close database: %v", err)
		}
	}()

	userRepo := sqlite.NewUserRepository(db)
	questionRepo := sqlite.NewQuestionRepository(db)
	answerRepo := sqlite.NewAnswerRepository(db)

	userService := service.NewUserService(userRepo)
	questionService := service.NewQuestionService(questionRepo)
	answerService := service.NewAnswerService(answerRepo, questionRepo)

	tokens := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		tokenIssuer,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler := apphttp.NewHandler(userService, questionService, answerService, tokens, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

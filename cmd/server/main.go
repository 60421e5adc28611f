package main

import (
	"BlogAPI/internal/config"
	"BlogAPI/internal/handlers"
	"BlogAPI/internal/middleware"
	"BlogAPI/internal/repo"
	"BlogAPI/internal/service"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// repositories
	userRepo := repo.NewUserRepository(gormDB)
	postRepo := repo.NewPostRepository(gormDB)
	commentRepo := repo.NewCommentRepository(gormDB)
	tagRepo := repo.NewTagRepository(gormDB)

	// services
	hasher := service.BcryptHasher{}
	userService := service.NewUserService(userRepo, hasher)
	postService := service.NewPostService(postRepo, userRepo)
	commentService := service.NewCommentService(commentRepo)
	tagService := service.NewTagService(tagRepo)

	h := handlers.NewHandler(userService, postService, commentService, tagService, sugar, cfg)

	sugar.Infow("Starting server",
		"addr", cfg.RunAddress,
		"rate_rps", cfg.RateLimitRPS,
		"rate_burst", cfg.RateLimitBurst,
	)

	srv := &http.Server{Addr: cfg.RunAddress, Handler: h.Router}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Infow("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Server forced shutdown", "error", err)
	}
}

package handlers

import (
	"BlogAPI/internal/config"
	"BlogAPI/internal/middleware"
	"BlogAPI/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler собирает роутер: middleware, хендлеры сущностей и маршруты /api.
func NewHandler(
	userService *service.UserService,
	postService *service.PostService,
	commentService *service.CommentService,
	tagService *service.TagService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, cfg)
	postHandler := NewPostHandler(postService, logger)
	commentHandler := NewCommentHandler(commentService, logger)
	tagHandler := NewTagHandler(tagService, logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hello World!"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			// регистрация и логин — под rate limit
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
				r.Post("/create-user", userHandler.Create)
				r.Post("/login", userHandler.Login)
			})
			r.Get("/get-all-users", userHandler.List)
			r.Get("/get-user/{id}", userHandler.Get)
			r.Put("/update-user/{id}", userHandler.Update)
			r.Delete("/delete-user/{id}", userHandler.Delete)
		})

		r.Route("/post", func(r chi.Router) {
			r.Post("/create-post", postHandler.Create)
			r.Get("/get-all-posts", postHandler.List)
			r.Get("/get-post-by-logic", postHandler.ListByTitle)
			r.Get("/get-post/{id}", postHandler.Get)
			r.Put("/update-post/{id}", postHandler.Update)
			r.Delete("/delete-post/{id}", postHandler.Delete)
		})

		r.Route("/comment", func(r chi.Router) {
			r.Post("/create-comment", commentHandler.Create)
			r.Get("/get-all-comments", commentHandler.List)
			r.Get("/get-all-comments-of-post/{id}", commentHandler.ListForPost)
			r.Get("/get-comment/{id}", commentHandler.Get)
			r.Put("/update-comment/{id}", commentHandler.Update)
			r.Delete("/delete-comment/{id}", commentHandler.Delete)
		})

		r.Route("/tag", func(r chi.Router) {
			r.Post("/create-tag", tagHandler.Create)
			r.Get("/get-all-tags", tagHandler.List)
			r.Get("/get-tag-by-prefix", tagHandler.ListByName)
			r.Get("/get-tag/{id}", tagHandler.Get)
			r.Put("/update-tag/{id}", tagHandler.Update)
			r.Delete("/delete-tag/{id}", tagHandler.Delete)
		})
	})

	return &Handler{Router: r}
}

// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"pulse/internal/config"
	"pulse/internal/middleware"
	"pulse/internal/repository"
	"pulse/internal/seed"
	"pulse/internal/service"
	"pulse/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          *store.Store
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo         repository.UserRepository
	postRepo         repository.PostRepository
	commentRepo      repository.CommentRepository
	followRepo       repository.FollowRepository
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	notificationRepo repository.NotificationRepository

	userService         *service.UserService
	postService         *service.PostService
	commentService      *service.CommentService
	relationshipService *service.RelationshipService
	engagementService   *service.EngagementService
	messageService      *service.MessageService
	notificationService *service.NotificationService
}

// NewServer creates a server instance with a freshly seeded store.
func NewServer(cfg *config.Config) (*Server, error) {
	st := store.New(cfg.SimulatedLatency())
	if err := seed.Load(st, cfg.FixturesDir); err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, st), nil
}

// NewServerWithDeps creates a Server using an already-initialized store.
// Use this in tests or when a bootstrap layer performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, st *store.Store) *Server {
	userRepo := repository.NewUserRepository(st.Users)
	postRepo := repository.NewPostRepository(st.Posts)
	commentRepo := repository.NewCommentRepository(st.Comments)
	followRepo := repository.NewFollowRepository(st.Follows)
	conversationRepo := repository.NewConversationRepository(st.Conversations)
	messageRepo := repository.NewMessageRepository(st.Messages)
	notificationRepo := repository.NewNotificationRepository(st.Notifications)

	server := &Server{
		config:           cfg,
		store:            st,
		promMiddleware:   middleware.InitMetrics("pulse-api"),
		userRepo:         userRepo,
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		followRepo:       followRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
	}

	server.userService = service.NewUserService(userRepo)
	server.postService = service.NewPostService(postRepo, followRepo)
	server.commentService = service.NewCommentService(commentRepo, postRepo, notificationRepo)
	server.relationshipService = service.NewRelationshipService(followRepo, userRepo, notificationRepo)
	server.engagementService = service.NewEngagementService(postRepo, commentRepo, notificationRepo)
	server.messageService = service.NewMessageService(conversationRepo, messageRepo)
	server.notificationService = service.NewNotificationService(notificationRepo)

	return server
}

// Store exposes the underlying entity store for bootstrap seeding.
func (s *Server) Store() *store.Store { return s.store }

// SeedDemo generates n extra demo users on top of the fixtures, each with
// posts and follow edges, going through the normal service layer.
func (s *Server) SeedDemo(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	factory := seed.NewFactory(s.userRepo, s.postRepo, s.relationshipService)
	return factory.SeedDemoUsers(ctx, n)
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Demo viewer identity: all viewer-relative state belongs to this user.
	app.Use(s.viewerMiddleware())

	// Context middleware to propagate request ID and viewer ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs before middlewares that can short-circuit (e.g.
	// limiter) so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	// Users
	api.Get("/users/me", s.GetCurrentUser)
	api.Get("/users/search", s.SearchUsers)
	api.Get("/users", s.GetUsers)
	api.Post("/users", s.CreateUser)
	api.Get("/users/:id", s.GetUser)
	api.Put("/users/:id", s.UpdateUser)
	api.Delete("/users/:id", s.DeleteUser)
	api.Get("/users/:id/posts", s.GetUserPosts)
	api.Get("/users/:id/followers", s.GetFollowers)
	api.Get("/users/:id/following", s.GetFollowing)
	api.Post("/users/:id/follow", s.FollowUser)
	api.Delete("/users/:id/follow", s.UnfollowUser)

	// Posts
	api.Get("/posts/all", s.GetAllPosts)
	api.Get("/posts", s.GetFeed)
	api.Post("/posts", s.CreatePost)
	api.Get("/posts/:id", s.GetPost)
	api.Put("/posts/:id", s.UpdatePost)
	api.Delete("/posts/:id", s.DeletePost)
	api.Post("/posts/:id/like", s.TogglePostLike)

	// Comments
	api.Get("/posts/:id/comments", s.GetPostComments)
	api.Post("/posts/:id/comments", s.CreateComment)
	api.Delete("/comments/:id", s.DeleteComment)
	api.Post("/comments/:id/like", s.ToggleCommentLike)

	// Conversations
	api.Get("/conversations", s.GetConversations)
	api.Get("/conversations/:id/messages", s.GetConversationMessages)
	api.Post("/conversations/:id/messages", s.SendMessage)

	// Notifications
	api.Get("/notifications/unread-count", s.GetUnreadNotificationCount)
	api.Get("/notifications", s.GetNotifications)
	api.Post("/notifications/read", s.MarkAllNotificationsRead)
	api.Post("/notifications/:id/read", s.MarkNotificationRead)
}

// viewerMiddleware stamps the configured demo viewer onto every request.
func (s *Server) viewerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("viewerID", s.config.CurrentUserID)
		return c.Next()
	}
}

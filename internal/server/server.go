// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	_ "skillconnect/docs" // swagger docs
	"skillconnect/internal/cache"
	"skillconnect/internal/config"
	"skillconnect/internal/database"
	"skillconnect/internal/middleware"
	"skillconnect/internal/models"
	"skillconnect/internal/notifications"
	"skillconnect/internal/repository"
	"skillconnect/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	userRepo         repository.UserRepository
	postRepo         repository.PostRepository
	commentRepo      repository.CommentRepository
	followRepo       repository.FollowRepository
	likeRepo         repository.LikeRepository
	notificationRepo repository.NotificationRepository
	progressRepo     repository.ProgressRepository
	mediaRepo        repository.MediaRepository

	notifier *notifications.Notifier
	hub      *notifications.Hub

	userService         *service.UserService
	postService         *service.PostService
	commentService      *service.CommentService
	followService       *service.FollowService
	likeService         *service.LikeService
	notificationService *service.NotificationService
	progressService     *service.ProgressService
	mediaService        *service.MediaService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if _, err := database.ConnectReadReplica(cfg); err != nil {
		return nil, fmt.Errorf("read replica connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and optionally
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	server := &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		promMiddleware:   middleware.InitMetrics("skillconnect-api"),
		userRepo:         repository.NewUserRepository(db),
		postRepo:         repository.NewPostRepository(db),
		commentRepo:      repository.NewCommentRepository(db),
		followRepo:       repository.NewFollowRepository(db),
		likeRepo:         repository.NewLikeRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		progressRepo:     repository.NewProgressRepository(db),
		mediaRepo:        repository.NewMediaRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo)
	server.postService = service.NewPostService(server.postRepo, server.mediaRepo)
	server.followService = service.NewFollowService(server.followRepo, server.userRepo)
	server.notificationService = service.NewNotificationService(server.notificationRepo, server.userRepo)
	server.likeService = service.NewLikeService(server.likeRepo, server.postRepo, server.userRepo, server.notificationService)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo, server.userRepo, server.notificationService)
	server.progressService = service.NewProgressService(server.progressRepo, server.userRepo)
	server.mediaService = service.NewMediaService(server.mediaRepo, server.postRepo)

	// Initialize notifier and hub if Redis is available
	if redisClient != nil {
		server.notifier = notifications.NewNotifier(redisClient)
		server.hub = notifications.NewHub()
	}

	// Persisted notifications fan out to connected clients after commit.
	server.notificationService.SetPublisher(func(_ context.Context, n *models.Notification) {
		server.publishUserEvent(n.UserID, EventNotificationCreated, map[string]interface{}{
			"notification_id": n.ID,
			"title":           n.Title,
			"message":         n.Message,
			"created_at":      n.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	})

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
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
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "SkillConnect Backend Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// User routes. Specific routes (/me, /search) must be registered before
	// the generic /:id routes or "me" parses as an ID. Mixed public/protected
	// prefixes carry route-level auth instead of group middleware so public
	// reads stay reachable.
	users := api.Group("/users")
	users.Get("/me", middleware.AuthRequired, s.GetMyProfile)
	users.Put("/me", middleware.AuthRequired, s.UpdateMyProfile)
	users.Delete("/me", middleware.AuthRequired, s.DeleteMyAccount)
	users.Get("/me/likes", middleware.AuthRequired, s.GetMyLikes)
	users.Get("/search", middleware.AuthRequired, s.SearchUsers)
	users.Get("/", middleware.AuthRequired, s.GetAllUsers)
	users.Post("/:id/follow", middleware.AuthRequired, middleware.RateLimit(
		s.redis, 30, time.Minute, "follow"), s.FollowUser)
	users.Delete("/:id/follow", middleware.AuthRequired, s.UnfollowUser)
	users.Get("/:id/follow/status", middleware.AuthRequired, s.GetFollowStatus)
	// World-readable user lookups
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id/followers", s.GetFollowers)
	users.Get("/:id/following", s.GetFollowing)
	users.Get("/:id/follow-counts", s.GetFollowCounts)
	users.Get("/:id/progress", s.GetUserProgress)
	users.Get("/:id", s.GetUserProfile)

	// Post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/search", middleware.RateLimit(
		s.redis, 10, time.Minute, "search"), s.SearchPosts)
	posts.Post("/", middleware.AuthRequired, middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_post"), s.CreatePost)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Post("/:id/like", middleware.AuthRequired, s.LikePost)
	posts.Delete("/:id/like", middleware.AuthRequired, s.UnlikePost)
	posts.Get("/:id/like/status", middleware.AuthRequired, s.GetLikeStatus)
	posts.Get("/:id/likes", s.GetPostLikes)
	posts.Get("/:id/comments", s.GetComments)
	posts.Post("/:id/comments", middleware.AuthRequired, middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.CreateComment)
	posts.Put("/:id/comments/:commentId", middleware.AuthRequired, s.UpdateComment)
	posts.Delete("/:id/comments/:commentId", middleware.AuthRequired, s.DeleteComment)
	posts.Get("/:id/media", s.GetPostMedia)
	posts.Post("/:id/media", middleware.AuthRequired, s.AttachMedia)
	// Generic /:id routes (for item detail, update, delete)
	posts.Put("/:id", middleware.AuthRequired, s.UpdatePost)
	posts.Delete("/:id", middleware.AuthRequired, s.DeletePost)
	posts.Get("/:id", s.GetPost)

	// Media routes
	media := api.Group("/media", middleware.AuthRequired)
	media.Delete("/:id", s.DetachMedia)

	// Notification routes (recipient-scoped)
	notificationsGroup := api.Group("/notifications", middleware.AuthRequired)
	notificationsGroup.Get("/", s.GetMyNotifications)
	notificationsGroup.Get("/count", s.GetMyNotificationCount)
	notificationsGroup.Delete("/:id", s.DeleteNotification)

	// Progress update routes: public feed and detail, protected writes
	progress := api.Group("/progress")
	progress.Get("/", s.GetPublicProgress)
	progress.Post("/", middleware.AuthRequired, s.CreateProgressUpdate)
	progress.Put("/:id", middleware.AuthRequired, s.UpdateProgressUpdate)
	progress.Patch("/:id/visibility", middleware.AuthRequired, s.SetProgressVisibility)
	progress.Delete("/:id", middleware.AuthRequired, s.DeleteProgressUpdate)
	progress.Get("/:id", s.GetProgressUpdate)

	// Websocket endpoint - token via query param, validated before upgrade
	ws := api.Group("/ws", middleware.WebSocketAuthRequired)
	ws.Get("/", s.WebsocketHandler())
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is optional; realtime fanout degrades to in-process only.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "SkillConnect API",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// optionalUserID attempts to extract userID from Authorization header but does not enforce it.
func (s *Server) optionalUserID(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(middleware.TokenIssuer), jwt.WithAudience(middleware.TokenAudience))
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	app := fiber.New(fiber.Config{
		AppName: "SkillConnect API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	// Wire the hub to the Redis subscriber if available
	if s.notifier != nil && s.hub != nil {
		go func() {
			if err := s.hub.StartWiring(s.shutdownCtx, s.notifier); err != nil {
				log.Printf("failed to start %s wiring: %v", s.hub.Name(), err)
			}
		}()
	}

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Cancel the server-scoped context to stop all wiring goroutines
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.hub != nil {
		if err := s.hub.Shutdown(ctx); err != nil {
			log.Printf("error shutting down %s: %v", s.hub.Name(), err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

package server

import (
	"time"

	"inboxzero/internal/auth"
	"inboxzero/internal/calendar"
	"inboxzero/internal/classify"
	"inboxzero/internal/config"
	"inboxzero/internal/database"
	"inboxzero/internal/dedup"
	"inboxzero/internal/gmail"
	"inboxzero/internal/handlers"
	"inboxzero/internal/pipeline"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo      *echo.Echo
	db        *sqlx.DB
	config    *config.Config
	logger    zerolog.Logger
	store     *database.Store
	processor *pipeline.Processor
}

// New creates a new server instance
func New(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, logger zerolog.Logger) (*Server, error) {
	classifier, err := classify.New(cfg)
	if err != nil {
		return nil, err
	}

	oauthConfig := auth.GoogleOAuthConfig(cfg)
	store := database.NewStore(db)
	processor := pipeline.NewProcessor(
		gmail.NewFetcher(oauthConfig, logger),
		classifier,
		calendar.NewResolver(oauthConfig, cfg.WorkdayStart, cfg.WorkdayEnd, cfg.CalendarDelayMs, logger),
		dedup.NewFilter(rdb),
		store,
		cfg.ClassifyDelayMs,
		logger,
	)

	return &Server{
		config:    cfg,
		db:        db,
		logger:    logger,
		store:     store,
		processor: processor,
	}, nil
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints (keep at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/db", handlers.DBHealthHandler(s.db))

	api.GET("/auth/google/url", handlers.AuthURLHandler(auth.GoogleOAuthConfig(s.config)))
	api.POST("/inbox/process", handlers.ProcessInboxHandler(s.processor, s.config.MaxEmails))
	api.GET("/preferences", handlers.GetPreferencesHandler(s.store))
	api.PUT("/preferences", handlers.UpdatePreferencesHandler(s.store, s.processor))
	api.GET("/suggestions/pending", handlers.PendingSuggestionsHandler(s.store))
	api.GET("/suggestions/overdue", handlers.OverdueSuggestionsHandler(s.store))
	api.POST("/suggestions/:id/complete", handlers.CompleteSuggestionHandler(s.store))
	api.POST("/suggestions/:id/dismiss", handlers.DismissSuggestionHandler(s.store))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}

package rest

import (
	"errors"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/services/coach"
)

// Config holds configuration for the REST handler
type Config struct {
	// CoachService runs every session operation
	CoachService coach.Service

	// AllowedOrigins for CORS; "*" or empty allows every origin
	AllowedOrigins []string

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// Handler serves the JSON API
type Handler struct {
	coachService   coach.Service
	allowedOrigins []string
	log            *zap.Logger
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.CoachService == nil {
		return nil, errors.New("coach service cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Handler{
		coachService:   cfg.CoachService,
		allowedOrigins: cfg.AllowedOrigins,
		log:            log,
	}, nil
}

// Router builds a gin engine with recovery, request logging, CORS and every route
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger(), cors.New(h.corsConfig()))
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes adds the API routes to r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	{
		game := api.Group("/game")
		game.POST("/start", h.startGame)
		game.GET("/:id", h.getGame)
		game.GET("/:id/deck", h.getDeck)
		game.POST("/:id/draw", h.drawCards)
		game.POST("/:id/mulligan", h.mulligan)
		game.POST("/:id/bench", h.benchCard)
		game.POST("/:id/recall", h.recallCard)
		game.POST("/:id/play-drive", h.playDrive)
		game.GET("/:id/shop", h.getShop)
		game.POST("/:id/buy-card", h.buyCard)
		game.POST("/:id/sell-card", h.sellCard)
		game.GET("/:id/draft-reward", h.getDraftReward)
		game.POST("/:id/select-draft-card", h.selectDraftCard)

		api.GET("/sessions", h.listSessions)
		api.GET("/coaches/:player", h.getCoach)
		api.DELETE("/coaches/:player/session", h.abandonGame)
		api.GET("/cards", h.listCards)
		api.GET("/cards/:kind", h.listCards)
		api.GET("/deck-types", h.listDeckTypes)
		api.GET("/career-progress", h.careerProgress)
		api.GET("/leaderboard", h.leaderboard)
	}
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(h.allowedOrigins) == 0 || (len(h.allowedOrigins) == 1 && h.allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = h.allowedOrigins
	}
	return cfg
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		h.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

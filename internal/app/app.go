package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/catalog"
	"github.com/KirkDiggler/gridiron/internal/common/clock"
	"github.com/KirkDiggler/gridiron/internal/common/uuid"
	"github.com/KirkDiggler/gridiron/internal/config"
	"github.com/KirkDiggler/gridiron/internal/dice"
	coachRepo "github.com/KirkDiggler/gridiron/internal/repositories/coach"
	lockRepo "github.com/KirkDiggler/gridiron/internal/repositories/lock"
	sessionRepo "github.com/KirkDiggler/gridiron/internal/repositories/session"
	"github.com/KirkDiggler/gridiron/internal/services/coach"
	"github.com/KirkDiggler/gridiron/internal/services/commentary"
)

// App is the wired service graph shared by the server and the bot
type App struct {
	Redis        *redis.Client
	Catalog      *catalog.Catalog
	CoachService coach.Service
	Commentary   commentary.Service
}

// New connects to Redis and wires repositories and services from cfg
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	a, err := wire(client, cfg, log)
	if err != nil {
		client.Close()
		return nil, err
	}
	return a, nil
}

func wire(client *redis.Client, cfg *config.Config, log *zap.Logger) (*App, error) {
	cards, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded",
		zap.Int("cards", len(cards.All())),
		zap.Int("archetypes", len(cards.Archetypes())))

	uuidGen := uuid.New()

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	coaches, err := coachRepo.NewRedis(&coachRepo.Config{RedisClient: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create coach repository: %w", err)
	}
	locks, err := lockRepo.NewRedis(&lockRepo.Config{
		RedisClient:   client,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lock repository: %w", err)
	}

	roller := dice.New(&dice.Config{Seed: cfg.RandomSeed})

	commentarySvc, err := commentary.New(&commentary.Config{DiceRoller: roller})
	if err != nil {
		return nil, fmt.Errorf("failed to create commentary service: %w", err)
	}

	coachSvc, err := coach.New(&coach.Config{
		StartingCoachingPoints: &cfg.StartingCoachingPoints,
		InitialHandSize:        &cfg.InitialHandSize,
		LockTimeout:            cfg.SessionLockTimeout,
		LockTTL:                cfg.SessionLockTTL,
		SessionRepo:            sessions,
		CoachRepo:              coaches,
		LockRepo:               locks,
		Catalog:                cards,
		DiceRoller:             roller,
		Clock:                  clock.New(),
		UUIDGenerator:          uuidGen,
		Commentary:             commentarySvc,
		Logger:                 log.Named("coach"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create coach service: %w", err)
	}

	return &App{
		Redis:        client,
		Catalog:      cards,
		CoachService: coachSvc,
		Commentary:   commentarySvc,
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return c, nil
}

// Close releases the Redis connection pool
func (a *App) Close() error {
	return a.Redis.Close()
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration shared by the server and the bot
type Config struct {
	// Redis connection
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	// HTTPAddr is where the REST API listens
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// CatalogPath overrides the embedded card catalog
	CatalogPath string `env:"CATALOG_PATH"`

	// RandomSeed makes every shuffle and roll reproducible when non-zero
	RandomSeed int64 `env:"RANDOM_SEED"`

	// Session tuning
	StartingCoachingPoints int           `env:"STARTING_COACHING_POINTS" envDefault:"100"`
	InitialHandSize        int           `env:"INITIAL_HAND_SIZE"        envDefault:"5"`
	SessionLockTimeout     time.Duration `env:"SESSION_LOCK_TIMEOUT"     envDefault:"5s"`
	SessionLockTTL         time.Duration `env:"SESSION_LOCK_TTL"         envDefault:"30s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Logging
	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT"`

	// Discord bot
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
}

// Load reads the optional dotenv files (".env" when none are given) and then parses
// the environment. Variables already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.InitialHandSize < 0 {
		return nil, fmt.Errorf("INITIAL_HAND_SIZE must not be negative, got %d", cfg.InitialHandSize)
	}
	if cfg.StartingCoachingPoints < 0 {
		return nil, fmt.Errorf("STARTING_COACHING_POINTS must not be negative, got %d", cfg.StartingCoachingPoints)
	}

	return cfg, nil
}

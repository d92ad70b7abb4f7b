package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/gridiron/internal/common/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix = "lock:"

	defaultTTL           = 30 * time.Second
	defaultRetryInterval = 25 * time.Millisecond
)

var (
	// ErrLockTimeout is returned when ctx ends before the lock is free
	ErrLockTimeout = errors.New("timed out waiting for lock")

	// ErrLockNotHeld is returned when releasing a lock that expired or changed owner
	ErrLockNotHeld = errors.New("lock not held")
)

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Config holds configuration for the Redis lock repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator creates lock tokens
	UUIDGenerator uuid.UUID

	// RetryInterval is the pause between acquisition attempts
	RetryInterval time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	uuidGenerator uuid.UUID
	retryInterval time.Duration
}

// NewRedis creates a new Redis-backed lock repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = defaultRetryInterval
	}

	return &redisRepository{
		client:        cfg.RedisClient,
		uuidGenerator: uuidGenerator,
		retryInterval: retryInterval,
	}, nil
}

func lockKey(key string) string {
	return fmt.Sprintf("%s%s", lockKeyPrefix, key)
}

// Acquire takes the lock with SET NX, retrying until ctx is done
func (r *redisRepository) Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	token := r.uuidGenerator.NewUUID()
	key := lockKey(input.Key)

	ticker := time.NewTicker(r.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s", ErrLockTimeout, input.Key)
			}
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}
		if ok {
			return &AcquireOutput{Token: token}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, input.Key)
		case <-ticker.C:
		}
	}
}

// Release deletes the lock when the token still owns it
func (r *redisRepository) Release(ctx context.Context, input *ReleaseInput) error {
	if input == nil || input.Key == "" || input.Token == "" {
		return errors.New("input, key and token cannot be empty")
	}

	deleted, err := releaseScript.Run(ctx, r.client, []string{lockKey(input.Key)}, input.Token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if deleted == 0 {
		return ErrLockNotHeld
	}

	return nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix       = "session:"
	activeSessionsKey      = "active_sessions"
	coachSessionsKeyPrefix = "coach_sessions:"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, id)
}

func coachSessionsKey(coachID string) string {
	return fmt.Sprintf("%s%s", coachSessionsKeyPrefix, coachID)
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(input.Session.ID), sessionJSON, 0)

	if input.Session.Status.IsTerminal() {
		pipe.SRem(ctx, activeSessionsKey, input.Session.ID)
	} else {
		pipe.SAdd(ctx, activeSessionsKey, input.Session.ID)
	}

	if input.Session.CoachID != "" {
		pipe.ZAdd(ctx, coachSessionsKey(input.Session.CoachID), redis.Z{
			Score:  float64(input.Session.CreatedAt.UnixNano()),
			Member: input.Session.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session and its index entries from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(input.SessionID))
	pipe.SRem(ctx, activeSessionsKey, input.SessionID)
	if session.CoachID != "" {
		pipe.ZRem(ctx, coachSessionsKey(session.CoachID), input.SessionID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// GetActiveSessions retrieves all non-terminal sessions from Redis
func (r *redisRepository) GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error) {
	sessionIDs, err := r.client.SMembers(ctx, activeSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active session IDs: %w", err)
	}

	sessions, err := r.getMany(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	return &GetActiveSessionsOutput{
		Sessions: sessions,
	}, nil
}

// GetSessionsByCoach retrieves a coach's sessions ordered by creation time
func (r *redisRepository) GetSessionsByCoach(ctx context.Context, input *GetSessionsByCoachInput) ([]*models.Session, error) {
	if input == nil || input.CoachID == "" {
		return nil, errors.New("input and coach ID cannot be empty")
	}

	sessionIDs, err := r.client.ZRange(ctx, coachSessionsKey(input.CoachID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get coach sessions: %w", err)
	}

	return r.getMany(ctx, sessionIDs)
}

// getMany fetches sessions in one pipeline, keeping the order of ids and skipping
// sessions deleted since the index was read
func (r *redisRepository) getMany(ctx context.Context, sessionIDs []string) ([]*models.Session, error) {
	if len(sessionIDs) == 0 {
		return []*models.Session{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sessionIDs))
	for i, id := range sessionIDs {
		cmds[i] = pipe.Get(ctx, sessionKey(id))
	}

	// redis.Nil from a missing key is reported per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for i, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionIDs[i], err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}

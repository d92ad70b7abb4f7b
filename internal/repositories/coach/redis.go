package coach

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
	coachKeyPrefix = "coach:"
	bestScoresKey  = "coach_best_scores"

	defaultLeaderboardLimit = 10
)

// ErrCoachNotFound is returned when a coach is not found
var ErrCoachNotFound = errors.New("coach not found")

// Config holds configuration for the Redis coach repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed coach repository
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

func coachKey(id string) string {
	return fmt.Sprintf("%s%s", coachKeyPrefix, id)
}

// SaveCoach persists a coach profile to Redis. BestScore is not part of the
// profile; it lives in the best score sorted set and only RecordScore moves it.
func (r *redisRepository) SaveCoach(ctx context.Context, input *SaveCoachInput) error {
	if input == nil || input.Coach == nil {
		return errors.New("input and coach cannot be nil")
	}

	coach := input.Coach
	if coach.ID == "" {
		return errors.New("coach ID cannot be empty")
	}

	stored := *coach
	stored.BestScore = 0

	coachJSON, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("failed to marshal coach: %w", err)
	}

	if err := r.client.Set(ctx, coachKey(coach.ID), coachJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save coach: %w", err)
	}

	return nil
}

// GetCoach retrieves a coach by ID from Redis
func (r *redisRepository) GetCoach(ctx context.Context, input *GetCoachInput) (*models.Coach, error) {
	if input == nil || input.CoachID == "" {
		return nil, errors.New("input and coach ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	getCmd := pipe.Get(ctx, coachKey(input.CoachID))
	scoreCmd := pipe.ZScore(ctx, bestScoresKey, input.CoachID)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get coach: %w", err)
	}

	coachJSON, err := getCmd.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach: %w", err)
	}

	var coach models.Coach
	if err := json.Unmarshal([]byte(coachJSON), &coach); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coach: %w", err)
	}

	// the sorted set owns the best score; the profile copy is never trusted
	best, err := scoreCmd.Result()
	switch {
	case errors.Is(err, redis.Nil):
		coach.BestScore = 0
	case err != nil:
		return nil, fmt.Errorf("failed to get best score: %w", err)
	default:
		coach.BestScore = best
	}

	return &coach, nil
}

// UpdateCoachSession updates a coach's current session in Redis. Callers that
// also write the profile must hold the coach lock.
func (r *redisRepository) UpdateCoachSession(ctx context.Context, input *UpdateCoachSessionInput) error {
	if input == nil || input.CoachID == "" {
		return errors.New("input and coach ID cannot be empty")
	}

	coach, err := r.GetCoach(ctx, &GetCoachInput{CoachID: input.CoachID})
	if err != nil {
		return err
	}

	coach.CurrentSessionID = input.SessionID
	return r.SaveCoach(ctx, &SaveCoachInput{Coach: coach})
}

// RecordScore raises the coach's best score when the new score beats it
func (r *redisRepository) RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error) {
	if input == nil || input.CoachID == "" {
		return nil, errors.New("input and coach ID cannot be empty")
	}

	changed, err := r.client.ZAddArgs(ctx, bestScoresKey, redis.ZAddArgs{
		GT: true,
		Ch: true,
		Members: []redis.Z{{
			Score:  input.Score,
			Member: input.CoachID,
		}},
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to record score: %w", err)
	}

	best, err := r.client.ZScore(ctx, bestScoresKey, input.CoachID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get best score: %w", err)
	}

	return &RecordScoreOutput{
		BestScore: best,
		NewBest:   changed > 0,
	}, nil
}

// GetLeaderboard retrieves the highest best scores with coach names
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := defaultLeaderboardLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, bestScoresKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(scores) == 0 {
		return &GetLeaderboardOutput{
			Entries: []*models.LeaderboardEntry{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(scores))
	for i, z := range scores {
		cmds[i] = pipe.Get(ctx, coachKey(z.Member.(string)))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get leaderboard coaches: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		coachID := z.Member.(string)
		entry := &models.LeaderboardEntry{
			Rank:      i + 1,
			CoachID:   coachID,
			CoachName: coachID,
			BestScore: z.Score,
		}

		coachJSON, err := cmds[i].Result()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return nil, fmt.Errorf("failed to get coach %s: %w", coachID, err)
		default:
			var coach models.Coach
			if err := json.Unmarshal([]byte(coachJSON), &coach); err != nil {
				return nil, fmt.Errorf("failed to unmarshal coach %s: %w", coachID, err)
			}
			if coach.Name != "" {
				entry.CoachName = coach.Name
			}
		}

		entries = append(entries, entry)
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

package coach

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gridiron/internal/repositories/coach Repository

import (
	"context"

	"github.com/KirkDiggler/gridiron/internal/models"
)

// Repository defines the interface for coach data persistence
type Repository interface {
	// SaveCoach persists a coach
	SaveCoach(ctx context.Context, input *SaveCoachInput) error

	// GetCoach retrieves a coach by ID
	GetCoach(ctx context.Context, input *GetCoachInput) (*models.Coach, error)

	// UpdateCoachSession points a coach at their current session
	UpdateCoachSession(ctx context.Context, input *UpdateCoachSessionInput) error

	// RecordScore keeps the coach's best session score
	RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error)

	// GetLeaderboard retrieves the top coaches by best score
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}

package coach

import "github.com/KirkDiggler/gridiron/internal/models"

// SaveCoachInput contains parameters for saving a coach
type SaveCoachInput struct {
	Coach *models.Coach
}

// GetCoachInput contains parameters for retrieving a coach
type GetCoachInput struct {
	CoachID string
}

// UpdateCoachSessionInput contains parameters for updating a coach's current session.
// An empty SessionID clears it.
type UpdateCoachSessionInput struct {
	CoachID   string
	SessionID string
}

// RecordScoreInput contains a finished or in-progress session score
type RecordScoreInput struct {
	CoachID string
	Score   float64
}

// RecordScoreOutput contains the coach's best score after recording
type RecordScoreOutput struct {
	BestScore float64
	NewBest   bool
}

// GetLeaderboardInput contains parameters for the leaderboard query
type GetLeaderboardInput struct {
	Limit int
}

// GetLeaderboardOutput contains the ranked coaches
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}

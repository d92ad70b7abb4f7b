package models

// LeaderboardEntry is a coach's best career score
type LeaderboardEntry struct {
	// Rank is 1-based
	Rank int `json:"rank"`

	// CoachID is the coach's identity
	CoachID string `json:"coach_id"`

	// CoachName is the display name of the coach
	CoachName string `json:"coach_name"`

	// BestScore is the highest session score the coach has reached
	BestScore float64 `json:"best_score"`
}

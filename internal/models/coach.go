package models

import (
	"time"
)

// Coach represents a person who runs sessions
type Coach struct {
	// ID is the coach's identity (Discord user ID or API player name)
	ID string `json:"id"`

	// Name is the display name of the coach
	Name string `json:"name"`

	// CurrentSessionID is the session the coach is playing, if any
	CurrentSessionID string `json:"current_session_id,omitempty"`

	// SessionsPlayed counts every session the coach has started
	SessionsPlayed int `json:"sessions_played"`

	// BestScore is the highest session score recorded for the coach
	BestScore float64 `json:"best_score"`

	// LastPlayedAt is when the coach last started a session
	LastPlayedAt time.Time `json:"last_played_at"`
}

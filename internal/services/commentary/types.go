package commentary

import (
	"github.com/KirkDiggler/gridiron/internal/models"
)

// Tone represents the tone of a message
type Tone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral Tone = "neutral"

	// ToneHype is used for big plays
	ToneHype Tone = "hype"

	// ToneSarcastic is used when things go wrong
	ToneSarcastic Tone = "sarcastic"

	// ToneEncouraging is used after a setback
	ToneEncouraging Tone = "encouraging"

	// ToneCelebration is used for season and career milestones
	ToneCelebration Tone = "celebration"
)

// GetDriveCommentaryInput contains parameters for drive commentary
type GetDriveCommentaryInput struct {
	// CoachName is the display name of the coach
	CoachName string

	// Result is the drive after progression rules were applied
	Result *models.DriveResult
}

// GetDriveCommentaryOutput contains drive commentary
type GetDriveCommentaryOutput struct {
	// Headline sums up the drive
	Headline string

	// PlayByPlay has one line per resolved card, in play order
	PlayByPlay []string

	Tone Tone
}

// GetTransitionMessageInput contains parameters for a transition message
type GetTransitionMessageInput struct {
	CoachName  string
	Transition models.Transition

	// Progress is the session progress after the transition
	Progress models.Progress
}

// GetTransitionMessageOutput contains the transition message
type GetTransitionMessageOutput struct {
	Message string
	Tone    Tone
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	// ErrorType is a short code for the failure (see the ErrorType constants)
	ErrorType string
}

// GetErrorMessageOutput contains the error message
type GetErrorMessageOutput struct {
	Message string
	Tone    Tone
}

// Error types understood by GetErrorMessage
const (
	ErrorTypeNoSession    = "no_session"
	ErrorTypeSessionOver  = "session_over"
	ErrorTypeSessionBusy  = "session_busy"
	ErrorTypeInvalidCard  = "invalid_card"
	ErrorTypeInsufficient = "insufficient_funds"
	ErrorTypeHandFull     = "hand_full"
	ErrorTypeNoDraft      = "no_draft"
	ErrorTypeLocked       = "archetype_locked"
	ErrorTypeInvalidInput = "invalid_input"
)

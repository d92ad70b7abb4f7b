package commentary

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gridiron/internal/services/commentary Service

import "context"

// Service produces play-by-play flavor text
type Service interface {
	// GetDriveCommentary returns a headline and one line per resolved play
	GetDriveCommentary(ctx context.Context, input *GetDriveCommentaryInput) (*GetDriveCommentaryOutput, error)

	// GetTransitionMessage returns a message for where the session went after a drive
	GetTransitionMessage(ctx context.Context, input *GetTransitionMessageInput) (*GetTransitionMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}

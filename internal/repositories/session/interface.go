package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gridiron/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/gridiron/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetActiveSessions retrieves every session that can still play drives
	GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error)

	// GetSessionsByCoach retrieves a coach's sessions, oldest first
	GetSessionsByCoach(ctx context.Context, input *GetSessionsByCoachInput) ([]*models.Session, error)
}

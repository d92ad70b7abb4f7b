package lock

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gridiron/internal/repositories/lock Repository

import (
	"context"
)

// Repository hands out exclusive, expiring locks on string keys
type Repository interface {
	// Acquire blocks until the lock is held or ctx is done
	Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error)

	// Release frees a lock if the token still owns it
	Release(ctx context.Context, input *ReleaseInput) error
}

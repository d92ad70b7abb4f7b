package lock

import "time"

// AcquireInput contains parameters for acquiring a lock
type AcquireInput struct {
	// Key is the resource to lock, e.g. a session ID
	Key string

	// TTL bounds how long a crashed holder can keep the lock
	TTL time.Duration
}

// AcquireOutput contains the token needed to release the lock
type AcquireOutput struct {
	Token string
}

// ReleaseInput contains parameters for releasing a lock
type ReleaseInput struct {
	Key   string
	Token string
}

package port

import "context"

type CacheRepository interface {
	// SetIdempotency reserves a request id, returns false if already reserved
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// ReleaseIdempotency frees a reservation so a failed purchase can be re-driven
	ReleaseIdempotency(ctx context.Context, key string) error
}

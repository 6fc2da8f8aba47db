package service

import "context"

// CodeGenerator produces one-time codes.
type CodeGenerator interface {
	// Generate returns a fresh numeric code of fixed length.
	Generate() (string, error)
}

// AttemptLimiter counts failed verification attempts per key.
type AttemptLimiter interface {
	// Blocked reports whether the key has reached the attempt limit.
	Blocked(ctx context.Context, key string) (bool, error)

	// RecordFailure counts one failed attempt and returns the running total.
	RecordFailure(ctx context.Context, key string) (int64, error)

	// Reset forgets every attempt recorded for the key.
	Reset(ctx context.Context, key string) error
}

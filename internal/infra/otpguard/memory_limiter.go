package otpguard

import (
	"context"
	"sync"
	"time"

	"zeneasy/internal/domain/service"
)

type attemptEntry struct {
	count     int64
	expiresAt time.Time
}

// memoryLimiter implements service.AttemptLimiter in process memory.
// Counts are per replica and reset on restart.
type memoryLimiter struct {
	mu          sync.Mutex
	entries     map[string]*attemptEntry
	maxAttempts int64
	window      time.Duration
	now         func() time.Time
}

// NewMemoryLimiter is the constructor for memoryLimiter.
func NewMemoryLimiter(maxAttempts int, window time.Duration) service.AttemptLimiter {
	return &memoryLimiter{
		entries:     make(map[string]*attemptEntry),
		maxAttempts: int64(maxAttempts),
		window:      window,
		now:         time.Now,
	}
}

// Blocked reports whether the key has reached the attempt limit.
func (l *memoryLimiter) Blocked(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.liveEntry(key)
	if entry == nil {
		return false, nil
	}

	return entry.count >= l.maxAttempts, nil
}

// RecordFailure counts one failed attempt. The window starts at the first failure.
func (l *memoryLimiter) RecordFailure(_ context.Context, key string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.liveEntry(key)
	if entry == nil {
		entry = &attemptEntry{expiresAt: l.now().Add(l.window)}
		l.entries[key] = entry
	}
	entry.count++

	return entry.count, nil
}

// Reset forgets every attempt recorded for the key.
func (l *memoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)

	return nil
}

// liveEntry returns the unexpired entry for key, dropping an expired one. Caller holds mu.
func (l *memoryLimiter) liveEntry(key string) *attemptEntry {
	entry, ok := l.entries[key]
	if !ok {
		return nil
	}

	if !l.now().Before(entry.expiresAt) {
		delete(l.entries, key)

		return nil
	}

	return entry
}

// unlimitedLimiter never blocks. It is used when no attempt limit is configured.
type unlimitedLimiter struct{}

// NewUnlimitedLimiter is the constructor for unlimitedLimiter.
func NewUnlimitedLimiter() service.AttemptLimiter {
	return unlimitedLimiter{}
}

func (unlimitedLimiter) Blocked(context.Context, string) (bool, error) { return false, nil }

func (unlimitedLimiter) RecordFailure(context.Context, string) (int64, error) { return 0, nil }

func (unlimitedLimiter) Reset(context.Context, string) error { return nil }

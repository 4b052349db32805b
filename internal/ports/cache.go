// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"
	"time"
)

// ResultCache memoizes evaluated calculation display strings.
// Evaluation is pure, so a cached entry is always valid for its key;
// TTLs only bound memory, not correctness. Implementations may use Redis
// or an in-process map.
type ResultCache interface {
	// Get retrieves a cached display string.
	// Returns domain.ErrNotFound if the key does not exist and
	// domain.ErrUnavailable if the backing store is unreachable.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a display string under the key with a TTL.
	// A TTL of 0 means no expiration.
	Set(ctx context.Context, key, display string, ttl time.Duration) error
}

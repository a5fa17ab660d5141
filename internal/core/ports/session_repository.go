package ports

import (
	"context"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for delivery
// session aggregates. Update performs an optimistic version check and
// reports a concurrency conflict when the row changed underneath.
type SessionRepository interface {
	// Add persists a new session aggregate to storage.
	Add(ctx context.Context, aggregate *session.Session) error

	// Update persists changes to an existing session. The row must still
	// carry the version the aggregate was loaded with; otherwise a
	// ConcurrencyConflictError is returned.
	Update(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// GetActiveByShipper retrieves the shipper's non-terminal session, or
	// an ObjectNotFoundError when the shipper has none. The "at most one
	// active session per shipper" invariant relies on this check running
	// in the same transaction as session creation.
	GetActiveByShipper(ctx context.Context, shipperID kernel.UUID) (*session.Session, error)

	// GetOpenStartedBetween retrieves non-terminal sessions whose start
	// time falls within [from, to], for the auto-close sweep.
	GetOpenStartedBetween(ctx context.Context, from, to time.Time) ([]*session.Session, error)
}

package ports

import (
	"context"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates. Update performs an optimistic version check and
// reports a concurrency conflict when the row changed underneath.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment. The row must
	// still carry the version the aggregate was loaded with; otherwise a
	// ConcurrencyConflictError is returned.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetByIDs retrieves the assignments for the given identifiers.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*assignment.Assignment, error)

	// GetOpenByShipperAndParcel finds the shipper's non-terminal
	// assignment containing the given parcel. Task actions address work
	// by (shipper, parcel) rather than by assignment id.
	GetOpenByShipperAndParcel(ctx context.Context, shipperID, parcelID kernel.UUID) (*assignment.Assignment, error)

	// GetOpenBySession retrieves the session's assignments that are not
	// yet terminal, for the session-completion cascade.
	GetOpenBySession(ctx context.Context, sessionID kernel.UUID) ([]*assignment.Assignment, error)
}

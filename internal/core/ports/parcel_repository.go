package ports

import (
	"context"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByIDs retrieves the parcels for the given identifiers. Every id
	// must resolve; a missing parcel is an ObjectNotFoundError.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// GetAllUnassigned retrieves parcels in warehouse status that are not
	// bound to any open assignment, for the auto-assignment sweep.
	GetAllUnassigned(ctx context.Context) ([]*parcel.Parcel, error)
}

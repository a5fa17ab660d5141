package ports

import (
	"context"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
)

// ShipperDirectory provides read access to shipper profiles for
// validation and for resolving the auto-assignment candidate set. The
// directory is a read model maintained from the identity subsystem;
// this core never mutates shipper data.
type ShipperDirectory interface {
	// Get retrieves one shipper profile by id.
	Get(ctx context.Context, id kernel.UUID) (routing.Shipper, error)

	// GetByIDs retrieves the profiles for the given shipper ids. Every id
	// must resolve; a missing shipper is an ObjectNotFoundError.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]routing.Shipper, error)

	// GetAllAvailable retrieves every shipper currently marked available
	// for work.
	GetAllAvailable(ctx context.Context) ([]routing.Shipper, error)
}

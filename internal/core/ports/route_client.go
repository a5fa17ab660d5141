package ports

import (
	"context"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
)

// RouteClient is the adapter contract for the external routing service.
// It answers pairwise travel metrics for a coordinate list; the solver
// algorithm behind it is a black box.
//
// Implementations must carry a bounded request timeout and surface any
// unreachability, timeout or malformed response as a
// SolverUnavailableError so auto-assignment fails fast instead of
// hanging or fabricating a partial matrix.
type RouteClient interface {
	// TravelMatrix returns square duration (seconds) and distance
	// (meters) matrices aligned with the input point order.
	TravelMatrix(
		ctx context.Context,
		points []kernel.GeoPoint,
		vehicle routing.VehicleProfile,
		mode routing.SolverMode,
	) (routing.Matrix, error)
}

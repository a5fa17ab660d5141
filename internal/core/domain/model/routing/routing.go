// Package routing holds the transient inputs and outputs of the
// auto-assignment engine: shipper profiles, unassigned orders, the
// travel matrix obtained from the route service, and the solved tasks.
// None of these types are persisted; they live for the duration of one
// solve.
package routing

import (
	"fmt"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
)

// VehicleProfile selects the travel profile used by the route service.
type VehicleProfile string

const (
	// VehicleMotorbike is the default last-mile profile.
	VehicleMotorbike VehicleProfile = "motorbike"
	// VehicleCar is used for bulk or long-distance runs.
	VehicleCar VehicleProfile = "car"
)

// SolverMode selects the optimization target of the route service.
type SolverMode string

const (
	// ModeFastest minimizes travel time.
	ModeFastest SolverMode = "fastest"
	// ModeShortest minimizes travel distance.
	ModeShortest SolverMode = "shortest"
)

// Shipper is the VRP view of an available delivery person: start point,
// shift window, capacity and zone affinity.
type Shipper struct {
	ID             kernel.UUID
	Location       kernel.GeoPoint
	ShiftStart     time.Time
	MaxSessionTime time.Duration
	Capacity       int
	// WorkingZones lists the zones the shipper may serve, most preferred
	// first. An empty list means no zone constraint.
	WorkingZones []string
}

// Validate checks the shipper profile is usable as a solver input.
func (s Shipper) Validate() error {
	if err := s.ID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipper.id", err)
	}
	if err := s.Location.Validate(); err != nil {
		return err
	}
	if s.ShiftStart.IsZero() {
		return errs.NewValueIsRequiredError("shipper.shiftStart")
	}
	if s.MaxSessionTime <= 0 {
		return errs.NewValueIsInvalidError("shipper.maxSessionTime")
	}
	if s.Capacity <= 0 {
		return errs.NewValueIsInvalidError("shipper.capacity")
	}
	return nil
}

// ShiftEnd returns the hard deadline for the shipper's route.
func (s Shipper) ShiftEnd() time.Time {
	return s.ShiftStart.Add(s.MaxSessionTime)
}

// CanServeZone reports whether the shipper may be offered orders in the
// given zone. A shipper with no configured zones serves everything.
func (s Shipper) CanServeZone(zoneID string) bool {
	if len(s.WorkingZones) == 0 {
		return true
	}
	for _, z := range s.WorkingZones {
		if z == zoneID {
			return true
		}
	}
	return false
}

// ZoneRank returns the position of the zone in the shipper's preference
// list, or len(WorkingZones) when the zone is not listed (including the
// unconstrained case).
func (s Shipper) ZoneRank(zoneID string) int {
	for i, z := range s.WorkingZones {
		if z == zoneID {
			return i
		}
	}
	return len(s.WorkingZones)
}

// Order is the VRP view of an unassigned parcel.
type Order struct {
	ParcelID          kernel.UUID
	Location          kernel.GeoPoint
	ServiceTime       time.Duration
	Priority          int
	ZoneID            string
	DeliveryAddressID kernel.UUID
}

// Validate checks the order is usable as a solver input.
func (o Order) Validate() error {
	if err := o.ParcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order.parcelId", err)
	}
	if err := o.Location.Validate(); err != nil {
		return err
	}
	if err := o.DeliveryAddressID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order.deliveryAddressId", err)
	}
	if o.ServiceTime < 0 {
		return errs.NewValueIsInvalidError("order.serviceTime")
	}
	if o.Priority < 0 {
		return errs.NewValueIsInvalidError("order.priority")
	}
	return nil
}

// Task is one solved stop in a shipper's route.
type Task struct {
	OrderID          kernel.UUID
	Sequence         int
	EstimatedArrival time.Time
	TravelTime       time.Duration
}

// Route is a shipper's solved task list in visit order.
type Route struct {
	ShipperID kernel.UUID
	Tasks     []Task
}

// Statistics aggregates balancing figures across the solved routes.
type Statistics struct {
	AssignedOrders   int
	UnassignedOrders int
	TasksPerShipper  map[kernel.UUID]int
	MeanLoad         float64
	LoadVariance     float64
}

// Solution is the output of one solve: per-shipper routes, the orders
// that found no feasible placement, and balancing statistics. Routes are
// ordered by the solver input order of shippers so identical inputs
// produce identical output.
type Solution struct {
	Routes     []Route
	Unassigned []kernel.UUID
	Statistics Statistics
}

// Matrix holds pairwise travel metrics aligned by input point index:
// Durations[i][j] is the travel time in seconds from point i to point j,
// Distances[i][j] the distance in meters.
type Matrix struct {
	Durations [][]float64
	Distances [][]float64
}

// Validate checks the matrix is square and matches the requested point
// count. A mismatch means the route service answered for a different
// coordinate set and the solve must fail rather than guess.
func (m Matrix) Validate(points int) error {
	if len(m.Durations) != points {
		return errs.NewSolverUnavailableError(
			fmt.Errorf("duration matrix has %d rows, expected %d", len(m.Durations), points))
	}
	for i, row := range m.Durations {
		if len(row) != points {
			return errs.NewSolverUnavailableError(
				fmt.Errorf("duration matrix row %d has %d columns, expected %d", i, len(row), points))
		}
	}
	if len(m.Distances) != points {
		return errs.NewSolverUnavailableError(
			fmt.Errorf("distance matrix has %d rows, expected %d", len(m.Distances), points))
	}
	for i, row := range m.Distances {
		if len(row) != points {
			return errs.NewSolverUnavailableError(
				fmt.Errorf("distance matrix row %d has %d columns, expected %d", i, len(row), points))
		}
	}
	return nil
}

// Duration returns the travel time from point i to point j.
func (m Matrix) Duration(i, j int) time.Duration {
	return time.Duration(m.Durations[i][j] * float64(time.Second))
}

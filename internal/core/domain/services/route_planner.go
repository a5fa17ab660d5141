package services

import (
	"sort"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
)

// RoutePlanner is the domain service at the heart of auto-assignment:
// given available shippers, unassigned orders and a travel-time matrix,
// it partitions the orders into per-shipper routes.
//
// Constraints honored:
//   - capacity: a shipper never carries more parcels than Capacity
//   - shift time: no estimated arrival exceeds the shipper's shift end
//   - zone affinity: an order is a candidate for a shipper only when its
//     zone is among the shipper's working zones (or the shipper has none)
//   - priority: priority-0 stops are placed before any lower-priority
//     stop, so when capacity runs out the urgent work wins
//   - co-location: all orders sharing a delivery address land on the same
//     shipper and appear contiguously in its route
//
// The planner is pure and deterministic: it performs no I/O and identical
// inputs yield identical solutions. Orders with no feasible placement are
// reported as unassigned, never silently dropped or retried.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// addressGroup is one routing stop: every order bound to one delivery
// address. Groups move as a unit so co-located parcels stay together.
type addressGroup struct {
	addressID kernel.UUID
	orders    []routing.Order
	// pointIdx is the matrix index of the group's location (all member
	// orders share the address, the first order's point stands for all).
	pointIdx int
	priority int
	zoneID   string
}

// shipperState tracks a shipper's route as it is built up.
type shipperState struct {
	shipper  routing.Shipper
	pointIdx int
	at       time.Time
	load     int
	tasks    []routing.Task
}

// Plan solves the assignment problem. The matrix must be indexed with
// all shipper start points first (in input order) followed by all order
// locations (in input order); Plan validates the dimensions against that
// layout and fails with a solver error on mismatch.
func (p RoutePlanner) Plan(
	shippers []routing.Shipper,
	orders []routing.Order,
	matrix routing.Matrix,
) (routing.Solution, error) {
	for _, s := range shippers {
		if err := s.Validate(); err != nil {
			return routing.Solution{}, err
		}
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return routing.Solution{}, err
		}
	}
	if err := matrix.Validate(len(shippers) + len(orders)); err != nil {
		return routing.Solution{}, err
	}

	groups := groupByAddress(shippers, orders)

	states := make([]*shipperState, len(shippers))
	for i, s := range shippers {
		states[i] = &shipperState{
			shipper:  s,
			pointIdx: i,
			at:       s.ShiftStart,
		}
	}

	var unassigned []kernel.UUID
	for _, g := range groups {
		best := pickShipper(states, g, matrix)
		if best == nil {
			for _, o := range g.orders {
				unassigned = append(unassigned, o.ParcelID)
			}
			continue
		}

		appendGroup(best, g, matrix)
	}

	solution := routing.Solution{
		Routes:     make([]routing.Route, 0, len(states)),
		Unassigned: unassigned,
	}
	for _, st := range states {
		solution.Routes = append(solution.Routes, routing.Route{
			ShipperID: st.shipper.ID,
			Tasks:     st.tasks,
		})
	}
	solution.Statistics = computeStatistics(states, len(unassigned))

	return solution, nil
}

// groupByAddress bundles orders sharing a delivery address into stops and
// orders the stops for placement: most urgent first, then by address id
// for determinism. Within a group, orders are sorted by priority then
// parcel id.
func groupByAddress(shippers []routing.Shipper, orders []routing.Order) []addressGroup {
	byAddress := make(map[kernel.UUID]*addressGroup)
	var keys []kernel.UUID

	for i, o := range orders {
		g, ok := byAddress[o.DeliveryAddressID]
		if !ok {
			g = &addressGroup{
				addressID: o.DeliveryAddressID,
				pointIdx:  len(shippers) + i,
				priority:  o.Priority,
				zoneID:    o.ZoneID,
			}
			byAddress[o.DeliveryAddressID] = g
			keys = append(keys, o.DeliveryAddressID)
		}
		g.orders = append(g.orders, o)
		if o.Priority < g.priority {
			g.priority = o.Priority
		}
	}

	groups := make([]addressGroup, 0, len(keys))
	for _, k := range keys {
		g := byAddress[k]
		sort.SliceStable(g.orders, func(a, b int) bool {
			if g.orders[a].Priority != g.orders[b].Priority {
				return g.orders[a].Priority < g.orders[b].Priority
			}
			return g.orders[a].ParcelID.String() < g.orders[b].ParcelID.String()
		})
		groups = append(groups, *g)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].priority != groups[b].priority {
			return groups[a].priority < groups[b].priority
		}
		return groups[a].addressID.String() < groups[b].addressID.String()
	})

	return groups
}

// pickShipper scans the shippers for the best feasible host of a stop.
// Primary criterion is added travel time; ties fall to zone preference
// rank, then to the lighter current load, then to input order. Returns
// nil when no shipper can take the stop.
func pickShipper(states []*shipperState, g addressGroup, matrix routing.Matrix) *shipperState {
	var (
		best       *shipperState
		bestTravel time.Duration
		bestRank   int
		bestLoad   int
	)

	for _, st := range states {
		if !st.shipper.CanServeZone(g.zoneID) {
			continue
		}
		if st.load+len(g.orders) > st.shipper.Capacity {
			continue
		}

		travel := matrix.Duration(st.pointIdx, g.pointIdx)
		if !fitsShift(st, g, travel) {
			continue
		}

		rank := st.shipper.ZoneRank(g.zoneID)
		if best == nil ||
			travel < bestTravel ||
			(travel == bestTravel && rank < bestRank) ||
			(travel == bestTravel && rank == bestRank && st.load < bestLoad) {
			best = st
			bestTravel = travel
			bestRank = rank
			bestLoad = st.load
		}
	}

	return best
}

// fitsShift checks that every order of the group can be served before
// the shipper's shift end when appended at the current route tail.
func fitsShift(st *shipperState, g addressGroup, travel time.Duration) bool {
	arrival := st.at.Add(travel)
	for i := range g.orders {
		if i > 0 {
			arrival = arrival.Add(g.orders[i-1].ServiceTime)
		}
		if arrival.After(st.shipper.ShiftEnd()) {
			return false
		}
	}
	return true
}

// appendGroup materializes the stop at the shipper's route tail. The
// first task of the group carries the travel leg; co-located followers
// arrive after the preceding order's service time with zero travel.
func appendGroup(st *shipperState, g addressGroup, matrix routing.Matrix) {
	travel := matrix.Duration(st.pointIdx, g.pointIdx)
	arrival := st.at.Add(travel)

	for i, o := range g.orders {
		taskTravel := time.Duration(0)
		if i == 0 {
			taskTravel = travel
		} else {
			arrival = arrival.Add(g.orders[i-1].ServiceTime)
		}

		st.tasks = append(st.tasks, routing.Task{
			OrderID:          o.ParcelID,
			Sequence:         len(st.tasks),
			EstimatedArrival: arrival,
			TravelTime:       taskTravel,
		})
	}

	last := g.orders[len(g.orders)-1]
	st.at = arrival.Add(last.ServiceTime)
	st.pointIdx = g.pointIdx
	st.load += len(g.orders)
}

// computeStatistics derives balancing figures over the solved routes.
func computeStatistics(states []*shipperState, unassigned int) routing.Statistics {
	stats := routing.Statistics{
		UnassignedOrders: unassigned,
		TasksPerShipper:  make(map[kernel.UUID]int, len(states)),
	}

	if len(states) == 0 {
		return stats
	}

	for _, st := range states {
		stats.TasksPerShipper[st.shipper.ID] = len(st.tasks)
		stats.AssignedOrders += len(st.tasks)
	}

	stats.MeanLoad = float64(stats.AssignedOrders) / float64(len(states))
	var variance float64
	for _, st := range states {
		d := float64(len(st.tasks)) - stats.MeanLoad
		variance += d * d
	}
	stats.LoadVariance = variance / float64(len(states))

	return stats
}

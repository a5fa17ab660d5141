package commands

import (
	"context"
	"time"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/core/domain/services"
	"delivery/internal/core/ports"
	"delivery/internal/pkg/errs"
)

// AutoAssignmentResult is the outcome of one solver run: the created
// assignments, the parcels that found no feasible placement, and the
// balancing statistics of the solution.
type AutoAssignmentResult struct {
	Assignments []*assignment.Assignment
	Unassigned  []kernel.UUID
	Statistics  routing.Statistics
}

// CreateAutoAssignmentCommandHandler runs the auto-assignment pipeline:
// resolve shippers and parcels, fetch the travel matrix, let the route
// planner partition the work, then materialize one assignment per
// delivery-address stop inside one transaction.
//
// A route-service failure or a malformed matrix aborts the whole run
// with a SolverUnavailableError; nothing is partially applied. Parcels
// the planner could not place come back in Unassigned for the caller to
// decide on.
type CreateAutoAssignmentCommandHandler struct {
	uowFactory  AssignmentUoWFactory
	shippers    ports.ShipperDirectory
	routeClient ports.RouteClient
	planner     services.RoutePlanner
	serviceTime time.Duration
}

// NewCreateAutoAssignmentCommandHandler creates a handler for solver
// runs. serviceTime is the per-stop handling estimate fed to the
// planner's shift-time checks.
func NewCreateAutoAssignmentCommandHandler(
	uowFactory AssignmentUoWFactory,
	shippers ports.ShipperDirectory,
	routeClient ports.RouteClient,
	planner services.RoutePlanner,
	serviceTime time.Duration,
) CreateAutoAssignmentCommandHandler {
	return CreateAutoAssignmentCommandHandler{
		uowFactory:  uowFactory,
		shippers:    shippers,
		routeClient: routeClient,
		planner:     planner,
		serviceTime: serviceTime,
	}
}

// Handle processes the auto assignment command.
func (h CreateAutoAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateAutoAssignmentCommand,
) (AutoAssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutoAssignmentResult{}, err
	}

	shippers, err := h.resolveShippers(ctx, cmd)
	if err != nil {
		return AutoAssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AutoAssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	parcels, err := h.resolveParcels(ctx, parcelRepo, cmd)
	if err != nil {
		return AutoAssignmentResult{}, err
	}
	if len(parcels) == 0 {
		return AutoAssignmentResult{Statistics: emptyStatistics(shippers)}, nil
	}
	if len(shippers) == 0 {
		return AutoAssignmentResult{
			Unassigned: parcelIDsOf(parcels),
			Statistics: routing.Statistics{UnassignedOrders: len(parcels)},
		}, nil
	}

	orders := make([]routing.Order, 0, len(parcels))
	byID := make(map[kernel.UUID]*parcel.Parcel, len(parcels))
	for _, p := range parcels {
		byID[p.ID()] = p
		orders = append(orders, routing.Order{
			ParcelID:          p.ID(),
			Location:          p.Location(),
			ServiceTime:       h.serviceTime,
			Priority:          p.Priority(),
			ZoneID:            p.ZoneID(),
			DeliveryAddressID: p.DeliveryAddressID(),
		})
	}

	points := make([]kernel.GeoPoint, 0, len(shippers)+len(orders))
	for _, s := range shippers {
		points = append(points, s.Location)
	}
	for _, o := range orders {
		points = append(points, o.Location)
	}

	matrix, err := h.routeClient.TravelMatrix(ctx, points, cmd.Vehicle(), cmd.Mode())
	if err != nil {
		return AutoAssignmentResult{}, err
	}

	solution, err := h.planner.Plan(shippers, orders, matrix)
	if err != nil {
		return AutoAssignmentResult{}, err
	}

	assignments, err := h.materialize(ctx, uow, solution, byID)
	if err != nil {
		return AutoAssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AutoAssignmentResult{}, err
	}

	return AutoAssignmentResult{
		Assignments: assignments,
		Unassigned:  solution.Unassigned,
		Statistics:  solution.Statistics,
	}, nil
}

func (h CreateAutoAssignmentCommandHandler) resolveShippers(
	ctx context.Context,
	cmd CreateAutoAssignmentCommand,
) ([]routing.Shipper, error) {
	if ids := cmd.ShipperIDs(); len(ids) > 0 {
		return h.shippers.GetByIDs(ctx, ids)
	}
	return h.shippers.GetAllAvailable(ctx)
}

func (h CreateAutoAssignmentCommandHandler) resolveParcels(
	ctx context.Context,
	repo ports.ParcelRepository,
	cmd CreateAutoAssignmentCommand,
) ([]*parcel.Parcel, error) {
	ids := cmd.ParcelIDs()
	if len(ids) == 0 {
		return repo.GetAllUnassigned(ctx)
	}

	parcels, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range parcels {
		if p.Status() != parcel.InWarehouse || p.Assignment() != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("parcelIds", ErrParcelNotAvailable)
		}
	}
	return parcels, nil
}

// materialize turns the solved routes into persisted assignments: one
// assignment per contiguous delivery-address run, sequence numbering
// following the stop order of the route.
func (h CreateAutoAssignmentCommandHandler) materialize(
	ctx context.Context,
	uow AssignmentUoW,
	solution routing.Solution,
	byID map[kernel.UUID]*parcel.Parcel,
) ([]*assignment.Assignment, error) {
	parcelRepo := uow.ParcelRepository()
	assignmentRepo := uow.AssignmentRepository()

	var assignments []*assignment.Assignment
	for _, route := range solution.Routes {
		var (
			stopParcels []*parcel.Parcel
			sequence    int
		)

		flush := func() error {
			if len(stopParcels) == 0 {
				return nil
			}

			created, err := assignment.NewAssignment(
				kernel.NewUUID(),
				route.ShipperID,
				stopParcels[0].DeliveryAddressID(),
				parcelIDsOf(stopParcels),
				sequence,
			)
			if err != nil {
				return err
			}
			if err = assignmentRepo.Add(ctx, created); err != nil {
				return err
			}

			for _, p := range stopParcels {
				if err = p.BindAssignment(created.ID()); err != nil {
					return err
				}
				if err = parcelRepo.Update(ctx, p); err != nil {
					return err
				}
			}

			assignments = append(assignments, created)
			stopParcels = nil
			sequence++
			return nil
		}

		for _, task := range route.Tasks {
			p := byID[task.OrderID]
			if len(stopParcels) > 0 && !stopParcels[0].DeliveryAddressID().IsEqual(p.DeliveryAddressID()) {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			stopParcels = append(stopParcels, p)
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return assignments, nil
}

func parcelIDsOf(parcels []*parcel.Parcel) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(parcels))
	for _, p := range parcels {
		ids = append(ids, p.ID())
	}
	return ids
}

func emptyStatistics(shippers []routing.Shipper) routing.Statistics {
	stats := routing.Statistics{
		TasksPerShipper: make(map[kernel.UUID]int, len(shippers)),
	}
	for _, s := range shippers {
		stats.TasksPerShipper[s.ID] = 0
	}
	return stats
}

// Package http implements the inbound REST adapter on top of the generated
// ServerInterface. Handlers translate wire types to commands and queries and
// map the error taxonomy to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/application/usecases/queries"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/generated/servers"
	"delivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createManualAssignmentHandler commands.CreateManualAssignmentCommandHandler
	createAutoAssignmentHandler   commands.CreateAutoAssignmentCommandHandler
	createSessionHandler          commands.CreateSessionCommandHandler
	completeSessionHandler        commands.CompleteSessionCommandHandler
	failSessionHandler            commands.FailSessionCommandHandler
	acceptTaskHandler             commands.AcceptTaskCommandHandler
	completeTaskHandler           commands.CompleteTaskCommandHandler
	failTaskHandler               commands.FailTaskCommandHandler
	refuseTaskHandler             commands.RefuseTaskCommandHandler
	postponeTaskHandler           commands.PostponeTaskCommandHandler

	// Query handlers
	getActiveSessionsHandler    queries.GetActiveSessionsQueryHandler
	getUnassignedParcelsHandler queries.GetUnassignedParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createManualAssignmentHandler commands.CreateManualAssignmentCommandHandler,
	createAutoAssignmentHandler commands.CreateAutoAssignmentCommandHandler,
	createSessionHandler commands.CreateSessionCommandHandler,
	completeSessionHandler commands.CompleteSessionCommandHandler,
	failSessionHandler commands.FailSessionCommandHandler,
	acceptTaskHandler commands.AcceptTaskCommandHandler,
	completeTaskHandler commands.CompleteTaskCommandHandler,
	failTaskHandler commands.FailTaskCommandHandler,
	refuseTaskHandler commands.RefuseTaskCommandHandler,
	postponeTaskHandler commands.PostponeTaskCommandHandler,
	getActiveSessionsHandler queries.GetActiveSessionsQueryHandler,
	getUnassignedParcelsHandler queries.GetUnassignedParcelsQueryHandler,
) *Server {
	return &Server{
		createManualAssignmentHandler: createManualAssignmentHandler,
		createAutoAssignmentHandler:   createAutoAssignmentHandler,
		createSessionHandler:          createSessionHandler,
		completeSessionHandler:        completeSessionHandler,
		failSessionHandler:            failSessionHandler,
		acceptTaskHandler:             acceptTaskHandler,
		completeTaskHandler:           completeTaskHandler,
		failTaskHandler:               failTaskHandler,
		refuseTaskHandler:             refuseTaskHandler,
		postponeTaskHandler:           postponeTaskHandler,
		getActiveSessionsHandler:      getActiveSessionsHandler,
		getUnassignedParcelsHandler:   getUnassignedParcelsHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateManualAssignment handles POST /api/v1/assignments/manual.
func (s *Server) CreateManualAssignment(ctx echo.Context) error {
	var request servers.ManualAssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipperID, err := toKernelUUID(request.DeliveryManId)
	if err != nil {
		return badRequest(ctx, "Invalid deliveryManId")
	}

	parcelIDs, err := toKernelUUIDs(request.ParcelIds)
	if err != nil {
		return badRequest(ctx, "Invalid parcelIds")
	}

	cmd, err := commands.NewCreateManualAssignmentCommand(shipperID, parcelIDs, request.ZoneId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createManualAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Assignment{
		Id:                created.ID().Bytes(),
		DeliveryManId:     created.ShipperID().Bytes(),
		DeliveryAddressId: created.DeliveryAddressID().Bytes(),
		ParcelIds:         fromKernelUUIDs(created.ParcelIDs()),
		Sequence:          created.Sequence(),
		Status:            created.Status().String(),
	})
}

// CreateAutoAssignment handles POST /api/v1/assignments/auto.
func (s *Server) CreateAutoAssignment(ctx echo.Context) error {
	var request servers.AutoAssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var shipperIDs, parcelIDs []kernel.UUID
	var err error
	if request.DeliveryManIds != nil {
		if shipperIDs, err = toKernelUUIDs(*request.DeliveryManIds); err != nil {
			return badRequest(ctx, "Invalid deliveryManIds")
		}
	}
	if request.ParcelIds != nil {
		if parcelIDs, err = toKernelUUIDs(*request.ParcelIds); err != nil {
			return badRequest(ctx, "Invalid parcelIds")
		}
	}

	var vehicle routing.VehicleProfile
	if request.Vehicle != nil {
		vehicle = routing.VehicleProfile(*request.Vehicle)
	}
	var mode routing.SolverMode
	if request.Mode != nil {
		mode = routing.SolverMode(*request.Mode)
	}

	cmd, err := commands.NewCreateAutoAssignmentCommand(shipperIDs, parcelIDs, vehicle, mode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.createAutoAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	assignments := make([]servers.Assignment, 0, len(result.Assignments))
	for _, created := range result.Assignments {
		assignments = append(assignments, servers.Assignment{
			Id:                created.ID().Bytes(),
			DeliveryManId:     created.ShipperID().Bytes(),
			DeliveryAddressId: created.DeliveryAddressID().Bytes(),
			ParcelIds:         fromKernelUUIDs(created.ParcelIDs()),
			Sequence:          created.Sequence(),
			Status:            created.Status().String(),
		})
	}

	return ctx.JSON(http.StatusCreated, servers.AutoAssignmentResult{
		Assignments:         assignments,
		UnassignedParcelIds: fromKernelUUIDs(result.Unassigned),
		Statistics: servers.AssignmentStatistics{
			AssignedOrders:   result.Statistics.AssignedOrders,
			UnassignedOrders: result.Statistics.UnassignedOrders,
			MeanLoad:         result.Statistics.MeanLoad,
			LoadVariance:     result.Statistics.LoadVariance,
		},
	})
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	var request servers.CreateSessionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipperID, err := toKernelUUID(request.DeliveryManId)
	if err != nil {
		return badRequest(ctx, "Invalid deliveryManId")
	}

	assignmentIDs, err := toKernelUUIDs(request.AssignmentIds)
	if err != nil {
		return badRequest(ctx, "Invalid assignmentIds")
	}

	cmd, err := commands.NewCreateSessionCommand(kernel.NewUUID(), shipperID, assignmentIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	counters := created.Counters()
	return ctx.JSON(http.StatusCreated, servers.Session{
		Id:             created.ID().Bytes(),
		DeliveryManId:  created.ShipperID().Bytes(),
		Status:         created.Status().String(),
		StartTime:      created.StartTime(),
		TotalTasks:     counters.TotalTasks,
		CompletedTasks: counters.CompletedTasks,
		FailedTasks:    counters.FailedTasks,
		DelayedTasks:   counters.DelayedTasks,
	})
}

// CompleteSession handles POST /api/v1/sessions/{sessionId}/complete.
func (s *Server) CompleteSession(ctx echo.Context, sessionId servers.SessionId) error {
	sessionID, err := toKernelUUID(sessionId)
	if err != nil {
		return badRequest(ctx, "Invalid sessionId")
	}

	cmd, err := commands.NewCompleteSessionCommand(sessionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailSession handles POST /api/v1/sessions/{sessionId}/fail.
func (s *Server) FailSession(ctx echo.Context, sessionId servers.SessionId) error {
	sessionID, err := toKernelUUID(sessionId)
	if err != nil {
		return badRequest(ctx, "Invalid sessionId")
	}

	var request servers.FailRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFailSessionCommand(sessionID, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.failSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptTask handles POST /api/v1/delivery-men/{deliveryManId}/tasks/{parcelId}/accept.
func (s *Server) AcceptTask(ctx echo.Context, deliveryManId servers.DeliveryManId, parcelId servers.ParcelId) error {
	shipperID, parcelID, err := taskIDs(deliveryManId, parcelId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptTaskCommand(shipperID, parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.acceptTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteTask handles POST /api/v1/delivery-men/{deliveryManId}/tasks/{parcelId}/complete.
func (s *Server) CompleteTask(ctx echo.Context, deliveryManId servers.DeliveryManId, parcelId servers.ParcelId) error {
	shipperID, parcelID, err := taskIDs(deliveryManId, parcelId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteTaskCommand(shipperID, parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailTask handles POST /api/v1/delivery-men/{deliveryManId}/tasks/{parcelId}/fail.
func (s *Server) FailTask(ctx echo.Context, deliveryManId servers.DeliveryManId, parcelId servers.ParcelId) error {
	shipperID, parcelID, err := taskIDs(deliveryManId, parcelId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request servers.FailRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFailTaskCommand(shipperID, parcelID, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.failTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefuseTask handles POST /api/v1/delivery-men/{deliveryManId}/tasks/{parcelId}/refuse.
func (s *Server) RefuseTask(ctx echo.Context, deliveryManId servers.DeliveryManId, parcelId servers.ParcelId) error {
	shipperID, parcelID, err := taskIDs(deliveryManId, parcelId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRefuseTaskCommand(shipperID, parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.refuseTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PostponeTask handles POST /api/v1/delivery-men/{deliveryManId}/tasks/{parcelId}/postpone.
func (s *Server) PostponeTask(ctx echo.Context, deliveryManId servers.DeliveryManId, parcelId servers.ParcelId) error {
	shipperID, parcelID, err := taskIDs(deliveryManId, parcelId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request servers.PostponeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPostponeTaskCommand(shipperID, parcelID, request.PostponedTo, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.postponeTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveSessions handles GET /api/v1/sessions/active.
func (s *Server) GetActiveSessions(ctx echo.Context) error {
	query := queries.NewGetActiveSessionsQuery()

	sessions, err := s.getActiveSessionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Session, len(sessions))
	for i, active := range sessions {
		response[i] = servers.Session{
			Id:             active.ID.Bytes(),
			DeliveryManId:  active.ShipperID.Bytes(),
			Status:         active.Status.String(),
			StartTime:      active.StartTime,
			TotalTasks:     active.TotalTasks,
			CompletedTasks: active.CompletedTasks,
			FailedTasks:    active.FailedTasks,
			DelayedTasks:   active.DelayedTasks,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnassignedParcels handles GET /api/v1/parcels/unassigned.
func (s *Server) GetUnassignedParcels(ctx echo.Context) error {
	query := queries.NewGetUnassignedParcelsQuery()

	parcels, err := s.getUnassignedParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Parcel, len(parcels))
	for i, waiting := range parcels {
		response[i] = servers.Parcel{
			Id:                waiting.ID.Bytes(),
			Code:              waiting.Code,
			Latitude:          waiting.Location.Latitude(),
			Longitude:         waiting.Location.Longitude(),
			DeliveryAddressId: waiting.DeliveryAddressID.Bytes(),
			ReceiverId:        waiting.ReceiverID.Bytes(),
			Priority:          waiting.Priority,
			ZoneId:            waiting.ZoneID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// taskIDs converts the task action path parameters to kernel identifiers.
func taskIDs(deliveryManId, parcelId openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	shipperID, err := toKernelUUID(deliveryManId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("Invalid deliveryManId")
	}

	parcelID, err := toKernelUUID(parcelId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("Invalid parcelId")
	}

	return shipperID, parcelID, nil
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDs(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	converted := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		kernelID, err := toKernelUUID(id)
		if err != nil {
			return nil, err
		}
		converted = append(converted, kernelID)
	}
	return converted, nil
}

func fromKernelUUIDs(ids []kernel.UUID) []openapi_types.UUID {
	converted := make([]openapi_types.UUID, 0, len(ids))
	for _, id := range ids {
		converted = append(converted, id.Bytes())
	}
	return converted
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps the error taxonomy to HTTP status codes: validation
// errors to 400, missing entities to 404, illegal transitions and
// concurrency conflicts to 409, route-service failures to 503.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrSolverUnavailable):
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

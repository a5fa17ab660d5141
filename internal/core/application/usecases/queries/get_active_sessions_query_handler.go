package queries

import (
	"context"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveSessionsQueryHandler retrieves active session information from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetActiveSessionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveSessionsQueryHandler creates a handler for active session queries.
// Requires a GORM database connection for query execution.
func NewGetActiveSessionsQueryHandler(db *gorm.DB) GetActiveSessionsQueryHandler {
	return GetActiveSessionsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal sessions.
// Returns a slice of session read models sorted by start time.
func (h GetActiveSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveSessionsQuery,
) ([]GetActiveSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions := make([]GetActiveSessionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipper_id,
			status,
			start_time,
			total_tasks,
			completed_tasks,
			failed_tasks,
			delayed_tasks
		FROM sessions
		WHERE status IN (?, ?)
		ORDER BY start_time
	`, int(session.Created), int(session.InProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveSessionsQueryResponse
		var id, shipperID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&shipperID,
			&status,
			&response.StartTime,
			&response.TotalTasks,
			&response.CompletedTasks,
			&response.FailedTasks,
			&response.DelayedTasks,
		)
		if err != nil {
			return nil, err
		}

		sessionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = sessionID

		ownerID, ownerErr := kernel.UUIDFromBytes(shipperID[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		response.ShipperID = ownerID
		response.Status = session.Status(status)

		sessions = append(sessions, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

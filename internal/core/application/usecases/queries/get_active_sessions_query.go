// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/session"
	"delivery/internal/pkg/guard"
)

var (
	ErrGetActiveSessionsQueryIsNotConstructed = errors.New(
		"GetActiveSessionsQuery must be created via NewGetActiveSessionsQuery constructor",
	)
)

// GetActiveSessionsQuery retrieves every delivery session that has not yet
// reached a terminal state, together with its task counters. Used by the
// dispatcher dashboard to monitor shippers currently on the road.
type GetActiveSessionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveSessionsQuery creates a query to retrieve all active sessions.
// This is a parameterless query that fetches the complete active session list.
func NewGetActiveSessionsQuery() GetActiveSessionsQuery {
	return GetActiveSessionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveSessionsQueryIsNotConstructed if validation fails.
func (q GetActiveSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSessionsQueryIsNotConstructed)
}

// GetActiveSessionsQueryResponse represents one active session in the read
// model. Counters reflect the state recorded at the last committed task
// transition.
type GetActiveSessionsQueryResponse struct {
	ID             kernel.UUID
	ShipperID      kernel.UUID
	Status         session.Status
	StartTime      time.Time
	TotalTasks     int
	CompletedTasks int
	FailedTasks    int
	DelayedTasks   int
}

package session

import (
	"errors"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

// Domain errors for session operations.
var (
	// ErrSessionIsNotConstructed is returned when a Session was not
	// created through NewSession or RestoreSession.
	ErrSessionIsNotConstructed = errors.New(
		"Session must be created via NewSession or RestoreSession constructor")
	// ErrTotalTasksIsInvalid is returned when creating a session without
	// any bound assignment.
	ErrTotalTasksIsInvalid = errs.NewValueIsInvalidError("totalTasks")
)

// Counters aggregates per-session task tallies. The session is the only
// writer of these values; they are advanced through the Record* methods
// as task results come in.
type Counters struct {
	TotalTasks     int
	CompletedTasks int
	FailedTasks    int
	DelayedTasks   int
}

// Session is the aggregate root for one shipper's bounded working
// window. At most one non-terminal session may exist per shipper at a
// time (the uniqueness check runs in the same transaction as creation).
// A terminal session is immutable.
type Session struct {
	id         kernel.UUID
	shipperID  kernel.UUID
	status     Status
	startTime  time.Time
	endTime    *time.Time
	counters   Counters
	failReason string
	version    int

	guard guard.ConstructorGuard
}

// NewSession creates a session in Created status with the task counter
// set from the number of bound assignments.
func NewSession(id kernel.UUID, shipperID kernel.UUID, startTime time.Time, totalTasks int) (*Session, error) {
	s := &Session{
		status:  Created,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setShipperID(shipperID),
		s.setStartTime(startTime),
		s.setTotalTasks(totalTasks),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSession reconstructs a session from persistence.
func RestoreSession(
	id kernel.UUID,
	shipperID kernel.UUID,
	status Status,
	startTime time.Time,
	endTime *time.Time,
	counters Counters,
	failReason string,
	version int,
) (*Session, error) {
	s, err := NewSession(id, shipperID, startTime, counters.TotalTasks)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	s.status = status
	s.endTime = endTime
	s.counters = counters
	s.failReason = failReason
	s.version = version
	return s, nil
}

// Validate ensures the session was properly constructed.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// ShipperID returns the shipper working this session.
func (s *Session) ShipperID() kernel.UUID {
	return s.shipperID
}

// Status returns the current lifecycle status.
func (s *Session) Status() Status {
	return s.status
}

// StartTime returns the session's opening time.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// EndTime returns the closing time, or nil while the session is open.
func (s *Session) EndTime() *time.Time {
	return s.endTime
}

// Counters returns the current task tallies.
func (s *Session) Counters() Counters {
	return s.counters
}

// FailReason returns the recorded failure reason, empty unless the
// session was failed.
func (s *Session) FailReason() string {
	return s.failReason
}

// Version returns the optimistic-concurrency version.
func (s *Session) Version() int {
	return s.version
}

// RecordCompleted tallies a completed task. The first recorded result
// moves a Created session to InProgress.
func (s *Session) RecordCompleted() error {
	if err := s.markInProgress(); err != nil {
		return err
	}
	s.counters.CompletedTasks++
	return nil
}

// RecordFailed tallies a failed task. The first recorded result moves a
// Created session to InProgress.
func (s *Session) RecordFailed() error {
	if err := s.markInProgress(); err != nil {
		return err
	}
	s.counters.FailedTasks++
	return nil
}

// RecordDelayed tallies a postponed task. The first recorded result
// moves a Created session to InProgress.
func (s *Session) RecordDelayed() error {
	if err := s.markInProgress(); err != nil {
		return err
	}
	s.counters.DelayedTasks++
	return nil
}

// Complete closes the session. Calling Complete on a terminal session is
// an error at the aggregate level; the application layer treats an
// already-terminal session as an idempotent no-op before getting here.
func (s *Session) Complete(at time.Time) error {
	next, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = next
	s.endTime = &at
	return nil
}

// Fail aborts the session, tagging the reason for audit.
func (s *Session) Fail(at time.Time, reason string) error {
	next, err := s.status.Fail()
	if err != nil {
		return err
	}

	s.status = next
	s.endTime = &at
	s.failReason = reason
	return nil
}

func (s *Session) markInProgress() error {
	next, err := s.status.Start()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperID", err)
	}
	s.shipperID = id
	return nil
}

func (s *Session) setStartTime(startTime time.Time) error {
	if startTime.IsZero() {
		return errs.NewValueIsRequiredError("startTime")
	}
	s.startTime = startTime
	return nil
}

func (s *Session) setTotalTasks(totalTasks int) error {
	if totalTasks <= 0 {
		return ErrTotalTasksIsInvalid
	}
	s.counters.TotalTasks = totalTasks
	return nil
}

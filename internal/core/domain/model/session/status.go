package session

import (
	"delivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery session.
//
// State transitions:
//
//	Created ──Start──> InProgress ──Complete──> Completed
//	   │                   │
//	   └───────Fail────────┴──> Failed
//	   └──────Complete─────> Completed
//
// Completed and Failed are terminal; a terminal session is immutable.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Created is the initial status: assignments are bound but no task
	// result has been recorded yet.
	Created

	// InProgress indicates the shipper has started working the tasks.
	InProgress

	// Completed is the terminal status for a closed session.
	Completed

	// Failed is the terminal status for an aborted session.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Created:       "Created",
		InProgress:    "InProgress",
		Completed:     "Completed",
		Failed:        "Failed",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether the session is closed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// Start transitions to InProgress. Legal from Created; already running
// sessions stay InProgress.
func (s Status) Start() (Status, error) {
	if s != Created && s != InProgress {
		return 0, errs.NewInvalidStateError("session", "Start", s.String())
	}
	return InProgress, nil
}

// Complete transitions to Completed. Legal from Created or InProgress.
func (s Status) Complete() (Status, error) {
	if s.IsTerminal() || s == StatusUnknown {
		return 0, errs.NewInvalidStateError("session", "Complete", s.String())
	}
	return Completed, nil
}

// Fail transitions to Failed. Legal from Created or InProgress.
func (s Status) Fail() (Status, error) {
	if s.IsTerminal() || s == StatusUnknown {
		return 0, errs.NewInvalidStateError("session", "Fail", s.String())
	}
	return Failed, nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

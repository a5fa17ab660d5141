package assignment

import (
	"delivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery assignment.
//
// State transitions:
//
//	Pending/Assigned ──Accept──> Accepted ──Start──> InProgress ──Complete──> Completed
//	       │                        │                    │
//	       │                        │                    ├──Fail/Postpone──> Failed
//	       └────────Refuse──────────┴──> Failed          │
//	       └────────────Start────────────> InProgress ───┘
//
// Assigned is a legacy alias kept for assignments imported from the old
// dispatch flow; it behaves like Pending for all transitions.
// Completed and Failed are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status after creation; the shipper has not
	// yet acknowledged the assignment.
	Pending

	// Assigned is the legacy initial status; treated like Pending.
	Assigned

	// Accepted indicates the shipper scanned and acknowledged the bundle.
	Accepted

	// InProgress indicates the assignment is bound to an active session.
	InProgress

	// Completed is the terminal success state.
	Completed

	// Failed is the terminal state for undelivered assignments.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Assigned:      "Assigned",
		Accepted:      "Accepted",
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

// IsTerminal reports whether the assignment can no longer change state.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// IsOpen reports whether the assignment still awaits a terminal outcome.
func (s Status) IsOpen() bool {
	return !s.IsTerminal() && s != StatusUnknown
}

// Accept transitions to Accepted. Legal only from Pending or Assigned.
func (s Status) Accept() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewInvalidStateError("assignment", "Accept", s.String())
	}
	return Accepted, nil
}

// Start transitions to InProgress. Legal from Pending, Assigned or
// Accepted; session creation binds pending assignments directly.
func (s Status) Start() (Status, error) {
	if s != Pending && s != Assigned && s != Accepted {
		return 0, errs.NewInvalidStateError("assignment", "Start", s.String())
	}
	return InProgress, nil
}

// Complete transitions to Completed. Legal only from InProgress.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateError("assignment", "Complete", s.String())
	}
	return Completed, nil
}

// Fail transitions to Failed. Legal from any non-terminal status: a
// refusal fails an assignment before it starts, a delivery failure or a
// postpone fails it mid-route, and the session cascade fails whatever
// remains open.
func (s Status) Fail() (Status, error) {
	if s.IsTerminal() || s == StatusUnknown {
		return 0, errs.NewInvalidStateError("assignment", "Fail", s.String())
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

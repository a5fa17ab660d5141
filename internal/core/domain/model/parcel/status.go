package parcel

import (
	"fmt"

	"delivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// State transitions:
//
//	InWarehouse ──ScanQR──> OnRoute ──DeliverySuccessful──> Delivered
//	     ^                  │  │  │
//	     │   Postpone───────┘  │  └──Delay──> Delayed ──EndSession──> InWarehouse
//	     │                     │
//	     │         CanNotDeliver/Accident──> Failed ──OpenDispute──> Dispute
//	     │
//	Delivered ──ConfirmTimeout/CustomerReceived──> Succeeded
//	Delivered ──CustomerReject──> Failed
//	Dispute ──CustomerRetract/Misunderstanding──> Succeeded
//	Dispute ──FaultConfirmed──> Lost
//
// Succeeded and Lost are terminal; no event is legal from them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// InWarehouse is the initial status: the parcel is stored and waiting
	// to be routed.
	InWarehouse

	// OnRoute indicates the parcel is out for delivery with a shipper.
	OnRoute

	// Delivered indicates the shipper reported a successful handover and
	// the system is waiting for receiver confirmation.
	Delivered

	// Delayed indicates the shipper deferred the stop within the current
	// session; the parcel returns to the warehouse when the session ends.
	Delayed

	// Dispute indicates the receiver contested a failed delivery.
	Dispute

	// Failed indicates the delivery attempt did not succeed.
	Failed

	// Succeeded is the terminal success state.
	Succeeded

	// Lost is the terminal state for parcels written off after a dispute.
	Lost
)

// Event represents a lifecycle event driving parcel status transitions.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// ScanQR fires when a shipper scans the parcel out of the warehouse.
	ScanQR
	// DeliverySuccessful fires when the shipper reports a handover.
	DeliverySuccessful
	// Postpone fires when delivery is rescheduled; the parcel returns to
	// the warehouse for a later sweep.
	Postpone
	// Delay fires when the shipper defers the stop within the session.
	Delay
	// CanNotDeliver fires when the shipper cannot complete the delivery.
	CanNotDeliver
	// Accident fires when an incident prevents delivery.
	Accident
	// ConfirmReminder fires when the receiver is re-notified to confirm;
	// it refreshes the Delivered state without changing it.
	ConfirmReminder
	// ConfirmTimeout fires when the confirmation window elapses.
	ConfirmTimeout
	// CustomerReceived fires when the receiver confirms receipt.
	CustomerReceived
	// CustomerReject fires when the receiver rejects the handover.
	CustomerReject
	// EndSession fires on delayed parcels when their session closes.
	EndSession
	// OpenDispute fires when the receiver contests a failed delivery.
	OpenDispute
	// CustomerRetract fires when the receiver withdraws the dispute.
	CustomerRetract
	// Misunderstanding fires when the dispute resolves in favor of delivery.
	Misunderstanding
	// FaultConfirmed fires when the dispute confirms the parcel is lost.
	FaultConfirmed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		InWarehouse:   "InWarehouse",
		OnRoute:       "OnRoute",
		Delivered:     "Delivered",
		Delayed:       "Delayed",
		Dispute:       "Dispute",
		Failed:        "Failed",
		Succeeded:     "Succeeded",
		Lost:          "Lost",
	}
}

func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:       "Unknown",
		ScanQR:             "ScanQR",
		DeliverySuccessful: "DeliverySuccessful",
		Postpone:           "Postpone",
		Delay:              "Delay",
		CanNotDeliver:      "CanNotDeliver",
		Accident:           "Accident",
		ConfirmReminder:    "ConfirmReminder",
		ConfirmTimeout:     "ConfirmTimeout",
		CustomerReceived:   "CustomerReceived",
		CustomerReject:     "CustomerReject",
		EndSession:         "EndSession",
		OpenDispute:        "OpenDispute",
		CustomerRetract:    "CustomerRetract",
		Misunderstanding:   "Misunderstanding",
		FaultConfirmed:     "FaultConfirmed",
	}
}

// transitions is the full state machine as inspectable data: for each
// status, the legal events and the status they lead to.
var transitions = map[Status]map[Event]Status{
	InWarehouse: {
		ScanQR: OnRoute,
	},
	OnRoute: {
		DeliverySuccessful: Delivered,
		Postpone:           InWarehouse,
		Delay:              Delayed,
		CanNotDeliver:      Failed,
		Accident:           Failed,
	},
	Delivered: {
		ConfirmReminder:  Delivered,
		ConfirmTimeout:   Succeeded,
		CustomerReceived: Succeeded,
		CustomerReject:   Failed,
	},
	Delayed: {
		EndSession: InWarehouse,
	},
	Failed: {
		OpenDispute: Dispute,
	},
	Dispute: {
		CustomerRetract:  Succeeded,
		Misunderstanding: Succeeded,
		FaultConfirmed:   Lost,
	},
	Succeeded: {},
	Lost:      {},
}

// Transition applies event to the current status and returns the next
// status. An event not present in the current status table fails with
// errs.InvalidTransitionError and the status is left to the caller
// unchanged. The machine is pure: persisting the new status and
// publishing events are the caller's responsibility.
func Transition(current Status, event Event) (Status, error) {
	table, ok := transitions[current]
	if !ok {
		return StatusUnknown, errs.NewInvalidTransitionError(current.String(), event.String())
	}

	next, ok := table[event]
	if !ok {
		return StatusUnknown, errs.NewInvalidTransitionError(current.String(), event.String())
	}

	return next, nil
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further event is legal from the status.
func (s Status) IsTerminal() bool {
	return s == Succeeded || s == Lost
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// String returns the human-readable name of the event.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "Unknown"
}

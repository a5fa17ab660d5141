package ports

import (
	"context"
	"time"
)

// SourceService tags every outbound event with the emitting service.
const SourceService = "delivery"

// EventMeta carries the envelope fields shared by all lifecycle events.
// EventID is the idempotency key: the broker delivers at least once and
// downstream consumers dedupe on it, so the id is generated exactly once
// per committed transition and reused on publish retries.
type EventMeta struct {
	EventID       string `json:"eventId"`
	SourceService string `json:"sourceService"`
}

// SessionCompletedEvent notifies downstream consumers that a session
// reached a terminal state, with the parcels and receivers affected.
type SessionCompletedEvent struct {
	EventMeta
	SessionID      string    `json:"sessionId"`
	DeliveryManID  string    `json:"deliveryManId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	TotalTasks     int       `json:"totalTasks"`
	CompletedTasks int       `json:"completedTasks"`
	FailedTasks    int       `json:"failedTasks"`
	DelayedTasks   int       `json:"delayedTasks"`
	ParcelIDs      []string  `json:"parcelIds"`
	ReceiverIDs    []string  `json:"receiverIds"`
}

// AssignmentCompletedEvent notifies downstream consumers that one parcel
// of an assignment was delivered.
type AssignmentCompletedEvent struct {
	EventMeta
	AssignmentID    string    `json:"assignmentId"`
	ParcelID        string    `json:"parcelId"`
	ParcelCode      string    `json:"parcelCode"`
	SessionID       string    `json:"sessionId,omitempty"`
	DeliveryManID   string    `json:"deliveryManId"`
	DeliveryManName string    `json:"deliveryManName,omitempty"`
	ReceiverID      string    `json:"receiverId"`
	ReceiverName    string    `json:"receiverName,omitempty"`
	ReceiverPhone   string    `json:"receiverPhone,omitempty"`
	CompletedAt     time.Time `json:"completedAt"`
}

// ParcelPostponedEvent notifies downstream consumers that a delivery was
// rescheduled at the customer's or shipper's request.
type ParcelPostponedEvent struct {
	EventMeta
	AssignmentID  string    `json:"assignmentId"`
	ParcelID      string    `json:"parcelId"`
	SessionID     string    `json:"sessionId,omitempty"`
	DeliveryManID string    `json:"deliveryManId"`
	PostponedTo   time.Time `json:"postponedTo"`
	Reason        string    `json:"reason"`
}

// EventPublisher emits lifecycle events to the message broker with
// at-least-once semantics. Publication happens after the triggering
// transaction commits; a publish failure is logged by the caller and
// never rolls the transition back.
type EventPublisher interface {
	PublishSessionCompleted(ctx context.Context, event SessionCompletedEvent) error
	PublishAssignmentCompleted(ctx context.Context, event AssignmentCompletedEvent) error
	PublishParcelPostponed(ctx context.Context, event ParcelPostponedEvent) error
}

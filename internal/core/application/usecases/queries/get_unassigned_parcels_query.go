package queries

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/guard"
)

var (
	ErrGetUnassignedParcelsQueryIsNotConstructed = errors.New(
		"GetUnassignedParcelsQuery must be created via NewGetUnassignedParcelsQuery constructor",
	)
)

// GetUnassignedParcelsQuery retrieves every parcel waiting in the warehouse
// without an open assignment. Dispatchers use the result to decide between
// manual bundling and the auto-assignment sweep.
type GetUnassignedParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedParcelsQuery creates a query to retrieve all unassigned parcels.
func NewGetUnassignedParcelsQuery() GetUnassignedParcelsQuery {
	return GetUnassignedParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedParcelsQueryIsNotConstructed if validation fails.
func (q GetUnassignedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedParcelsQueryIsNotConstructed)
}

// GetUnassignedParcelsQueryResponse represents one unassigned parcel in the
// read model. Priority and zone drive the ordering dispatchers see.
type GetUnassignedParcelsQueryResponse struct {
	ID                kernel.UUID
	Code              string
	Location          kernel.GeoPoint
	DeliveryAddressID kernel.UUID
	ReceiverID        kernel.UUID
	Priority          int
	ZoneID            string
}

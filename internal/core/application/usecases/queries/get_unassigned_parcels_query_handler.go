package queries

import (
	"context"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedParcelsQueryHandler retrieves unassigned parcel information
// from the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetUnassignedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedParcelsQueryHandler creates a handler for unassigned parcel queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedParcelsQueryHandler(db *gorm.DB) GetUnassignedParcelsQueryHandler {
	return GetUnassignedParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all parcels in the warehouse that
// are not bound to an assignment. Returns read models sorted most urgent
// first (priority 0 on top), then by code for a stable listing.
func (h GetUnassignedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedParcelsQuery,
) ([]GetUnassignedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetUnassignedParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			location_latitude,
			location_longitude,
			delivery_address_id,
			receiver_id,
			priority,
			zone_id
		FROM parcels
		WHERE status = ? AND assignment_id IS NULL
		ORDER BY priority, code
	`, int(parcel.InWarehouse)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUnassignedParcelsQueryResponse
		var id, deliveryAddressID, receiverID uuid.UUID
		var latitude, longitude float64

		err = rows.Scan(
			&id,
			&response.Code,
			&latitude,
			&longitude,
			&deliveryAddressID,
			&receiverID,
			&response.Priority,
			&response.ZoneID,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = parcelID

		addressID, addrErr := kernel.UUIDFromBytes(deliveryAddressID[:])
		if addrErr != nil {
			return nil, addrErr
		}
		response.DeliveryAddressID = addressID

		recipientID, recErr := kernel.UUIDFromBytes(receiverID[:])
		if recErr != nil {
			return nil, recErr
		}
		response.ReceiverID = recipientID

		location, locErr := kernel.NewGeoPoint(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		response.Location = location

		parcels = append(parcels, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

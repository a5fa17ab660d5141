// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Maps parcel domain entities to relational database tables with proper indexing
// for efficient querying by status and assignment binding.
type ParcelDTO struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Code              string      `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status            int         `gorm:"index"`
	Location          LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	DeliveryAddressID uuid.UUID   `gorm:"type:uuid;not null;index"`
	ReceiverID        uuid.UUID   `gorm:"type:uuid;not null"`
	Priority          int         `gorm:"type:int;not null"`
	ZoneID            string      `gorm:"type:varchar(32);index"`
	AssignmentID      *uuid.UUID  `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// LocationDTO represents the embedded delivery coordinates within the parcel table.
// Stores the destination geo point for parcel delivery.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts a parcel domain aggregate to its database representation.
// Maps all parcel attributes including the optional assignment binding.
func fromDomain(parcel *parcel.Parcel) ParcelDTO {
	var assignmentID *uuid.UUID
	if id := parcel.Assignment(); id != nil {
		raw := id.Bytes()
		assignmentID = &raw
	}

	return ParcelDTO{
		ID:     parcel.ID().Bytes(),
		Code:   parcel.Code(),
		Status: int(parcel.Status()),
		Location: LocationDTO{
			Latitude:  parcel.Location().Latitude(),
			Longitude: parcel.Location().Longitude(),
		},
		DeliveryAddressID: parcel.DeliveryAddressID().Bytes(),
		ReceiverID:        parcel.ReceiverID().Bytes(),
		Priority:          parcel.Priority(),
		ZoneID:            parcel.ZoneID(),
		AssignmentID:      assignmentID,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including status and assignment binding using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryAddressID, err := kernel.UUIDFromBytes(dto.DeliveryAddressID[:])
	if err != nil {
		return nil, err
	}

	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}

	var assignmentID *kernel.UUID
	if dto.AssignmentID != nil {
		aID, assignmentErr := kernel.UUIDFromBytes((*dto.AssignmentID)[:])
		if assignmentErr != nil {
			return nil, assignmentErr
		}

		assignmentID = &aID
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.Code,
		location,
		deliveryAddressID,
		receiverID,
		dto.Priority,
		dto.ZoneID,
		parcel.Status(dto.Status),
		assignmentID,
	)
}

// Package assignmentrepo provides data transfer objects and mapping functions for assignment persistence.
// This package implements the repository pattern for the assignment domain aggregate, handling
// the conversion between domain entities and database representations.
package assignmentrepo

import (
	"sort"
	"time"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment aggregates.
// The parcel bundle is stored in a child table to preserve the bundle order;
// Version backs the optimistic concurrency check on updates.
type AssignmentDTO struct {
	ID                uuid.UUID             `gorm:"type:uuid;primaryKey"`
	ShipperID         uuid.UUID             `gorm:"type:uuid;not null;index"`
	DeliveryAddressID uuid.UUID             `gorm:"type:uuid;not null"`
	Sequence          int                   `gorm:"type:int;not null"`
	Status            int                   `gorm:"index"`
	SessionID         *uuid.UUID            `gorm:"type:uuid;index"`
	AcceptedAt        *time.Time
	CompletedAt       *time.Time
	FailReason        string                `gorm:"type:text"`
	Version           int                   `gorm:"type:int;not null"`
	Parcels           []AssignmentParcelDTO `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// AssignmentParcelDTO links one parcel to its assignment bundle.
// Position preserves the creation order of the bundle.
type AssignmentParcelDTO struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position     int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for assignment parcel links.
func (AssignmentParcelDTO) TableName() string {
	return "assignment_parcels"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(assignment *assignment.Assignment) AssignmentDTO {
	assignmentID := assignment.ID().Bytes()

	var sessionID *uuid.UUID
	if id := assignment.Session(); id != nil {
		raw := id.Bytes()
		sessionID = &raw
	}

	parcels := make([]AssignmentParcelDTO, 0, len(assignment.ParcelIDs()))
	for i, parcelID := range assignment.ParcelIDs() {
		parcels = append(parcels, AssignmentParcelDTO{
			AssignmentID: assignmentID,
			ParcelID:     parcelID.Bytes(),
			Position:     i,
		})
	}

	return AssignmentDTO{
		ID:                assignmentID,
		ShipperID:         assignment.ShipperID().Bytes(),
		DeliveryAddressID: assignment.DeliveryAddressID().Bytes(),
		Sequence:          assignment.Sequence(),
		Status:            int(assignment.Status()),
		SessionID:         sessionID,
		AcceptedAt:        assignment.AcceptedAt(),
		CompletedAt:       assignment.CompletedAt(),
		FailReason:        assignment.FailReason(),
		Version:           assignment.Version(),
		Parcels:           parcels,
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
// Reconstructs the complete aggregate including the ordered parcel bundle using RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	deliveryAddressID, err := kernel.UUIDFromBytes(dto.DeliveryAddressID[:])
	if err != nil {
		return nil, err
	}

	var sessionID *kernel.UUID
	if dto.SessionID != nil {
		sID, sessionErr := kernel.UUIDFromBytes((*dto.SessionID)[:])
		if sessionErr != nil {
			return nil, sessionErr
		}

		sessionID = &sID
	}

	links := make([]AssignmentParcelDTO, len(dto.Parcels))
	copy(links, dto.Parcels)
	sort.Slice(links, func(i, j int) bool { return links[i].Position < links[j].Position })

	parcelIDs := make([]kernel.UUID, 0, len(links))
	for _, link := range links {
		parcelID, parcelErr := kernel.UUIDFromBytes(link.ParcelID[:])
		if parcelErr != nil {
			return nil, parcelErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	return assignment.RestoreAssignment(
		id,
		shipperID,
		deliveryAddressID,
		parcelIDs,
		dto.Sequence,
		assignment.Status(dto.Status),
		sessionID,
		dto.AcceptedAt,
		dto.CompletedAt,
		dto.FailReason,
		dto.Version,
	)
}

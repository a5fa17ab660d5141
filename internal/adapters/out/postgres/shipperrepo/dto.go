// Package shipperrepo provides read access to the shipper directory.
// The directory is a read model maintained from the identity subsystem;
// this service only queries it to validate assignments and to resolve the
// auto-assignment candidate set.
package shipperrepo

import (
	"sort"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"

	"github.com/google/uuid"
)

// ShipperDTO represents the database structure of one shipper profile.
// Shift timing is stored as minutes so the profile is date-independent;
// the concrete shift window is materialized against the current day on read.
type ShipperDTO struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name              string           `gorm:"type:varchar(255);not null"`
	Available         bool             `gorm:"index"`
	Location          LocationDTO      `gorm:"embedded;embeddedPrefix:location_"`
	ShiftStartMinutes int              `gorm:"type:int;not null"`
	MaxSessionMinutes int              `gorm:"type:int;not null"`
	Capacity          int              `gorm:"type:int;not null"`
	Zones             []ShipperZoneDTO `gorm:"foreignKey:ShipperID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipper profiles.
func (ShipperDTO) TableName() string {
	return "shippers"
}

// LocationDTO represents the embedded start coordinates within the shipper table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// ShipperZoneDTO links one working zone to a shipper profile.
// Rank preserves the preference order of the zone list.
type ShipperZoneDTO struct {
	ShipperID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID    string    `gorm:"type:varchar(32);primaryKey"`
	Rank      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for shipper zone links.
func (ShipperZoneDTO) TableName() string {
	return "shipper_zones"
}

// toDomain converts a shipper profile row to its solver view, anchoring the
// shift window on the given day.
func toDomain(dto ShipperDTO, day time.Time) (routing.Shipper, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return routing.Shipper{}, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return routing.Shipper{}, err
	}

	zones := make([]ShipperZoneDTO, len(dto.Zones))
	copy(zones, dto.Zones)
	sort.Slice(zones, func(i, j int) bool { return zones[i].Rank < zones[j].Rank })

	workingZones := make([]string, 0, len(zones))
	for _, zone := range zones {
		workingZones = append(workingZones, zone.ZoneID)
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	shipper := routing.Shipper{
		ID:             id,
		Location:       location,
		ShiftStart:     midnight.Add(time.Duration(dto.ShiftStartMinutes) * time.Minute),
		MaxSessionTime: time.Duration(dto.MaxSessionMinutes) * time.Minute,
		Capacity:       dto.Capacity,
		WorkingZones:   workingZones,
	}

	if err = shipper.Validate(); err != nil {
		return routing.Shipper{}, err
	}

	return shipper, nil
}

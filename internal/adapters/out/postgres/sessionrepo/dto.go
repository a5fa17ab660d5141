// Package sessionrepo provides data transfer objects and mapping functions for session persistence.
// This package implements the repository pattern for the session domain aggregate, handling
// the conversion between domain entities and database representations.
package sessionrepo

import (
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting session aggregates.
// Task counters are denormalized onto the row so the active-session read
// model never has to join; Version backs the optimistic concurrency check.
// The partial unique index on ShipperID covers the non-terminal statuses
// (Created and InProgress) and enforces one open session per shipper even
// under concurrent inserts.
type SessionDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipperID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_sessions_active_shipper,where:status BETWEEN 1 AND 2"`
	Status         int       `gorm:"index"`
	StartTime      time.Time `gorm:"not null;index"`
	EndTime        *time.Time
	TotalTasks     int    `gorm:"type:int;not null"`
	CompletedTasks int    `gorm:"type:int;not null"`
	FailedTasks    int    `gorm:"type:int;not null"`
	DelayedTasks   int    `gorm:"type:int;not null"`
	FailReason     string `gorm:"type:text"`
	Version        int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for session entities.
// Overrides GORM's default naming convention to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

// fromDomain converts a session domain aggregate to its database representation.
func fromDomain(session *session.Session) SessionDTO {
	counters := session.Counters()

	return SessionDTO{
		ID:             session.ID().Bytes(),
		ShipperID:      session.ShipperID().Bytes(),
		Status:         int(session.Status()),
		StartTime:      session.StartTime(),
		EndTime:        session.EndTime(),
		TotalTasks:     counters.TotalTasks,
		CompletedTasks: counters.CompletedTasks,
		FailedTasks:    counters.FailedTasks,
		DelayedTasks:   counters.DelayedTasks,
		FailReason:     session.FailReason(),
		Version:        session.Version(),
	}
}

// toDomain converts a database DTO to a session domain aggregate.
// Reconstructs the complete aggregate including counters using RestoreSession.
func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	counters := session.Counters{
		TotalTasks:     dto.TotalTasks,
		CompletedTasks: dto.CompletedTasks,
		FailedTasks:    dto.FailedTasks,
		DelayedTasks:   dto.DelayedTasks,
	}

	return session.RestoreSession(
		id,
		shipperID,
		session.Status(dto.Status),
		dto.StartTime,
		dto.EndTime,
		counters,
		dto.FailReason,
		dto.Version,
	)
}

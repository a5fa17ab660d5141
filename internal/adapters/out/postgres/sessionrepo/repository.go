package sessionrepo

import (
	"context"
	"errors"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/session"
	"delivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// activeStatuses enumerates the non-terminal session states for lookups.
func activeStatuses() []int {
	return []int{int(session.Created), int(session.InProgress)}
}

// Add saves a new session to the database. A duplicate-key violation on
// the partial unique index (another open session for the same shipper)
// is returned as a ConcurrencyConflictError.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConcurrencyConflictError("session", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing session to the database with an optimistic
// version check. A row that no longer carries the loaded version means
// another transaction got there first.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SessionDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"status":          dto.Status,
			"end_time":        dto.EndTime,
			"completed_tasks": dto.CompletedTasks,
			"failed_tasks":    dto.FailedTasks,
			"delayed_tasks":   dto.DelayedTasks,
			"fail_reason":     dto.FailReason,
			"version":         aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("session", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a session by ID.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByShipper retrieves the shipper's non-terminal session, or an
// ObjectNotFoundError when the shipper has none. Callers run this inside
// the same transaction as session creation to hold the one-active-session
// invariant.
func (r *GormSessionRepository) GetActiveByShipper(
	ctx context.Context,
	shipperID kernel.UUID,
) (*session.Session, error) {
	if err := shipperID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).
		Where("shipper_id = ? AND status IN ?", shipperID.Bytes(), activeStatuses()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", shipperID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenStartedBetween retrieves non-terminal sessions whose start time
// falls within [from, to], for the auto-close sweep.
func (r *GormSessionRepository) GetOpenStartedBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*session.Session, error) {
	var dtos []SessionDTO
	if err := r.db.WithContext(ctx).
		Where("status IN ? AND start_time BETWEEN ? AND ?", activeStatuses(), from, to).
		Order("start_time").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	sessions := make([]*session.Session, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

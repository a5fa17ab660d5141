package assignmentrepo

import (
	"context"
	"errors"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// openStatuses enumerates the non-terminal assignment states for lookups.
func openStatuses() []int {
	return []int{
		int(assignment.Pending),
		int(assignment.Assigned),
		int(assignment.Accepted),
		int(assignment.InProgress),
	}
}

// Add saves a new assignment and its parcel bundle to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database with an optimistic
// version check. The parcel bundle is immutable after creation, so only the
// parent row is written. A row that no longer carries the loaded version
// means another transaction got there first.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"status":       dto.Status,
			"session_id":   dto.SessionID,
			"accepted_at":  dto.AcceptedAt,
			"completed_at": dto.CompletedAt,
			"fail_reason":  dto.FailReason,
			"version":      aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("assignment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Parcels").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the assignments for the given identifiers.
// Every id must resolve; a missing assignment is an ObjectNotFoundError.
func (r *GormAssignmentRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*assignment.Assignment, error) {
	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Parcels").
		Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*assignment.Assignment, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		byID[a.ID()] = a
	}

	assignments := make([]*assignment.Assignment, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// GetOpenByShipperAndParcel finds the shipper's non-terminal assignment
// containing the given parcel. Task actions address work by the
// (shipper, parcel) pair rather than by assignment id.
func (r *GormAssignmentRepository) GetOpenByShipperAndParcel(
	ctx context.Context,
	shipperID, parcelID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := shipperID.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Parcels").
		Joins("JOIN assignment_parcels ON assignment_parcels.assignment_id = assignments.id").
		Where("assignments.shipper_id = ?", shipperID.Bytes()).
		Where("assignment_parcels.parcel_id = ?", parcelID.Bytes()).
		Where("assignments.status IN ?", openStatuses()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenBySession retrieves the session's assignments that are not yet
// terminal, ordered by route sequence, for the session-completion cascade.
func (r *GormAssignmentRepository) GetOpenBySession(
	ctx context.Context,
	sessionID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Parcels").
		Where("session_id = ? AND status IN ?", sessionID.Bytes(), openStatuses()).
		Order("sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

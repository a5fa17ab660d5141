package shipperrepo

import (
	"context"
	"errors"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipperDirectory implements ShipperDirectory using GORM.
// Reads go against the main connection; the directory is never written by
// this service, so it stays outside the unit of work.
type GormShipperDirectory struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormShipperDirectory creates a new GORM shipper directory.
func NewGormShipperDirectory(db *gorm.DB) *GormShipperDirectory {
	return &GormShipperDirectory{
		db:  db,
		now: time.Now,
	}
}

// Get retrieves one shipper profile by id.
func (r *GormShipperDirectory) Get(ctx context.Context, id kernel.UUID) (routing.Shipper, error) {
	if err := id.Validate(); err != nil {
		return routing.Shipper{}, err
	}

	var dto ShipperDTO
	if err := r.db.WithContext(ctx).
		Preload("Zones").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return routing.Shipper{}, errs.NewObjectNotFoundError("shipper", id.String())
		}
		return routing.Shipper{}, err
	}

	return toDomain(dto, r.now())
}

// GetByIDs retrieves the profiles for the given shipper ids.
// Every id must resolve; a missing shipper is an ObjectNotFoundError.
func (r *GormShipperDirectory) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]routing.Shipper, error) {
	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ShipperDTO
	if err := r.db.WithContext(ctx).
		Preload("Zones").
		Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	day := r.now()
	byID := make(map[kernel.UUID]routing.Shipper, len(dtos))
	for _, dto := range dtos {
		shipper, err := toDomain(dto, day)
		if err != nil {
			return nil, err
		}
		byID[shipper.ID] = shipper
	}

	shippers := make([]routing.Shipper, 0, len(ids))
	for _, id := range ids {
		shipper, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("shipper", id.String())
		}
		shippers = append(shippers, shipper)
	}

	return shippers, nil
}

// GetAllAvailable retrieves every shipper currently marked available for work.
func (r *GormShipperDirectory) GetAllAvailable(ctx context.Context) ([]routing.Shipper, error) {
	var dtos []ShipperDTO
	if err := r.db.WithContext(ctx).
		Preload("Zones").
		Where("available = ?", true).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	day := r.now()
	shippers := make([]routing.Shipper, 0, len(dtos))
	for _, dto := range dtos {
		shipper, err := toDomain(dto, day)
		if err != nil {
			return nil, err
		}
		shippers = append(shippers, shipper)
	}

	return shippers, nil
}

package driverrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resto/internal/core/domain/model/driver"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// GormDriverRepository implements ports.DriverRepository over sqlite.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the roster.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Update saves roster state changes for an existing driver.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", dto.ID)
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Get retrieves a driver by identifier.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves drivers in Available status, sorted by name.
func (r *GormDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(driver.Available)).
		Order("name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

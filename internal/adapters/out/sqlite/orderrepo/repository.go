package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository over the embedded
// sqlite ledger.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextSequence reserves the next ticket sequence number. The counter row
// is created lazily on the first order the ledger ever sees.
func (r *GormOrderRepository) NextSequence(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&TicketCounterDTO{}).
		Where("id = ?", 1).
		Update("next_value", gorm.Expr("next_value + 1"))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		seed := TicketCounterDTO{ID: 1, NextValue: 1}
		if err := db.Create(&seed).Error; err != nil {
			return 0, err
		}
		return seed.NextValue, nil
	}

	var counter TicketCounterDTO
	if err := db.First(&counter, "id = ?", 1).Error; err != nil {
		return 0, err
	}

	return counter.NextValue, nil
}

// Add saves a new order and its line items to the ledger.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order with an optimistic version check: the
// write lands only if the stored version is older than the aggregate's.
// A concurrent writer that got there first surfaces as a version error
// and the caller retries from a fresh read.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	items := dto.Items
	dto.Items = nil

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version < ?", dto.ID, dto.Version).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(dto.ID)
	}

	if err := db.Delete(&LineItemDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Get retrieves an order by its ticket identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.TicketID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all non-terminal orders, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status NOT IN ?", []int{int(order.Delivered), int(order.Cancelled)}).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetActiveByTable retrieves the non-terminal order occupying a table.
// A free table reports object-not-found.
func (r *GormOrderRepository) GetActiveByTable(ctx context.Context, table int) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("dest_kind = ? AND dest_table = ? AND status NOT IN ?",
			int(kernel.DestinationTable), table, []int{int(order.Delivered), int(order.Cancelled)}).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table order", table)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ?", int(status)).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetReleasable retrieves settled, non-terminal table orders, the
// candidate set for the delayed auto-release sweep.
func (r *GormOrderRepository) GetReleasable(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("dest_kind = ? AND payment_status = ? AND status NOT IN ?",
			int(kernel.DestinationTable), int(order.PaymentPaid),
			[]int{int(order.Delivered), int(order.Cancelled)}).
		Order("paid_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

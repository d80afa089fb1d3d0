// Package ports defines the contracts between the core and its adapters:
// repositories over the order ledger and rosters, the unit of work, the
// credential verifier behind the station gates, and the ledger change
// publisher feeding station refreshes.
package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order ledger.
// Updates carry the aggregate's version so concurrent stale writes are
// rejected with errs.ErrVersionIsInvalid instead of silently overwriting.
type OrderRepository interface {
	// NextSequence reserves the next ticket sequence number for intake.
	NextSequence(ctx context.Context) (int64, error)

	// Add persists a new order. The ticket id must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Fails with
	// errs.ErrVersionIsInvalid when the stored version does not precede
	// the aggregate's, meaning another station won the write.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its ticket identifier.
	Get(ctx context.Context, id kernel.TicketID) (*order.Order, error)

	// GetAllActive retrieves every non-terminal order, the full board any
	// station may read.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetActiveByTable retrieves the single non-terminal order occupying
	// the given table. Returns errs.ErrObjectNotFound when the table is free.
	GetActiveByTable(ctx context.Context, table int) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetReleasable retrieves settled, non-terminal table orders for the
	// auto-release sweep.
	GetReleasable(ctx context.Context) ([]*order.Order, error)
}

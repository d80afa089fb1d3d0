package ports

import (
	"context"

	"resto/internal/core/domain/model/driver"
	"resto/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for the delivery
// driver roster. The roster itself is seeded externally; the core writes
// only the status toggles driven by dispatch and completion.
type DriverRepository interface {
	// Add persists a new roster driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists roster state changes (status, completed counter).
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves drivers in Available status, the pool the
	// dispatch station chooses from.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}

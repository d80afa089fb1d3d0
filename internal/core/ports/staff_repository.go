package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/staff"
)

// StaffRepository is the read-only view of the externally owned staff
// roster, used solely to resolve roles and credential hashes for gate
// checks.
type StaffRepository interface {
	// Get retrieves a staff member by identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)
}

package sqlite

import (
	"context"

	"gorm.io/gorm"

	"resto/internal/adapters/out/sqlite/staffrepo"
	"resto/internal/core/domain/model/staff"
)

// SeedStaff writes roster members outside the read-only staff port,
// used at startup only.
func SeedStaff(ctx context.Context, db *gorm.DB, members []*staff.Staff) error {
	return staffrepo.NewGormStaffRepository(db).Seed(ctx, members)
}

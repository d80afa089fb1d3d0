package sqlite

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"resto/internal/adapters/out/sqlite/driverrepo"
	"resto/internal/adapters/out/sqlite/orderrepo"
	"resto/internal/adapters/out/sqlite/staffrepo"
)

// OpenDB opens the embedded ledger at the given DSN and migrates its
// schema. The shared-cache memory DSN keeps one ledger across every
// connection in the process; a file path persists it across restarts.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers; a single connection avoids busy errors
	// under concurrent commands.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.TicketCounterDTO{},
		&driverrepo.DriverDTO{},
		&staffrepo.StaffDTO{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

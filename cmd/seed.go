package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"

	"resto/internal/adapters/out/sqlite"
	"resto/internal/core/domain/model/driver"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/staff"
	"resto/internal/core/ports"
)

// seedFile is the JSON shape for roster seeding. Credentials arrive as
// bcrypt hashes produced outside the process.
type seedFile struct {
	Staff []struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Role           string `json:"role"`
		Active         bool   `json:"active"`
		CredentialHash string `json:"credential_hash"`
	} `json:"staff"`
	Drivers []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Vehicle string `json:"vehicle"`
	} `json:"drivers"`
}

// SeedFromFile loads the staff and driver rosters from a JSON file.
// Existing staff rows are replaced so credential rotations land on
// restart; drivers already on the roster are left untouched.
func SeedFromFile(gormDB *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err = json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	ctx := context.Background()

	if err = seedStaff(ctx, gormDB, seed); err != nil {
		return err
	}

	// Without Begin the unit of work hands out repositories bound to the
	// base connection, which is all startup seeding needs.
	uow := sqlite.NewGormUnitOfWorkFactory(gormDB).Create()
	return seedDrivers(ctx, uow.DriverRepository(), seed)
}

func seedStaff(ctx context.Context, gormDB *gorm.DB, seed seedFile) error {
	members := make([]*staff.Staff, 0, len(seed.Staff))

	for _, row := range seed.Staff {
		id, err := kernel.UUIDFromString(row.ID)
		if err != nil {
			return fmt.Errorf("staff %q: %w", row.Name, err)
		}

		role, err := roleFromString(row.Role)
		if err != nil {
			return fmt.Errorf("staff %q: %w", row.Name, err)
		}

		member, err := staff.NewStaff(id, row.Name, role, row.Active, row.CredentialHash)
		if err != nil {
			return fmt.Errorf("staff %q: %w", row.Name, err)
		}

		members = append(members, member)
	}

	return sqlite.SeedStaff(ctx, gormDB, members)
}

func seedDrivers(ctx context.Context, repo ports.DriverRepository, seed seedFile) error {
	for _, row := range seed.Drivers {
		id, err := kernel.UUIDFromString(row.ID)
		if err != nil {
			return fmt.Errorf("driver %q: %w", row.Name, err)
		}

		if _, err = repo.Get(ctx, id); err == nil {
			continue
		}

		vehicle, err := vehicleFromString(row.Vehicle)
		if err != nil {
			return fmt.Errorf("driver %q: %w", row.Name, err)
		}

		d, err := driver.NewDriver(id, row.Name, row.Phone, vehicle)
		if err != nil {
			return fmt.Errorf("driver %q: %w", row.Name, err)
		}

		if err = repo.Add(ctx, d); err != nil {
			return err
		}
	}

	return nil
}

func roleFromString(raw string) (staff.Role, error) {
	switch raw {
	case "admin":
		return staff.RoleAdmin, nil
	case "cook":
		return staff.RoleCook, nil
	case "waiter":
		return staff.RoleWaiter, nil
	default:
		return staff.RoleUnknown, fmt.Errorf("unknown role %q", raw)
	}
}

func vehicleFromString(raw string) (driver.VehicleType, error) {
	switch raw {
	case "motorcycle":
		return driver.Motorcycle, nil
	case "bicycle":
		return driver.Bicycle, nil
	case "car":
		return driver.Car, nil
	default:
		return driver.VehicleUnknown, fmt.Errorf("unknown vehicle %q", raw)
	}
}

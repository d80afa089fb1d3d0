// Package driverrepo provides data transfer objects and mapping functions
// for the delivery driver roster.
package driverrepo

import (
	"resto/internal/core/domain/model/driver"
	"resto/internal/core/domain/model/kernel"
)

// DriverDTO is the database row for one roster driver.
type DriverDTO struct {
	ID                  string `gorm:"primaryKey"`
	Name                string
	Phone               string
	Status              int `gorm:"index"`
	Vehicle             int
	CompletedDeliveries int
	Rating              float64
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:                  aggregate.ID().String(),
		Name:                aggregate.Name(),
		Phone:               aggregate.Phone(),
		Status:              int(aggregate.Status()),
		Vehicle:             int(aggregate.Vehicle()),
		CompletedDeliveries: aggregate.CompletedDeliveries(),
		Rating:              aggregate.Rating(),
	}
}

// toDomain converts a database row back into a driver aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Phone,
		driver.Status(dto.Status),
		driver.VehicleType(dto.Vehicle),
		dto.CompletedDeliveries,
		dto.Rating,
	)
}

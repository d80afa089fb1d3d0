// Package staffrepo reads the staff roster for gate checks. The roster is
// seeded at startup and never written by the core, so the repository
// carries only the lookup side.
package staffrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/staff"
	"resto/internal/pkg/errs"
)

// StaffDTO is the database row for one staff member.
type StaffDTO struct {
	ID             string `gorm:"primaryKey"`
	Name           string
	Role           int
	Active         bool
	CredentialHash string
}

// TableName overrides GORM's default naming to use "staff".
func (StaffDTO) TableName() string {
	return "staff"
}

// GormStaffRepository implements ports.StaffRepository over sqlite.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Get retrieves a staff member by identifier.
func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff member", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Seed inserts roster members at startup, replacing rows that already
// exist so credential rotations land on restart.
func (r *GormStaffRepository) Seed(ctx context.Context, members []*staff.Staff) error {
	for _, member := range members {
		if err := member.Validate(); err != nil {
			return err
		}

		dto := fromDomain(member)
		if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
			return err
		}
	}

	return nil
}

func fromDomain(member *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:             member.ID().String(),
		Name:           member.Name(),
		Role:           int(member.Role()),
		Active:         member.IsActive(),
		CredentialHash: member.CredentialHash(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return staff.NewStaff(id, dto.Name, staff.Role(dto.Role), dto.Active, dto.CredentialHash)
}

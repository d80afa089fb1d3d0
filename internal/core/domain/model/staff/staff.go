// Package staff provides the read model for the externally managed staff
// roster. The core reads staff records only to resolve roles and compare
// credentials at the station gates; roster management itself is an
// external collaborator's concern.
package staff

import (
	"errors"
	"fmt"
	"strings"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

// Domain errors for staff records.
var (
	// ErrStaffIsNotConstructed is returned when using an improperly
	// initialized Staff record.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff")

	// ErrNameIsRequired is returned when creating a staff record without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrCredentialIsRequired is returned when a staff record carries no
	// credential hash. Credentials are stored hashed, never plaintext.
	ErrCredentialIsRequired = errs.NewValueIsRequiredError("credential hash")
)

// Role is the staff member's function, deciding which gates they may pass.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin may pass every gate, including order cancellation.
	RoleAdmin

	// RoleCook works the kitchen station.
	RoleCook

	// RoleWaiter owns tables; their individual credential gates managing
	// and settling their own tables.
	RoleWaiter
)

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleCook && r != RoleWaiter {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleCook:
		return "Cook"
	case RoleWaiter:
		return "Waiter"
	default:
		return "Unknown"
	}
}

// Staff is one member of the externally owned staff roster. The core
// holds it read-only: id and role for authorization decisions, and the
// hashed credential for gate checks through a CredentialVerifier.
type Staff struct {
	id             kernel.UUID
	name           string
	role           Role
	active         bool
	credentialHash string
	guard          guard.ConstructorGuard
}

// NewStaff creates a staff record. The credential is the bcrypt hash of
// the member's secret, produced by the roster collaborator.
func NewStaff(id kernel.UUID, name string, role Role, active bool, credentialHash string) (*Staff, error) {
	s := &Staff{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setRole(role),
		s.setCredentialHash(credentialHash),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the Staff record was created through the constructor.
func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the staff member's name.
func (s *Staff) Name() string {
	return s.name
}

// Role returns the staff member's function.
func (s *Staff) Role() Role {
	return s.role
}

// IsActive reports whether the member is on the active roster.
func (s *Staff) IsActive() bool {
	return s.active
}

// CredentialHash returns the stored bcrypt hash of the member's secret.
func (s *Staff) CredentialHash() string {
	return s.credentialHash
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

func (s *Staff) setCredentialHash(hash string) error {
	if strings.TrimSpace(hash) == "" {
		return ErrCredentialIsRequired
	}
	s.credentialHash = hash
	return nil
}

package tenancy

import (
	"strings"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/shared/valueobject"
)

// ErrUnitPropertyMismatch is returned when a unit does not belong to the
// property named in an assignment.
var ErrUnitPropertyMismatch = shared.NewDomainError("UNIT_PROPERTY_MISMATCH", "Unit does not belong to the specified property")

// Unit represents a leasable unit inside a multi-unit property.
type Unit struct {
	shared.BaseEntity
	PropertyID uuid.UUID
	Name       string
	Price      valueobject.Money
	Status     OccupancyStatus
	TenantID   *uuid.UUID
}

// NewUnit creates a new vacant unit under a multi-unit property
func NewUnit(propertyID uuid.UUID, name string, price valueobject.Money) (*Unit, error) {
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Unit name cannot be empty")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}

	return &Unit{
		BaseEntity: shared.NewBaseEntity(),
		PropertyID: propertyID,
		Name:       name,
		Price:      price,
		Status:     OccupancyVacant,
	}, nil
}

// IsVacant returns true if the unit is available for assignment
func (u *Unit) IsVacant() bool {
	return u.Status == OccupancyVacant
}

// Assign places a tenant in the unit and marks it Occupied
func (u *Unit) Assign(tenantID uuid.UUID) error {
	if !u.IsVacant() {
		return shared.ErrNotAvailable
	}
	u.Status = OccupancyOccupied
	u.TenantID = &tenantID
	return nil
}

// Vacate clears the tenant and marks the unit Vacant
func (u *Unit) Vacate() {
	u.Status = OccupancyVacant
	u.TenantID = nil
}

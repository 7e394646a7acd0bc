package tenancy

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
)

// Tenant represents a renter. A tenant with no property or unit reference
// is unassigned; a unit reference implies its parent property.
type Tenant struct {
	shared.BaseEntity
	FullName   string
	Phone      string
	Email      string
	IDNumber   string
	PropertyID *uuid.UUID
	UnitID     *uuid.UUID
	LeaseStart *time.Time
	LeaseEnd   *time.Time
	Active     bool
}

// NewTenant creates a new unassigned tenant
func NewTenant(fullName, phone, email string) (*Tenant, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}

	return &Tenant{
		BaseEntity: shared.NewBaseEntity(),
		FullName:   fullName,
		Phone:      phone,
		Email:      email,
		Active:     true,
	}, nil
}

// WithIDNumber sets the tenant's identity document number
func (t *Tenant) WithIDNumber(idNumber string) *Tenant {
	t.IDNumber = idNumber
	return t
}

// WithLease sets the lease period
func (t *Tenant) WithLease(start, end time.Time) *Tenant {
	t.LeaseStart = &start
	t.LeaseEnd = &end
	return t
}

// IsAssigned returns true if the tenant occupies a property or unit
func (t *Tenant) IsAssigned() bool {
	return t.PropertyID != nil || t.UnitID != nil
}

// AssignToProperty links the tenant to a standalone property
func (t *Tenant) AssignToProperty(propertyID uuid.UUID) error {
	if t.IsAssigned() {
		return shared.ErrAlreadyAssigned
	}
	t.PropertyID = &propertyID
	t.UnitID = nil
	t.Active = true
	return nil
}

// AssignToUnit links the tenant to a unit within a property
func (t *Tenant) AssignToUnit(propertyID, unitID uuid.UUID) error {
	if t.IsAssigned() {
		return shared.ErrAlreadyAssigned
	}
	t.PropertyID = &propertyID
	t.UnitID = &unitID
	t.Active = true
	return nil
}

// RenewLease updates the lease period and reactivates the tenant
func (t *Tenant) RenewLease(start, end time.Time) error {
	if end.Before(start) {
		return shared.NewDomainError("INVALID_LEASE_PERIOD", "Lease end date cannot precede start date")
	}
	t.LeaseStart = &start
	t.LeaseEnd = &end
	t.Active = true
	return nil
}

// EndLease clears the tenant's assignment and deactivates the record.
// Historical payments remain attached to the tenant ID.
func (t *Tenant) EndLease() {
	t.PropertyID = nil
	t.UnitID = nil
	t.Active = false
}

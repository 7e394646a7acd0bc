package tenancy

import (
	"strings"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/shared/valueobject"
)

// PropertyType represents the kind of property
type PropertyType string

const (
	// PropertyTypeStandard represents a single leasable property with its own price
	PropertyTypeStandard PropertyType = "STANDARD"
	// PropertyTypeMultiUnit represents a container property whose price lives on child units
	PropertyTypeMultiUnit PropertyType = "MULTI_UNIT"
)

// String returns the string representation of PropertyType
func (t PropertyType) String() string {
	return string(t)
}

// IsValid returns true if the property type is valid
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeStandard, PropertyTypeMultiUnit:
		return true
	}
	return false
}

// OccupancyStatus represents whether a property or unit is let out
type OccupancyStatus string

const (
	// OccupancyVacant means the property or unit has no tenant
	OccupancyVacant OccupancyStatus = "VACANT"
	// OccupancyOccupied means the property or unit is let to a tenant
	OccupancyOccupied OccupancyStatus = "OCCUPIED"
)

// String returns the string representation of OccupancyStatus
func (s OccupancyStatus) String() string {
	return string(s)
}

// IsValid returns true if the occupancy status is valid
func (s OccupancyStatus) IsValid() bool {
	switch s {
	case OccupancyVacant, OccupancyOccupied:
		return true
	}
	return false
}

// Property represents a leasable property owned by a landlord.
// Multi-unit properties carry no price of their own; price lives on child units.
type Property struct {
	shared.BaseEntity
	Title       string
	Address     string
	Type        PropertyType
	LandlordID  uuid.UUID
	Price       valueobject.Money
	Status      OccupancyStatus
	Description string
}

// NewProperty creates a new property in Vacant state
func NewProperty(title, address string, propertyType PropertyType, landlordID uuid.UUID, price valueobject.Money) (*Property, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Property title cannot be empty")
	}
	if !propertyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PROPERTY_TYPE", "Invalid property type")
	}
	if landlordID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LANDLORD", "Landlord ID cannot be empty")
	}
	if propertyType == PropertyTypeStandard && !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Standard property price must be positive")
	}
	if propertyType == PropertyTypeMultiUnit {
		price = valueobject.ZeroNGN()
	}

	return &Property{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Address:    address,
		Type:       propertyType,
		LandlordID: landlordID,
		Price:      price,
		Status:     OccupancyVacant,
	}, nil
}

// IsMultiUnit returns true for container properties
func (p *Property) IsMultiUnit() bool {
	return p.Type == PropertyTypeMultiUnit
}

// IsVacant returns true if the property is available for assignment
func (p *Property) IsVacant() bool {
	return p.Status == OccupancyVacant
}

// MarkOccupied transitions the property to Occupied
func (p *Property) MarkOccupied() {
	p.Status = OccupancyOccupied
}

// MarkVacant transitions the property to Vacant
func (p *Property) MarkVacant() {
	p.Status = OccupancyVacant
}

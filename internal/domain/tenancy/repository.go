package tenancy

import (
	"context"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
)

// LandlordRepository defines persistence operations for landlords
type LandlordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Landlord, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Landlord, int64, error)
	Save(ctx context.Context, landlord *Landlord) error
}

// PropertyRepository defines persistence operations for properties
type PropertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)
	FindByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]Property, error)
	FindByStatus(ctx context.Context, status OccupancyStatus, filter shared.Filter) ([]Property, int64, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Property, int64, error)
	Save(ctx context.Context, property *Property) error
}

// UnitRepository defines persistence operations for units
type UnitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]Unit, error)
	FindVacantByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]Unit, error)
	CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error)
	CountOccupiedByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error)
	Save(ctx context.Context, unit *Unit) error
}

// TenantRepository defines persistence operations for tenants
type TenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	FindAssigned(ctx context.Context) ([]Tenant, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, int64, error)
	FindWithLeaseEndingIn(ctx context.Context, year int, month int) ([]Tenant, error)
	Save(ctx context.Context, tenant *Tenant) error
}

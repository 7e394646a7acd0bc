package tenancy

import (
	"context"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/tenancy"
	"github.com/stretchr/testify/mock"
)

// MockLandlordRepository is a mock implementation of tenancy.LandlordRepository
type MockLandlordRepository struct {
	mock.Mock
}

func (m *MockLandlordRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Landlord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Landlord), args.Error(1)
}

func (m *MockLandlordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Landlord, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]tenancy.Landlord), args.Get(1).(int64), args.Error(2)
}

func (m *MockLandlordRepository) Save(ctx context.Context, landlord *tenancy.Landlord) error {
	args := m.Called(ctx, landlord)
	return args.Error(0)
}

// MockPropertyRepository is a mock implementation of tenancy.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]tenancy.Property, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByStatus(ctx context.Context, status tenancy.OccupancyStatus, filter shared.Filter) ([]tenancy.Property, int64, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]tenancy.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Property, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]tenancy.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) Save(ctx context.Context, property *tenancy.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

// MockUnitRepository is a mock implementation of tenancy.UnitRepository
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]tenancy.Unit, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindVacantByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]tenancy.Unit, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Unit), args.Error(1)
}

func (m *MockUnitRepository) CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnitRepository) CountOccupiedByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnitRepository) Save(ctx context.Context, unit *tenancy.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

// MockTenantRepository is a mock implementation of tenancy.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAssigned(ctx context.Context) ([]tenancy.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Tenant, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]tenancy.Tenant), args.Get(1).(int64), args.Error(2)
}

func (m *MockTenantRepository) FindWithLeaseEndingIn(ctx context.Context, year int, month int) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

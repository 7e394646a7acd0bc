package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/tenancy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock implementation of ledger.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *ledger.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID) ([]ledger.Payment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Payment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]ledger.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) SumOutstandingByTenantID(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) CountCompletedCyclesByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) SumOutstandingAll(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) CloseOpenBalances(ctx context.Context, tenantID uuid.UUID, excludeID uuid.UUID) error {
	args := m.Called(ctx, tenantID, excludeID)
	return args.Error(0)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// MockLedgerEntryRepository is a mock implementation of ledger.LedgerEntryRepository
type MockLedgerEntryRepository struct {
	mock.Mock
}

func (m *MockLedgerEntryRepository) Create(ctx context.Context, entry *ledger.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) FindByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]ledger.LedgerEntry, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) SumByLandlordIDAndType(ctx context.Context, landlordID uuid.UUID, entryType ledger.EntryType) (decimal.Decimal, error) {
	args := m.Called(ctx, landlordID, entryType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
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

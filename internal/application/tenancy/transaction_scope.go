package tenancy

import (
	"context"

	"github.com/propdesk/backend/internal/domain/tenancy"
)

// TransactionScope provides transactional access to the tenancy repositories.
// Assignment and lease lifecycle operations mutate tenant, unit and property
// rows together and must commit or roll back as one.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the tenancy repositories scoped to the
// current transaction.
type TransactionalRepositories interface {
	LandlordRepo() tenancy.LandlordRepository
	PropertyRepo() tenancy.PropertyRepository
	UnitRepo() tenancy.UnitRepository
	TenantRepo() tenancy.TenantRepository
}

// NoOpTransactionScope runs the function against fixed repositories without a
// real transaction. Used in tests.
type NoOpTransactionScope struct {
	landlordRepo tenancy.LandlordRepository
	propertyRepo tenancy.PropertyRepository
	unitRepo     tenancy.UnitRepository
	tenantRepo   tenancy.TenantRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	landlordRepo tenancy.LandlordRepository,
	propertyRepo tenancy.PropertyRepository,
	unitRepo tenancy.UnitRepository,
	tenantRepo tenancy.TenantRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		landlordRepo: landlordRepo,
		propertyRepo: propertyRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// LandlordRepo returns the landlord repository.
func (s *NoOpTransactionScope) LandlordRepo() tenancy.LandlordRepository {
	return s.landlordRepo
}

// PropertyRepo returns the property repository.
func (s *NoOpTransactionScope) PropertyRepo() tenancy.PropertyRepository {
	return s.propertyRepo
}

// UnitRepo returns the unit repository.
func (s *NoOpTransactionScope) UnitRepo() tenancy.UnitRepository {
	return s.unitRepo
}

// TenantRepo returns the tenant repository.
func (s *NoOpTransactionScope) TenantRepo() tenancy.TenantRepository {
	return s.tenantRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

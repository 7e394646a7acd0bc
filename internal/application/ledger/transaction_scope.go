package ledger

import (
	"context"

	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/propdesk/backend/internal/domain/tenancy"
)

// TransactionScope provides transactional access to the repositories a ledger
// operation touches. All repository calls inside Execute share one database
// transaction; an error rolls everything back, nil commits.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the current
// transaction. Payments and ledger entries are the write side; the tenancy
// repositories are read (rent resolution) plus lease-date updates on renewal.
type TransactionalRepositories interface {
	PaymentRepo() ledger.PaymentRepository
	LedgerEntryRepo() ledger.LedgerEntryRepository
	TenantRepo() tenancy.TenantRepository
	PropertyRepo() tenancy.PropertyRepository
	UnitRepo() tenancy.UnitRepository
	LandlordRepo() tenancy.LandlordRepository
}

// NoOpTransactionScope runs the function against fixed repositories without a
// real transaction. Used in tests.
type NoOpTransactionScope struct {
	paymentRepo     ledger.PaymentRepository
	ledgerEntryRepo ledger.LedgerEntryRepository
	tenantRepo      tenancy.TenantRepository
	propertyRepo    tenancy.PropertyRepository
	unitRepo        tenancy.UnitRepository
	landlordRepo    tenancy.LandlordRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	paymentRepo ledger.PaymentRepository,
	ledgerEntryRepo ledger.LedgerEntryRepository,
	tenantRepo tenancy.TenantRepository,
	propertyRepo tenancy.PropertyRepository,
	unitRepo tenancy.UnitRepository,
	landlordRepo tenancy.LandlordRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		paymentRepo:     paymentRepo,
		ledgerEntryRepo: ledgerEntryRepo,
		tenantRepo:      tenantRepo,
		propertyRepo:    propertyRepo,
		unitRepo:        unitRepo,
		landlordRepo:    landlordRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PaymentRepo returns the payment repository.
func (s *NoOpTransactionScope) PaymentRepo() ledger.PaymentRepository {
	return s.paymentRepo
}

// LedgerEntryRepo returns the ledger entry repository.
func (s *NoOpTransactionScope) LedgerEntryRepo() ledger.LedgerEntryRepository {
	return s.ledgerEntryRepo
}

// TenantRepo returns the tenant repository.
func (s *NoOpTransactionScope) TenantRepo() tenancy.TenantRepository {
	return s.tenantRepo
}

// PropertyRepo returns the property repository.
func (s *NoOpTransactionScope) PropertyRepo() tenancy.PropertyRepository {
	return s.propertyRepo
}

// UnitRepo returns the unit repository.
func (s *NoOpTransactionScope) UnitRepo() tenancy.UnitRepository {
	return s.unitRepo
}

// LandlordRepo returns the landlord repository.
func (s *NoOpTransactionScope) LandlordRepo() tenancy.LandlordRepository {
	return s.landlordRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

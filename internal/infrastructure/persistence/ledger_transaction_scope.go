package persistence

import (
	"context"

	appledger "github.com/propdesk/backend/internal/application/ledger"
	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/propdesk/backend/internal/domain/tenancy"
	"gorm.io/gorm"
)

// GormLedgerTransactionScope implements the ledger TransactionScope using GORM
// transactions. Payment recording and lease renewal touch payments, ledger
// entries and tenancy rows together and must commit or roll back as one.
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GormLedgerTransactionScope.
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormLedgerRepositories{tx: tx}
		return fn(repos)
	})
}

// gormLedgerRepositories provides access to the repositories a ledger
// operation touches, all scoped to the current transaction.
type gormLedgerRepositories struct {
	tx *gorm.DB
}

// PaymentRepo returns the payment repository scoped to the current transaction.
func (r *gormLedgerRepositories) PaymentRepo() ledger.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// LedgerEntryRepo returns the ledger entry repository scoped to the current transaction.
func (r *gormLedgerRepositories) LedgerEntryRepo() ledger.LedgerEntryRepository {
	return NewGormLedgerEntryRepository(r.tx)
}

// TenantRepo returns the tenant repository scoped to the current transaction.
func (r *gormLedgerRepositories) TenantRepo() tenancy.TenantRepository {
	return NewGormTenantRepository(r.tx)
}

// PropertyRepo returns the property repository scoped to the current transaction.
func (r *gormLedgerRepositories) PropertyRepo() tenancy.PropertyRepository {
	return NewGormPropertyRepository(r.tx)
}

// UnitRepo returns the unit repository scoped to the current transaction.
func (r *gormLedgerRepositories) UnitRepo() tenancy.UnitRepository {
	return NewGormUnitRepository(r.tx)
}

// LandlordRepo returns the landlord repository scoped to the current transaction.
func (r *gormLedgerRepositories) LandlordRepo() tenancy.LandlordRepository {
	return NewGormLandlordRepository(r.tx)
}

// Ensure GormLedgerTransactionScope implements TransactionScope
var _ appledger.TransactionScope = (*GormLedgerTransactionScope)(nil)

// Ensure gormLedgerRepositories implements TransactionalRepositories
var _ appledger.TransactionalRepositories = (*gormLedgerRepositories)(nil)

package persistence

import (
	"context"

	apptenancy "github.com/propdesk/backend/internal/application/tenancy"
	"github.com/propdesk/backend/internal/domain/tenancy"
	"gorm.io/gorm"
)

// GormTenancyTransactionScope implements the tenancy TransactionScope using
// GORM transactions.
type GormTenancyTransactionScope struct {
	db *gorm.DB
}

// NewGormTenancyTransactionScope creates a new GormTenancyTransactionScope.
func NewGormTenancyTransactionScope(db *gorm.DB) *GormTenancyTransactionScope {
	return &GormTenancyTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTenancyTransactionScope) Execute(ctx context.Context, fn func(repos apptenancy.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTenancyRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTenancyRepositories provides access to the tenancy repositories scoped
// to the current transaction.
type gormTenancyRepositories struct {
	tx *gorm.DB
}

// LandlordRepo returns the landlord repository scoped to the current transaction.
func (r *gormTenancyRepositories) LandlordRepo() tenancy.LandlordRepository {
	return NewGormLandlordRepository(r.tx)
}

// PropertyRepo returns the property repository scoped to the current transaction.
func (r *gormTenancyRepositories) PropertyRepo() tenancy.PropertyRepository {
	return NewGormPropertyRepository(r.tx)
}

// UnitRepo returns the unit repository scoped to the current transaction.
func (r *gormTenancyRepositories) UnitRepo() tenancy.UnitRepository {
	return NewGormUnitRepository(r.tx)
}

// TenantRepo returns the tenant repository scoped to the current transaction.
func (r *gormTenancyRepositories) TenantRepo() tenancy.TenantRepository {
	return NewGormTenantRepository(r.tx)
}

// Ensure GormTenancyTransactionScope implements TransactionScope
var _ apptenancy.TransactionScope = (*GormTenancyTransactionScope)(nil)

// Ensure gormTenancyRepositories implements TransactionalRepositories
var _ apptenancy.TransactionalRepositories = (*gormTenancyRepositories)(nil)

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Create inserts a new payment row
func (r *GormPaymentRepository) Create(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTenantID finds all payments made by a tenant, newest first
func (r *GormPaymentRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID) ([]ledger.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("payment_date DESC, created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return paymentsToDomain(paymentModels), nil
}

// FindAll finds all payments matching the filter with a total count
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Payment, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.PaymentModel{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var paymentModels []models.PaymentModel
	if err := applyPageAndOrder(base, filter, "payment_date DESC, created_at DESC").Find(&paymentModels).Error; err != nil {
		return nil, 0, err
	}
	return paymentsToDomain(paymentModels), total, nil
}

// SumOutstandingByTenantID sums balance_due over the tenant's open payments
func (r *GormPaymentRepository) SumOutstandingByTenantID(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(balance_due), 0)").
		Where("tenant_id = ? AND balance_due > 0", tenantID).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// CountCompletedCyclesByTenantID counts the tenant's settled rent cycles
func (r *GormPaymentRepository) CountCompletedCyclesByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("tenant_id = ? AND type = ? AND balance_due = 0", tenantID, ledger.PaymentTypeFull).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumOutstandingAll sums balance_due over every open payment
func (r *GormPaymentRepository) SumOutstandingAll(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(balance_due), 0)").
		Where("balance_due > 0").
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// CloseOpenBalances zeroes every other open row for the tenant
func (r *GormPaymentRepository) CloseOpenBalances(ctx context.Context, tenantID uuid.UUID, excludeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("tenant_id = ? AND balance_due > 0 AND id <> ?", tenantID, excludeID).
		Updates(map[string]any{
			"balance_due": decimal.Zero,
			"type":        ledger.PaymentTypeFull,
		}).Error
}

// Save persists changes to an existing payment row
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

func paymentsToDomain(paymentModels []models.PaymentModel) []ledger.Payment {
	payments := make([]ledger.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ ledger.PaymentRepository = (*GormPaymentRepository)(nil)

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/tenancy"
	"github.com/propdesk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAssigned finds all tenants currently linked to a property
func (r *GormTenantRepository) FindAssigned(ctx context.Context) ([]tenancy.Tenant, error) {
	var tenantModels []models.TenantModel
	if err := r.db.WithContext(ctx).
		Where("property_id IS NOT NULL AND active = ?", true).
		Order("full_name ASC").
		Find(&tenantModels).Error; err != nil {
		return nil, err
	}
	return tenantsToDomain(tenantModels), nil
}

// FindAll finds all tenants matching the filter with a total count
func (r *GormTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Tenant, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.TenantModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("full_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tenantModels []models.TenantModel
	if err := applyPageAndOrder(base, filter, "full_name ASC").Find(&tenantModels).Error; err != nil {
		return nil, 0, err
	}
	return tenantsToDomain(tenantModels), total, nil
}

// FindWithLeaseEndingIn finds active tenants whose lease ends in the given month
func (r *GormTenantRepository) FindWithLeaseEndingIn(ctx context.Context, year int, month int) ([]tenancy.Tenant, error) {
	var tenantModels []models.TenantModel
	if err := r.db.WithContext(ctx).
		Where("active = ? AND lease_end IS NOT NULL", true).
		Where("EXTRACT(YEAR FROM lease_end) = ? AND EXTRACT(MONTH FROM lease_end) = ?", year, month).
		Order("lease_end ASC").
		Find(&tenantModels).Error; err != nil {
		return nil, err
	}
	return tenantsToDomain(tenantModels), nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	model := models.TenantModelFromDomain(tenant)
	return r.db.WithContext(ctx).Save(model).Error
}

func tenantsToDomain(tenantModels []models.TenantModel) []tenancy.Tenant {
	tenants := make([]tenancy.Tenant, len(tenantModels))
	for i, model := range tenantModels {
		tenants[i] = *model.ToDomain()
	}
	return tenants
}

// Ensure GormTenantRepository implements TenantRepository
var _ tenancy.TenantRepository = (*GormTenantRepository)(nil)

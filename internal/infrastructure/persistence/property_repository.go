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

// GormPropertyRepository implements PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property by its ID
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLandlordID finds all properties owned by a landlord
func (r *GormPropertyRepository) FindByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]tenancy.Property, error) {
	var propertyModels []models.PropertyModel
	if err := r.db.WithContext(ctx).
		Where("landlord_id = ?", landlordID).
		Order("created_at ASC").
		Find(&propertyModels).Error; err != nil {
		return nil, err
	}
	return propertiesToDomain(propertyModels), nil
}

// FindByStatus finds properties by occupancy status with a total count
func (r *GormPropertyRepository) FindByStatus(ctx context.Context, status tenancy.OccupancyStatus, filter shared.Filter) ([]tenancy.Property, int64, error) {
	return r.findAll(ctx, filter, func(q *gorm.DB) *gorm.DB {
		return q.Where("status = ?", status)
	})
}

// FindAll finds all properties matching the filter with a total count
func (r *GormPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Property, int64, error) {
	return r.findAll(ctx, filter, nil)
}

func (r *GormPropertyRepository) findAll(ctx context.Context, filter shared.Filter, scope func(*gorm.DB) *gorm.DB) ([]tenancy.Property, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.PropertyModel{})
	if scope != nil {
		base = scope(base)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("title ILIKE ? OR address ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var propertyModels []models.PropertyModel
	if err := applyPageAndOrder(base, filter, "title ASC").Find(&propertyModels).Error; err != nil {
		return nil, 0, err
	}
	return propertiesToDomain(propertyModels), total, nil
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, property *tenancy.Property) error {
	model := models.PropertyModelFromDomain(property)
	return r.db.WithContext(ctx).Save(model).Error
}

func propertiesToDomain(propertyModels []models.PropertyModel) []tenancy.Property {
	properties := make([]tenancy.Property, len(propertyModels))
	for i, model := range propertyModels {
		properties[i] = *model.ToDomain()
	}
	return properties
}

// Ensure GormPropertyRepository implements PropertyRepository
var _ tenancy.PropertyRepository = (*GormPropertyRepository)(nil)

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

// GormUnitRepository implements UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by its ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPropertyID finds all units belonging to a property
func (r *GormUnitRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]tenancy.Unit, error) {
	var unitModels []models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("name ASC").
		Find(&unitModels).Error; err != nil {
		return nil, err
	}
	return unitsToDomain(unitModels), nil
}

// FindVacantByPropertyID finds the vacant units of a property
func (r *GormUnitRepository) FindVacantByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]tenancy.Unit, error) {
	var unitModels []models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ? AND status = ?", propertyID, tenancy.OccupancyVacant).
		Order("name ASC").
		Find(&unitModels).Error; err != nil {
		return nil, err
	}
	return unitsToDomain(unitModels), nil
}

// CountByPropertyID counts all units of a property
func (r *GormUnitRepository) CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UnitModel{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOccupiedByPropertyID counts the occupied units of a property
func (r *GormUnitRepository) CountOccupiedByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UnitModel{}).
		Where("property_id = ? AND status = ?", propertyID, tenancy.OccupancyOccupied).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *tenancy.Unit) error {
	model := models.UnitModelFromDomain(unit)
	return r.db.WithContext(ctx).Save(model).Error
}

func unitsToDomain(unitModels []models.UnitModel) []tenancy.Unit {
	units := make([]tenancy.Unit, len(unitModels))
	for i, model := range unitModels {
		units[i] = *model.ToDomain()
	}
	return units
}

// Ensure GormUnitRepository implements UnitRepository
var _ tenancy.UnitRepository = (*GormUnitRepository)(nil)

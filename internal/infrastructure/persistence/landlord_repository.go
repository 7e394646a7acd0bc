package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/tenancy"
	"github.com/propdesk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLandlordRepository implements LandlordRepository using GORM
type GormLandlordRepository struct {
	db *gorm.DB
}

// NewGormLandlordRepository creates a new GormLandlordRepository
func NewGormLandlordRepository(db *gorm.DB) *GormLandlordRepository {
	return &GormLandlordRepository{db: db}
}

// FindByID finds a landlord by its ID
func (r *GormLandlordRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Landlord, error) {
	var model models.LandlordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all landlords matching the filter with a total count
func (r *GormLandlordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Landlord, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.LandlordModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("full_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var landlordModels []models.LandlordModel
	if err := applyPageAndOrder(base, filter, "full_name ASC").Find(&landlordModels).Error; err != nil {
		return nil, 0, err
	}

	landlords := make([]tenancy.Landlord, len(landlordModels))
	for i, model := range landlordModels {
		landlords[i] = *model.ToDomain()
	}
	return landlords, total, nil
}

// Save creates or updates a landlord
func (r *GormLandlordRepository) Save(ctx context.Context, landlord *tenancy.Landlord) error {
	model := models.LandlordModelFromDomain(landlord)
	return r.db.WithContext(ctx).Save(model).Error
}

// applyPageAndOrder applies pagination and ordering from the filter, falling
// back to the given default order.
func applyPageAndOrder(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order(defaultOrder)
	}

	return query
}

// Ensure GormLandlordRepository implements LandlordRepository
var _ tenancy.LandlordRepository = (*GormLandlordRepository)(nil)

package tenancy

import (
	"context"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/shared/valueobject"
	"github.com/propdesk/backend/internal/domain/tenancy"
)

// RegistryService handles landlord, property, unit and tenant lifecycle:
// registration, assignment, lease renewal and lease termination.
type RegistryService struct {
	scope TransactionScope
}

// NewRegistryService creates a new RegistryService
func NewRegistryService(scope TransactionScope) *RegistryService {
	return &RegistryService{scope: scope}
}

// CreateLandlord registers a new landlord
func (s *RegistryService) CreateLandlord(ctx context.Context, req CreateLandlordRequest) (*LandlordResponse, error) {
	var resp *LandlordResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		landlord, err := tenancy.NewLandlord(req.FullName, req.Phone, req.Email)
		if err != nil {
			return err
		}
		landlord.WithAddress(req.Address).WithBankDetails(req.BankName, req.AccountNumber)

		if err := repos.LandlordRepo().Save(ctx, landlord); err != nil {
			return err
		}
		r := ToLandlordResponse(landlord)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetLandlord returns a landlord by ID
func (s *RegistryService) GetLandlord(ctx context.Context, id uuid.UUID) (*LandlordResponse, error) {
	var resp *LandlordResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		landlord, err := repos.LandlordRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if landlord == nil {
			return shared.ErrNotFound
		}
		r := ToLandlordResponse(landlord)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListLandlords returns a page of landlords
func (s *RegistryService) ListLandlords(ctx context.Context, filter shared.Filter) (*shared.Paginated[LandlordResponse], error) {
	var resp *shared.Paginated[LandlordResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		landlords, total, err := repos.LandlordRepo().FindAll(ctx, filter)
		if err != nil {
			return err
		}
		items := make([]LandlordResponse, 0, len(landlords))
		for i := range landlords {
			items = append(items, ToLandlordResponse(&landlords[i]))
		}
		p := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		resp = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateProperty registers a new property, creating its units when multi-unit
func (s *RegistryService) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*PropertyResponse, error) {
	var resp *PropertyResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		landlord, err := repos.LandlordRepo().FindByID(ctx, req.LandlordID)
		if err != nil {
			return err
		}
		if landlord == nil {
			return shared.ErrNotFound
		}

		property, err := tenancy.NewProperty(
			req.Title,
			req.Address,
			tenancy.PropertyType(req.Type),
			req.LandlordID,
			valueobject.NewMoneyNGNFromFloat(req.Price),
		)
		if err != nil {
			return err
		}
		property.Description = req.Description

		if err := repos.PropertyRepo().Save(ctx, property); err != nil {
			return err
		}

		var units []tenancy.Unit
		if property.IsMultiUnit() {
			for _, u := range req.Units {
				unit, err := tenancy.NewUnit(property.ID, u.Name, valueobject.NewMoneyNGNFromFloat(u.Price))
				if err != nil {
					return err
				}
				if err := repos.UnitRepo().Save(ctx, unit); err != nil {
					return err
				}
				units = append(units, *unit)
			}
		}

		r := ToPropertyResponse(property, units)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetProperty returns a property and, for multi-unit properties, its units
func (s *RegistryService) GetProperty(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	var resp *PropertyResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		property, err := repos.PropertyRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if property == nil {
			return shared.ErrNotFound
		}

		var units []tenancy.Unit
		if property.IsMultiUnit() {
			units, err = repos.UnitRepo().FindByPropertyID(ctx, property.ID)
			if err != nil {
				return err
			}
		}

		r := ToPropertyResponse(property, units)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListProperties returns a page of properties
func (s *RegistryService) ListProperties(ctx context.Context, filter shared.Filter) (*shared.Paginated[PropertyResponse], error) {
	var resp *shared.Paginated[PropertyResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		properties, total, err := repos.PropertyRepo().FindAll(ctx, filter)
		if err != nil {
			return err
		}
		items := make([]PropertyResponse, 0, len(properties))
		for i := range properties {
			items = append(items, ToPropertyResponse(&properties[i], nil))
		}
		p := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		resp = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListPropertiesByStatus returns vacant or occupied properties
func (s *RegistryService) ListPropertiesByStatus(ctx context.Context, status tenancy.OccupancyStatus, filter shared.Filter) (*shared.Paginated[PropertyResponse], error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Invalid occupancy status")
	}
	var resp *shared.Paginated[PropertyResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		properties, total, err := repos.PropertyRepo().FindByStatus(ctx, status, filter)
		if err != nil {
			return err
		}
		items := make([]PropertyResponse, 0, len(properties))
		for i := range properties {
			items = append(items, ToPropertyResponse(&properties[i], nil))
		}
		p := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		resp = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListAvailableUnits returns the vacant units of a property
func (s *RegistryService) ListAvailableUnits(ctx context.Context, propertyID uuid.UUID) ([]UnitResponse, error) {
	var resp []UnitResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		property, err := repos.PropertyRepo().FindByID(ctx, propertyID)
		if err != nil {
			return err
		}
		if property == nil {
			return shared.ErrNotFound
		}
		units, err := repos.UnitRepo().FindVacantByPropertyID(ctx, propertyID)
		if err != nil {
			return err
		}
		resp = make([]UnitResponse, 0, len(units))
		for i := range units {
			resp = append(resp, ToUnitResponse(&units[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateTenant registers a tenant, optionally assigning them in the same
// transaction when a property (and unit) is supplied.
func (s *RegistryService) CreateTenant(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	var resp *TenantResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := tenancy.NewTenant(req.FullName, req.Phone, req.Email)
		if err != nil {
			return err
		}
		tenant.WithIDNumber(req.IDNumber)
		if req.LeaseStart != nil && req.LeaseEnd != nil {
			if err := tenant.RenewLease(*req.LeaseStart, *req.LeaseEnd); err != nil {
				return err
			}
		}

		if err := repos.TenantRepo().Save(ctx, tenant); err != nil {
			return err
		}

		if req.PropertyID != nil {
			if err := s.assign(ctx, repos, tenant, *req.PropertyID, req.UnitID); err != nil {
				return err
			}
		}

		r := ToTenantResponse(tenant)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTenant returns a tenant by ID
func (s *RegistryService) GetTenant(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	var resp *TenantResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.TenantRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if tenant == nil {
			return shared.ErrNotFound
		}
		r := ToTenantResponse(tenant)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListTenants returns a page of tenants
func (s *RegistryService) ListTenants(ctx context.Context, filter shared.Filter) (*shared.Paginated[TenantResponse], error) {
	var resp *shared.Paginated[TenantResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenants, total, err := repos.TenantRepo().FindAll(ctx, filter)
		if err != nil {
			return err
		}
		items := make([]TenantResponse, 0, len(tenants))
		for i := range tenants {
			items = append(items, ToTenantResponse(&tenants[i]))
		}
		p := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		resp = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AssignTenant places a tenant in a property or one of its units
func (s *RegistryService) AssignTenant(ctx context.Context, req AssignTenantRequest) (*TenantResponse, error) {
	var resp *TenantResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.TenantRepo().FindByID(ctx, req.TenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return shared.ErrNotFound
		}
		if req.LeaseStart != nil && req.LeaseEnd != nil {
			if err := tenant.RenewLease(*req.LeaseStart, *req.LeaseEnd); err != nil {
				return err
			}
		}

		if err := s.assign(ctx, repos, tenant, req.PropertyID, req.UnitID); err != nil {
			return err
		}

		r := ToTenantResponse(tenant)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// assign applies the placement rules and persists the affected rows. A unit
// assignment promotes the parent property to Occupied only once every unit
// is taken.
func (s *RegistryService) assign(ctx context.Context, repos TransactionalRepositories, tenant *tenancy.Tenant, propertyID uuid.UUID, unitID *uuid.UUID) error {
	if tenant.IsAssigned() {
		return shared.ErrAlreadyAssigned
	}

	property, err := repos.PropertyRepo().FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return shared.ErrNotFound
	}

	if unitID != nil {
		unit, err := repos.UnitRepo().FindByID(ctx, *unitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return shared.ErrNotFound
		}
		if unit.PropertyID != property.ID {
			return tenancy.ErrUnitPropertyMismatch
		}
		if err := unit.Assign(tenant.ID); err != nil {
			return err
		}
		if err := tenant.AssignToUnit(property.ID, unit.ID); err != nil {
			return err
		}
		if err := repos.UnitRepo().Save(ctx, unit); err != nil {
			return err
		}

		total, err := repos.UnitRepo().CountByPropertyID(ctx, property.ID)
		if err != nil {
			return err
		}
		occupied, err := repos.UnitRepo().CountOccupiedByPropertyID(ctx, property.ID)
		if err != nil {
			return err
		}
		if total > 0 && occupied >= total {
			property.MarkOccupied()
			if err := repos.PropertyRepo().Save(ctx, property); err != nil {
				return err
			}
		}
	} else {
		if !property.IsVacant() {
			return shared.ErrNotAvailable
		}
		if err := tenant.AssignToProperty(property.ID); err != nil {
			return err
		}
		property.MarkOccupied()
		if err := repos.PropertyRepo().Save(ctx, property); err != nil {
			return err
		}
	}

	return repos.TenantRepo().Save(ctx, tenant)
}

// EndLease vacates whatever the tenant occupies and deactivates the tenant.
// Payment history stays attached to the tenant record.
func (s *RegistryService) EndLease(ctx context.Context, tenantID uuid.UUID) (*TenantResponse, error) {
	var resp *TenantResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.TenantRepo().FindByID(ctx, tenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return shared.ErrNotFound
		}
		if !tenant.IsAssigned() {
			return shared.NewDomainError("TENANT_NOT_ASSIGNED", "Tenant is not assigned to a property")
		}

		if tenant.UnitID != nil {
			unit, err := repos.UnitRepo().FindByID(ctx, *tenant.UnitID)
			if err != nil {
				return err
			}
			if unit != nil {
				unit.Vacate()
				if err := repos.UnitRepo().Save(ctx, unit); err != nil {
					return err
				}
			}
		}

		if tenant.PropertyID != nil {
			property, err := repos.PropertyRepo().FindByID(ctx, *tenant.PropertyID)
			if err != nil {
				return err
			}
			if property != nil {
				property.MarkVacant()
				if err := repos.PropertyRepo().Save(ctx, property); err != nil {
					return err
				}
			}
		}

		tenant.EndLease()
		if err := repos.TenantRepo().Save(ctx, tenant); err != nil {
			return err
		}

		r := ToTenantResponse(tenant)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RenewLeaseDates updates a tenant's lease period without recording a payment
// and re-marks their unit or property as occupied.
func (s *RegistryService) RenewLeaseDates(ctx context.Context, req RenewLeaseDatesRequest) (*TenantResponse, error) {
	var resp *TenantResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.TenantRepo().FindByID(ctx, req.TenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return shared.ErrNotFound
		}

		if err := tenant.RenewLease(req.LeaseStart, req.LeaseEnd); err != nil {
			return err
		}

		if tenant.UnitID != nil {
			unit, err := repos.UnitRepo().FindByID(ctx, *tenant.UnitID)
			if err != nil {
				return err
			}
			if unit != nil && unit.IsVacant() {
				if err := unit.Assign(tenant.ID); err != nil {
					return err
				}
				if err := repos.UnitRepo().Save(ctx, unit); err != nil {
					return err
				}
			}
		} else if tenant.PropertyID != nil {
			property, err := repos.PropertyRepo().FindByID(ctx, *tenant.PropertyID)
			if err != nil {
				return err
			}
			if property != nil && property.IsVacant() {
				property.MarkOccupied()
				if err := repos.PropertyRepo().Save(ctx, property); err != nil {
					return err
				}
			}
		}

		if err := repos.TenantRepo().Save(ctx, tenant); err != nil {
			return err
		}

		r := ToTenantResponse(tenant)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

package tenancy

import (
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/tenancy"
)

// CreateLandlordRequest carries the inputs for registering a landlord
type CreateLandlordRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
}

// LandlordResponse represents a landlord in API responses
type LandlordResponse struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateUnitRequest describes one unit of a multi-unit property
type CreateUnitRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePropertyRequest carries the inputs for registering a property
type CreatePropertyRequest struct {
	Title       string              `json:"title" binding:"required"`
	Address     string              `json:"address"`
	Type        string              `json:"type" binding:"required,oneof=STANDARD MULTI_UNIT"`
	LandlordID  uuid.UUID           `json:"landlord_id" binding:"required"`
	Price       float64             `json:"price"`
	Description string              `json:"description"`
	Units       []CreateUnitRequest `json:"units" binding:"omitempty,dive"`
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	Name       string     `json:"name"`
	Price      string     `json:"price"`
	Status     string     `json:"status"`
	TenantID   *uuid.UUID `json:"tenant_id,omitempty"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Address     string         `json:"address"`
	Type        string         `json:"type"`
	LandlordID  uuid.UUID      `json:"landlord_id"`
	Price       string         `json:"price"`
	Status      string         `json:"status"`
	Description string         `json:"description"`
	Units       []UnitResponse `json:"units,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// CreateTenantRequest carries the inputs for registering a tenant
type CreateTenantRequest struct {
	FullName   string     `json:"full_name" binding:"required"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email" binding:"omitempty,email"`
	IDNumber   string     `json:"id_number"`
	PropertyID *uuid.UUID `json:"property_id"`
	UnitID     *uuid.UUID `json:"unit_id"`
	LeaseStart *time.Time `json:"lease_start"`
	LeaseEnd   *time.Time `json:"lease_end"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID         uuid.UUID  `json:"id"`
	FullName   string     `json:"full_name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	IDNumber   string     `json:"id_number"`
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	UnitID     *uuid.UUID `json:"unit_id,omitempty"`
	LeaseStart *time.Time `json:"lease_start,omitempty"`
	LeaseEnd   *time.Time `json:"lease_end,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AssignTenantRequest carries the inputs for placing a tenant
type AssignTenantRequest struct {
	TenantID   uuid.UUID  `json:"tenant_id" binding:"required"`
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	UnitID     *uuid.UUID `json:"unit_id"`
	LeaseStart *time.Time `json:"lease_start"`
	LeaseEnd   *time.Time `json:"lease_end"`
}

// RenewLeaseDatesRequest carries a payment-less lease renewal
type RenewLeaseDatesRequest struct {
	TenantID   uuid.UUID `json:"tenant_id" binding:"required"`
	LeaseStart time.Time `json:"lease_start" binding:"required"`
	LeaseEnd   time.Time `json:"lease_end" binding:"required"`
}

// ToLandlordResponse converts a landlord to its API representation
func ToLandlordResponse(l *tenancy.Landlord) LandlordResponse {
	return LandlordResponse{
		ID:            l.ID,
		FullName:      l.FullName,
		Phone:         l.Phone,
		Email:         l.Email,
		Address:       l.Address,
		BankName:      l.BankName,
		AccountNumber: l.AccountNumber,
		CreatedAt:     l.CreatedAt,
	}
}

// ToUnitResponse converts a unit to its API representation
func ToUnitResponse(u *tenancy.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		PropertyID: u.PropertyID,
		Name:       u.Name,
		Price:      u.Price.StringFixed(2),
		Status:     u.Status.String(),
		TenantID:   u.TenantID,
	}
}

// ToPropertyResponse converts a property to its API representation
func ToPropertyResponse(p *tenancy.Property, units []tenancy.Unit) PropertyResponse {
	resp := PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Address:     p.Address,
		Type:        p.Type.String(),
		LandlordID:  p.LandlordID,
		Price:       p.Price.StringFixed(2),
		Status:      p.Status.String(),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
	for i := range units {
		resp.Units = append(resp.Units, ToUnitResponse(&units[i]))
	}
	return resp
}

// ToTenantResponse converts a tenant to its API representation
func ToTenantResponse(t *tenancy.Tenant) TenantResponse {
	return TenantResponse{
		ID:         t.ID,
		FullName:   t.FullName,
		Phone:      t.Phone,
		Email:      t.Email,
		IDNumber:   t.IDNumber,
		PropertyID: t.PropertyID,
		UnitID:     t.UnitID,
		LeaseStart: t.LeaseStart,
		LeaseEnd:   t.LeaseEnd,
		Active:     t.Active,
		CreatedAt:  t.CreatedAt,
	}
}

package handler

import (
	"github.com/gin-gonic/gin"
	tenancyapp "github.com/propdesk/backend/internal/application/tenancy"
)

// TenantHandler handles tenant API endpoints
type TenantHandler struct {
	BaseHandler
	registry *tenancyapp.RegistryService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(registry *tenancyapp.RegistryService) *TenantHandler {
	return &TenantHandler{registry: registry}
}

// RegisterRoutes registers tenant routes on the given group
func (h *TenantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.Create)
		tenants.GET("", h.List)
		tenants.GET("/:id", h.GetByID)
		tenants.POST("/assign", h.Assign)
		tenants.POST("/renew", h.RenewLeaseDates)
		tenants.DELETE("/:id/lease", h.EndLease)
	}
}

// Create registers a new tenant, optionally pre-assigned to a property or unit
func (h *TenantHandler) Create(c *gin.Context) {
	var req tenancyapp.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenant, err := h.registry.CreateTenant(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tenant)
}

// GetByID returns a tenant by ID
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.registry.GetTenant(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// List returns tenants matching the query filter
func (h *TenantHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.registry.ListTenants(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Assign places a tenant into a vacant property or unit
func (h *TenantHandler) Assign(c *gin.Context) {
	var req tenancyapp.AssignTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenant, err := h.registry.AssignTenant(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// EndLease ends a tenant's lease and frees the property or unit
func (h *TenantHandler) EndLease(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.registry.EndLease(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// RenewLeaseDates updates a tenant's lease period without recording a payment
func (h *TenantHandler) RenewLeaseDates(c *gin.Context) {
	var req tenancyapp.RenewLeaseDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenant, err := h.registry.RenewLeaseDates(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

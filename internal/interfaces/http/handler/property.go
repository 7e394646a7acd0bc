package handler

import (
	"github.com/gin-gonic/gin"
	tenancyapp "github.com/propdesk/backend/internal/application/tenancy"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/tenancy"
)

// PropertyHandler handles property and unit API endpoints
type PropertyHandler struct {
	BaseHandler
	registry *tenancyapp.RegistryService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(registry *tenancyapp.RegistryService) *PropertyHandler {
	return &PropertyHandler{registry: registry}
}

// RegisterRoutes registers property routes on the given group
func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/properties")
	{
		properties.POST("", h.Create)
		properties.GET("", h.List)
		properties.GET("/:id", h.GetByID)
		properties.GET("/:id/units/available", h.ListAvailableUnits)
	}
}

// Create registers a new property, with its units when multi-unit
func (h *PropertyHandler) Create(c *gin.Context) {
	var req tenancyapp.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	property, err := h.registry.CreateProperty(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, property)
}

// GetByID returns a property by ID, including units for multi-unit properties
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	property, err := h.registry.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// List returns properties matching the query filter. An optional status
// query parameter narrows to vacant or occupied properties.
func (h *PropertyHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	status := c.Query("status")

	var page *shared.Paginated[tenancyapp.PropertyResponse]
	if status != "" {
		page, err = h.registry.ListPropertiesByStatus(ctx, tenancy.OccupancyStatus(status), filter)
	} else {
		page, err = h.registry.ListProperties(ctx, filter)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListAvailableUnits returns the vacant units of a property
func (h *PropertyHandler) ListAvailableUnits(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	units, err := h.registry.ListAvailableUnits(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, units)
}

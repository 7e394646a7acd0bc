package handler

import (
	"github.com/gin-gonic/gin"
	tenancyapp "github.com/propdesk/backend/internal/application/tenancy"
)

// LandlordHandler handles landlord API endpoints
type LandlordHandler struct {
	BaseHandler
	registry *tenancyapp.RegistryService
}

// NewLandlordHandler creates a new LandlordHandler
func NewLandlordHandler(registry *tenancyapp.RegistryService) *LandlordHandler {
	return &LandlordHandler{registry: registry}
}

// RegisterRoutes registers landlord routes on the given group
func (h *LandlordHandler) RegisterRoutes(rg *gin.RouterGroup) {
	landlords := rg.Group("/landlords")
	{
		landlords.POST("", h.Create)
		landlords.GET("", h.List)
		landlords.GET("/:id", h.GetByID)
	}
}

// Create registers a new landlord
func (h *LandlordHandler) Create(c *gin.Context) {
	var req tenancyapp.CreateLandlordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	landlord, err := h.registry.CreateLandlord(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, landlord)
}

// GetByID returns a landlord by ID
func (h *LandlordHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid landlord ID")
		return
	}

	landlord, err := h.registry.GetLandlord(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, landlord)
}

// List returns landlords matching the query filter
func (h *LandlordHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.registry.ListLandlords(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

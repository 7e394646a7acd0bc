package handler

import (
	"github.com/gin-gonic/gin"
	ledgerapp "github.com/propdesk/backend/internal/application/ledger"
)

// PaymentHandler handles rent payment and landlord ledger API endpoints
type PaymentHandler struct {
	BaseHandler
	payments *ledgerapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments *ledgerapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// RegisterRoutes registers payment and ledger routes on the given group
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Record)
		payments.POST("/renew-lease", h.RenewLease)
	}
	rg.GET("/tenants/:id/payments", h.ListByTenant)
	rg.POST("/ledger-entries", h.AddLedgerEntry)
}

// Record records a rent payment and classifies it against the tenant's cycle
func (h *PaymentHandler) Record(c *gin.Context) {
	var req ledgerapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.payments.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// RenewLease renews a tenant's lease with an accompanying payment
func (h *PaymentHandler) RenewLease(c *gin.Context) {
	var req ledgerapp.RenewLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.payments.RenewLease(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListByTenant returns a tenant's payment history
func (h *PaymentHandler) ListByTenant(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	payments, err := h.payments.ListPaymentsByTenant(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// AddLedgerEntry records a manual landlord credit or debit
func (h *PaymentHandler) AddLedgerEntry(c *gin.Context) {
	var req ledgerapp.AddLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.payments.AddLedgerEntry(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, entry)
}

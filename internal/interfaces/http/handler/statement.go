package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	statementapp "github.com/propdesk/backend/internal/application/statement"
)

// StatementHandler handles landlord statement and dashboard API endpoints
type StatementHandler struct {
	BaseHandler
	statements *statementapp.StatementService
}

// NewStatementHandler creates a new StatementHandler
func NewStatementHandler(statements *statementapp.StatementService) *StatementHandler {
	return &StatementHandler{statements: statements}
}

// RegisterRoutes registers statement and dashboard routes on the given group
func (h *StatementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/landlords/:id/statement", h.Build)
	rg.GET("/statements/general-balance", h.GeneralBalance)
	rg.GET("/dashboard", h.Dashboard)
}

// statementQuery binds the optional statement filters
type statementQuery struct {
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
	Search   string     `form:"search"`
}

// Build returns a landlord's statement of account
func (h *StatementHandler) Build(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid landlord ID")
		return
	}

	var query statementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	statement, err := h.statements.BuildStatement(c.Request.Context(), statementapp.BuildStatementRequest{
		LandlordID: id,
		DateFrom:   query.DateFrom,
		DateTo:     query.DateTo,
		Search:     query.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, statement)
}

// GeneralBalance returns every landlord's net position
func (h *StatementHandler) GeneralBalance(c *gin.Context) {
	balance, err := h.statements.GeneralBalance(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, balance)
}

// Dashboard returns the back-office landing page aggregates. The month
// defaults to the current one and can be overridden with year/month query
// parameters.
func (h *StatementHandler) Dashboard(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "Invalid year")
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			h.BadRequest(c, "Invalid month")
			return
		}
		month = time.Month(parsed)
	}

	summary, err := h.statements.DashboardSummary(c.Request.Context(), year, month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

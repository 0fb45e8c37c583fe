package handlers

import (
	"net/http"

	"retirement-calc/internal/api/models"
	"retirement-calc/internal/growth"
	"retirement-calc/internal/ledger"
	"retirement-calc/internal/report"

	"github.com/gin-gonic/gin"
)

// GrowthHandler serves the fixed and variable growth calculators.
type GrowthHandler struct{}

func NewGrowthHandler() *GrowthHandler {
	return &GrowthHandler{}
}

// Fixed handles POST /api/v1/growth/fixed
func (h *GrowthHandler) Fixed(c *gin.Context) {
	var req models.FixedGrowthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	final, err := growth.Fixed(*req.Principal, *req.Rate, *req.Years)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := newGrowthResponse(*req.Principal, final)
	if req.IncludeBreakdown {
		l, err := growth.FixedBreakdown(*req.Principal, *req.Rate, *req.Years)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Breakdown = models.LedgerRows(l.Rows)
	}

	c.JSON(http.StatusOK, resp)
}

// Variable handles POST /api/v1/growth/variable
func (h *GrowthHandler) Variable(c *gin.Context) {
	var req models.VariableGrowthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var (
		final float64
		l     ledger.Ledger
		err   error
	)
	if req.IncludeBreakdown {
		l, err = growth.Breakdown(*req.Principal, req.Rates)
		final = l.Final
	} else {
		final, err = growth.Variable(*req.Principal, req.Rates)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	resp := newGrowthResponse(*req.Principal, final)
	if req.IncludeBreakdown {
		resp.Breakdown = models.LedgerRows(l.Rows)
	}

	c.JSON(http.StatusOK, resp)
}

func newGrowthResponse(principal, final float64) *models.GrowthResponse {
	s := report.NewGrowthSummary(principal, final)
	return &models.GrowthResponse{
		GrowthSummary: s,
		Display: models.Display{
			"final_balance": report.Money(s.Final),
			"gain":          report.Money(s.Gain),
		},
	}
}

package handlers

import (
	"net/http"

	"retirement-calc/internal/api/models"
	"retirement-calc/internal/duration"
	"retirement-calc/internal/model"
	"retirement-calc/internal/report"

	"github.com/gin-gonic/gin"
)

// DurationHandler serves the retirement duration simulation.
type DurationHandler struct{}

func NewDurationHandler() *DurationHandler {
	return &DurationHandler{}
}

// Simulate handles POST /api/v1/duration
func (h *DurationHandler) Simulate(c *gin.Context) {
	var req models.DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	dreq := model.DurationRequest{
		Balance: *req.Balance,
		Expense: *req.Expense,
		Rate:    *req.Rate,
		YearCap: req.YearCap,
	}

	if !req.IncludeTrace {
		d, err := duration.YearsUntilDepleted(dreq)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newDurationResponse(dreq, d))
		return
	}

	l, d, err := duration.Trace(dreq)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := newDurationResponse(dreq, d)
	resp.Trace = models.LedgerRows(l.Rows)

	c.JSON(http.StatusOK, resp)
}

func newDurationResponse(req model.DurationRequest, d model.Duration) *models.DurationResponse {
	s := report.NewDurationSummary(req, d)
	return &models.DurationResponse{
		DurationSummary: s,
		Display: models.Display{
			"lasts":           s.Lasts(),
			"withdrawal_rate": report.Percent(s.WithdrawalRate),
		},
	}
}

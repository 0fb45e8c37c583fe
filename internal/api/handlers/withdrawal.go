package handlers

import (
	"fmt"
	"net/http"

	"retirement-calc/internal/analysis"
	"retirement-calc/internal/api/models"
	"retirement-calc/internal/ledger"
	"retirement-calc/internal/model"
	"retirement-calc/internal/report"
	"retirement-calc/internal/withdrawal"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WithdrawalHandler serves the maximum sustainable withdrawal solver.
type WithdrawalHandler struct{}

func NewWithdrawalHandler() *WithdrawalHandler {
	return &WithdrawalHandler{}
}

// Solve handles POST /api/v1/withdrawal
func (h *WithdrawalHandler) Solve(c *gin.Context) {
	var req models.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	wreq := toWithdrawalRequest(req)
	res, err := withdrawal.Solve(wreq)
	if err != nil {
		respondError(c, err)
		return
	}

	zerolog.Ctx(c.Request.Context()).Debug().
		Float64("max_annual_withdrawal", res.MaxAnnualWithdrawal).
		Int("evaluations", res.Evaluations).
		Msg("withdrawal solved")

	resp := newWithdrawalResponse(wreq, res)
	if req.IncludeSchedule {
		l, err := withdrawal.Schedule(wreq.Balance, wreq.Rate, res.MaxAnnualWithdrawal, wreq.Years)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Schedule = models.LedgerRows(l.Rows)
	}

	c.JSON(http.StatusOK, resp)
}

// Report handles POST /api/v1/withdrawal/report
func (h *WithdrawalHandler) Report(c *gin.Context) {
	var req models.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	wreq := toWithdrawalRequest(req)
	res, err := withdrawal.Solve(wreq)
	if err != nil {
		respondError(c, err)
		return
	}
	l, err := withdrawal.Schedule(wreq.Balance, wreq.Rate, res.MaxAnnualWithdrawal, wreq.Years)
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := report.RenderPDF(report.WithdrawalPlan(report.NewWithdrawalSummary(wreq, res), l))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="withdrawal-plan-%dy.pdf"`, wreq.Years))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Sensitivity handles POST /api/v1/withdrawal/sensitivity
func (h *WithdrawalHandler) Sensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tol := req.Tolerance
	if tol == 0 {
		tol = model.DefaultTolerance
	}
	cells, err := analysis.Sensitivity(*req.Balance, req.Rates, req.Years, tol)
	if err != nil {
		respondError(c, err)
		return
	}

	ranked := analysis.RankBySustainableRate(cells)
	resp := models.SensitivityResponse{Cells: make([]models.SensitivityCell, 0, len(ranked))}
	for _, r := range ranked {
		resp.Cells = append(resp.Cells, models.SensitivityCell{
			Rank:                r.Rank,
			Rate:                r.Rate,
			Years:               r.Years,
			MaxAnnualWithdrawal: ledger.Cents(r.MaxAnnualWithdrawal),
			SustainableRate:     r.SustainableRate,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func toWithdrawalRequest(req models.WithdrawalRequest) model.WithdrawalRequest {
	tol := req.Tolerance
	if tol == 0 {
		tol = model.DefaultTolerance
	}
	return model.WithdrawalRequest{
		Balance:   *req.Balance,
		Rate:      *req.Rate,
		Years:     *req.Years,
		Tolerance: tol,
	}
}

func newWithdrawalResponse(req model.WithdrawalRequest, res model.WithdrawalResult) *models.WithdrawalResponse {
	s := report.NewWithdrawalSummary(req, res)
	return &models.WithdrawalResponse{
		WithdrawalSummary: s,
		Ceiling:           res.Ceiling,
		Display: models.Display{
			"annual":          report.Money(s.Annual),
			"monthly":         report.Money(s.Monthly),
			"total_withdrawn": report.Money(s.TotalWithdrawn),
		},
	}
}

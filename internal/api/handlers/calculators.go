package handlers

import (
	"net/http"

	"retirement-calc/internal/api/models"
	"retirement-calc/internal/model"

	"github.com/gin-gonic/gin"
)

// CalculatorHandler describes the available calculators.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

var calculators = []models.CalculatorInfo{
	{
		Name:        "withdrawal",
		Path:        "/api/v1/withdrawal",
		Description: "Largest constant annual withdrawal that lasts the whole horizon. Each year the withdrawal is taken, then the remainder grows.",
		Parameters: []models.ParameterInfo{
			{Name: "balance", Type: "float", Description: "Starting balance, > 0", Required: true},
			{Name: "rate", Type: "float", Description: "Annual growth rate as a fraction, > -1", Required: true},
			{Name: "years", Type: "int", Description: "Horizon in years, 1 to 1000", Required: true},
			{Name: "tolerance", Type: "float", Description: "Search precision in currency units", Default: model.DefaultTolerance},
			{Name: "include_schedule", Type: "bool", Description: "Return the year-by-year schedule"},
		},
	},
	{
		Name:        "sensitivity",
		Path:        "/api/v1/withdrawal/sensitivity",
		Description: "Maximum withdrawal for every combination of rates and horizons, ranked by sustainable rate.",
		Parameters: []models.ParameterInfo{
			{Name: "balance", Type: "float", Description: "Starting balance, > 0", Required: true},
			{Name: "rates", Type: "[]float", Description: "Growth rates to try", Required: true},
			{Name: "years", Type: "[]int", Description: "Horizons to try, each at most 1000", Required: true},
			{Name: "tolerance", Type: "float", Description: "Search precision in currency units", Default: model.DefaultTolerance},
		},
	},
	{
		Name:        "fixed",
		Path:        "/api/v1/growth/fixed",
		Description: "Principal compounded annually at a single rate.",
		Parameters: []models.ParameterInfo{
			{Name: "principal", Type: "float", Description: "Initial investment, > 0", Required: true},
			{Name: "rate", Type: "float", Description: "Annual rate as a fraction, > -1", Required: true},
			{Name: "years", Type: "int", Description: "Number of years, >= 0", Required: true},
			{Name: "include_breakdown", Type: "bool", Description: "Return one row per year, at most 1000 rows"},
		},
	},
	{
		Name:        "variable",
		Path:        "/api/v1/growth/variable",
		Description: "Principal compounded through a sequence of per-year rates, in order.",
		Parameters: []models.ParameterInfo{
			{Name: "principal", Type: "float", Description: "Initial investment, > 0", Required: true},
			{Name: "rates", Type: "[]float", Description: "Per-year rates, each > -1", Required: true},
			{Name: "include_breakdown", Type: "bool", Description: "Return one row per year, at most 1000 rows"},
		},
	},
	{
		Name:        "duration",
		Path:        "/api/v1/duration",
		Description: "Years until a fund is exhausted. Each year the balance grows, then the expense is paid.",
		Parameters: []models.ParameterInfo{
			{Name: "balance", Type: "float", Description: "Starting balance, >= 0", Required: true},
			{Name: "expense", Type: "float", Description: "Annual expense, >= 0", Required: true},
			{Name: "rate", Type: "float", Description: "Annual growth rate, >= 0", Required: true},
			{Name: "year_cap", Type: "int", Description: "Years after which the fund counts as never running out, at most 1000", Default: model.DefaultYearCap},
			{Name: "include_trace", Type: "bool", Description: "Return the year-by-year trace"},
		},
	},
}

// ListCalculators handles GET /api/v1/calculators
func (h *CalculatorHandler) ListCalculators(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"calculators": calculators})
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"retirement-calc/internal/analysis"
	"retirement-calc/internal/api/models"
	"retirement-calc/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ScenarioHandler serves preset scenario files from a directory.
type ScenarioHandler struct {
	scenarioDir string
	cache       *config.Cache
}

// NewScenarioHandler uses dir, or SCENARIO_DIR, or ./examples/scenarios.
func NewScenarioHandler(dir string) *ScenarioHandler {
	if dir == "" {
		dir = os.Getenv("SCENARIO_DIR")
	}
	if dir == "" {
		dir = filepath.Join("examples", "scenarios")
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &ScenarioHandler{
		scenarioDir: dir,
		cache:       config.NewCache(config.CacheTTLFromEnv()),
	}
}

// ScenarioDir returns the directory presets are read from.
func (h *ScenarioHandler) ScenarioDir() string {
	return h.scenarioDir
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	log := zerolog.Ctx(c.Request.Context())
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Warn().Err(err).Str("dir", h.scenarioDir).Msg("scenario directory unreadable")
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		path := filepath.Join(h.scenarioDir, entry.Name())
		cfg, err := h.cache.Load(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping invalid scenario file")
			continue
		}

		names := make([]string, 0, len(cfg.Scenarios))
		for _, s := range cfg.Scenarios {
			names = append(names, s.Name)
		}
		scenarios = append(scenarios, models.ScenarioInfo{
			ID:        scenarioID(entry.Name()),
			File:      path,
			Scenarios: names,
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

// RunScenario handles POST /api/v1/scenarios/:id/run. An optional body
// overrides fields of every scenario in the file, and ?name= restricts the run
// to one scenario.
func (h *ScenarioHandler) RunScenario(c *gin.Context) {
	id := c.Param("id")
	cfg, err := h.load(id)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    models.CodeNotFound,
					Message: fmt.Sprintf("scenario %q not found", id),
				},
			})
			return
		}
		respondError(c, err)
		return
	}

	var override models.RunScenarioRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&override); err != nil {
			badRequest(c, err)
			return
		}
	}

	name := c.Query("name")
	outcomes := []models.ScenarioOutcome{}
	for _, s := range cfg.Scenarios {
		if name != "" && s.Name != name {
			continue
		}
		s = config.MergeScenario(s, config.ScenarioConfig{
			Balance:   override.Balance,
			Principal: override.Principal,
			Rate:      override.Rate,
			Rates:     override.Rates,
			Years:     override.Years,
			Expense:   override.Expense,
			Tolerance: override.Tolerance,
			YearCap:   override.YearCap,
		})

		o, err := analysis.RunScenario(s)
		if err != nil {
			respondError(c, err)
			return
		}
		outcomes = append(outcomes, toScenarioOutcome(o, s))
	}

	if name != "" && len(outcomes) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeNotFound,
				Message: fmt.Sprintf("scenario %q has no entry named %q", id, name),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "outcomes": outcomes})
}

func (h *ScenarioHandler) load(id string) (*config.Config, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, os.ErrNotExist
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(h.scenarioDir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return h.cache.Load(path)
		}
	}
	return nil, os.ErrNotExist
}

func toScenarioOutcome(o *analysis.Outcome, s config.ScenarioConfig) models.ScenarioOutcome {
	out := models.ScenarioOutcome{Name: o.Name, Kind: string(o.Kind)}
	switch {
	case o.Withdrawal != nil:
		out.Withdrawal = newWithdrawalResponse(s.WithdrawalRequest(), *o.Withdrawal)
		out.Withdrawal.Schedule = models.LedgerRows(o.Ledger.Rows)
	case o.Growth != nil:
		out.Growth = newGrowthResponse(o.Growth.Principal, o.Growth.Final)
		out.Growth.Breakdown = models.LedgerRows(o.Ledger.Rows)
	case o.Duration != nil:
		out.Duration = newDurationResponse(s.DurationRequest(), *o.Duration)
		out.Duration.Trace = models.LedgerRows(o.Ledger.Rows)
	}
	return out
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

func scenarioID(filename string) string {
	return strings.TrimSuffix(strings.TrimSuffix(filename, ".yaml"), ".yml")
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"retirement-calc/internal/model"

	"gopkg.in/yaml.v3"
)

// Kind names which calculator a scenario runs.
type Kind string

const (
	KindWithdrawal Kind = "withdrawal"
	KindFixed      Kind = "fixed"
	KindVariable   Kind = "variable"
	KindDuration   Kind = "duration"
)

// Kinds lists every supported scenario kind.
var Kinds = []Kind{KindWithdrawal, KindFixed, KindVariable, KindDuration}

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	// Optional: load further scenarios from a separate YAML file.
	// Scenarios from the file come first; a scenario declared here with the
	// same name is overlaid onto the file's version.
	ScenariosFile string           `yaml:"scenarios_file"`
	Scenarios     []ScenarioConfig `yaml:"scenarios"`
}

type DefaultsConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	YearCap   int     `yaml:"year_cap"`
}

// ScenarioConfig is one calculation. Only the fields its Kind uses are read.
type ScenarioConfig struct {
	Name      string    `yaml:"name"`
	Kind      Kind      `yaml:"kind"`
	Balance   float64   `yaml:"balance"`
	Principal float64   `yaml:"principal"`
	Rate      float64   `yaml:"rate"`
	Rates     []float64 `yaml:"rates"`
	Years     int       `yaml:"years"`
	Expense   float64   `yaml:"expense"`
	Tolerance float64   `yaml:"tolerance"`
	YearCap   int       `yaml:"year_cap"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it or fill
// defaults. Useful for printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.ScenariosFile != "" {
		scenariosPath := c.ScenariosFile
		if !filepath.IsAbs(scenariosPath) {
			// Prefer a path relative to the config file, then fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), scenariosPath)
			if _, err := os.Stat(cand); err == nil {
				scenariosPath = cand
			}
		}
		loaded, err := loadScenariosFile(scenariosPath)
		if err != nil {
			return nil, err
		}
		c.Scenarios = MergeScenarios(loaded, c.Scenarios)
	}
	return &c, nil
}

// ApplyDefaults fills tolerance and year cap where a scenario leaves them unset.
func (c *Config) ApplyDefaults() {
	if c.Defaults.Tolerance == 0 {
		c.Defaults.Tolerance = model.DefaultTolerance
	}
	if c.Defaults.YearCap == 0 {
		c.Defaults.YearCap = model.DefaultYearCap
	}
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if s.Kind == KindWithdrawal && s.Tolerance == 0 {
			s.Tolerance = c.Defaults.Tolerance
		}
		if s.Kind == KindDuration && s.YearCap == 0 {
			s.YearCap = c.Defaults.YearCap
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Defaults.Tolerance < 0 {
		return errors.New("defaults.tolerance must be >= 0")
	}
	if len(c.Scenarios) == 0 {
		return errors.New("at least one scenario is required")
	}
	seen := map[string]bool{}
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenarios[%d].name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %q invalid: %w", s.Name, err)
		}
	}
	return nil
}

// Validate checks the scenario by building the request its calculator takes.
func (s ScenarioConfig) Validate() error {
	switch s.Kind {
	case KindWithdrawal:
		return s.WithdrawalRequest().Validate()
	case KindFixed:
		return s.FixedGrowthRequest().Validate()
	case KindVariable:
		return s.GrowthRequest().Validate()
	case KindDuration:
		return s.DurationRequest().Validate()
	case "":
		return errors.New("kind is required")
	default:
		return fmt.Errorf("unsupported kind %q", s.Kind)
	}
}

func (s ScenarioConfig) WithdrawalRequest() model.WithdrawalRequest {
	return model.WithdrawalRequest{
		Balance:   s.Balance,
		Rate:      s.Rate,
		Years:     s.Years,
		Tolerance: s.Tolerance,
	}
}

func (s ScenarioConfig) FixedGrowthRequest() model.FixedGrowthRequest {
	return model.FixedGrowthRequest{
		Principal: s.Principal,
		Rate:      s.Rate,
		Years:     s.Years,
	}
}

func (s ScenarioConfig) GrowthRequest() model.GrowthRequest {
	return model.GrowthRequest{
		Principal: s.Principal,
		Rates:     s.Rates,
	}
}

func (s ScenarioConfig) DurationRequest() model.DurationRequest {
	return model.DurationRequest{
		Balance: s.Balance,
		Expense: s.Expense,
		Rate:    s.Rate,
		YearCap: s.YearCap,
	}
}

type scenariosFileWrapper struct {
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

func loadScenariosFile(path string) ([]ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w scenariosFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Scenarios, nil
}

// MergeScenarios appends overrides to base, overlaying any override whose
// name matches a base scenario onto it instead.
func MergeScenarios(base, overrides []ScenarioConfig) []ScenarioConfig {
	out := make([]ScenarioConfig, len(base))
	copy(out, base)

	idx := make(map[string]int, len(out))
	for i, s := range out {
		idx[s.Name] = i
	}
	for _, o := range overrides {
		if i, ok := idx[o.Name]; ok && o.Name != "" {
			out[i] = MergeScenario(out[i], o)
			continue
		}
		out = append(out, o)
	}
	return out
}

// MergeScenario overlays non-zero fields from override onto base.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Kind != "" {
		out.Kind = override.Kind
	}
	if override.Balance != 0 {
		out.Balance = override.Balance
	}
	if override.Principal != 0 {
		out.Principal = override.Principal
	}
	// Note: a zero rate cannot be expressed as an override.
	if override.Rate != 0 {
		out.Rate = override.Rate
	}
	if len(override.Rates) > 0 {
		out.Rates = override.Rates
	}
	if override.Years != 0 {
		out.Years = override.Years
	}
	if override.Expense != 0 {
		out.Expense = override.Expense
	}
	if override.Tolerance != 0 {
		out.Tolerance = override.Tolerance
	}
	if override.YearCap != 0 {
		out.YearCap = override.YearCap
	}
	return out
}

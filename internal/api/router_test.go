package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"retirement-calc/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reference.yaml"), []byte(`
scenarios:
  - name: reference
    kind: duration
    balance: 1000000
    expense: 80000
    rate: 0.05
  - name: grow
    kind: fixed
    principal: 100000
    rate: 0.05
    years: 10
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("scenarios: ["), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	return NewRouter(zerolog.Nop(), Config{ScenarioDir: dir})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListCalculators(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/v1/calculators", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Calculators []models.CalculatorInfo `json:"calculators"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	names := make([]string, 0, len(resp.Calculators))
	for _, c := range resp.Calculators {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"withdrawal", "sensitivity", "fixed", "variable", "duration"}, names)
}

func TestWithdrawal(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/withdrawal", map[string]any{
		"balance": 120000, "rate": 0, "years": 10, "include_schedule": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.WithdrawalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 12000, resp.Annual, 0.01)
	assert.InDelta(t, 1000, resp.Monthly, 0.01)
	assert.Equal(t, 0.01, resp.Tolerance)
	assert.Equal(t, "$12,000.00", resp.Display["annual"])
	assert.Len(t, resp.Schedule, 10)
	assert.Equal(t, 120000.0, resp.Schedule[0].StartBalance)
}

func TestWithdrawal_Errors(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/withdrawal", map[string]any{"balance": 1000, "rate": 0.05})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidRequest, decodeError(t, w).Code)

	w = do(t, r, http.MethodPost, "/api/v1/withdrawal", `{"balance": "lots"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidRequest, decodeError(t, w).Code)

	w = do(t, r, http.MethodPost, "/api/v1/withdrawal", map[string]any{"balance": 0, "rate": 0.05, "years": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	e := decodeError(t, w)
	assert.Equal(t, models.CodeInvalidArgument, e.Code)
	assert.Contains(t, e.Message, "balance must be > 0")

	w = do(t, r, http.MethodPost, "/api/v1/withdrawal", map[string]any{"balance": 1000, "rate": -0.999999, "years": 200})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	e = decodeError(t, w)
	assert.Equal(t, models.CodeCalculation, e.Code)
	assert.Equal(t, "ceiling", e.Details["step"])
}

func TestWithdrawalReport(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/withdrawal/report", map[string]any{
		"balance": 1000000, "rate": 0.05, "years": 30,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "withdrawal-plan-30y.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestSensitivity(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/withdrawal/sensitivity", map[string]any{
		"balance": 100000, "rates": []float64{0, 0.05}, "years": []int{10, 20},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cells, 4)
	assert.Equal(t, 1, resp.Cells[0].Rank)
	assert.Equal(t, 0.05, resp.Cells[0].Rate)
	assert.Equal(t, 10, resp.Cells[0].Years)
	last := resp.Cells[3]
	assert.Equal(t, 0.0, last.Rate)
	assert.Equal(t, 20, last.Years)
	assert.InDelta(t, 5000, last.MaxAnnualWithdrawal, 0.01)

	w = do(t, r, http.MethodPost, "/api/v1/withdrawal/sensitivity", map[string]any{
		"balance": 100000, "rates": []float64{}, "years": []int{10},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidArgument, decodeError(t, w).Code)
}

func TestFixedGrowth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/growth/fixed", map[string]any{
		"principal": 100000, "rate": 0.05, "years": 10, "include_breakdown": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GrowthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 162889.46, resp.Final, 0.01)
	assert.InDelta(t, 62889.46, resp.Gain, 0.01)
	assert.Equal(t, "$162,889.46", resp.Display["final_balance"])
	assert.Len(t, resp.Breakdown, 10)
}

func TestVariableGrowth(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/growth/variable", map[string]any{
		"principal": 1000, "rates": []float64{0.1, -0.05}, "include_breakdown": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.GrowthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 1045, resp.Final, 1e-9)
	require.Len(t, resp.Breakdown, 2)
	assert.Equal(t, 1100.0, resp.Breakdown[0].EndBalance)

	w = do(t, r, http.MethodPost, "/api/v1/growth/variable", map[string]any{"principal": 1000, "rates": []float64{}})
	require.Equal(t, http.StatusOK, w.Code)
	resp = models.GrowthResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1000.0, resp.Final)
	assert.Equal(t, 0.0, resp.Gain)

	w = do(t, r, http.MethodPost, "/api/v1/growth/variable", map[string]any{"principal": 1000, "rates": []float64{0.1, -2}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "period 2")
}

func TestDuration(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/duration", map[string]any{
		"balance": 1000000, "expense": 80000, "rate": 0.05, "include_trace": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.DurationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 21, resp.Years)
	assert.False(t, resp.Infinite)
	assert.InDelta(t, 0.08, resp.WithdrawalRate, 1e-12)
	assert.Equal(t, "21 years", resp.Display["lasts"])
	require.Len(t, resp.Trace, 21)
	assert.True(t, resp.Trace[20].Depleted)

	w = do(t, r, http.MethodPost, "/api/v1/duration", map[string]any{
		"balance": 1000000, "expense": 40000, "rate": 0.05, "year_cap": 50,
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp = models.DurationResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Infinite)
	assert.Empty(t, resp.Trace)

	w = do(t, r, http.MethodPost, "/api/v1/duration", map[string]any{"balance": 1000, "expense": 10, "rate": -0.1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidArgument, decodeError(t, w).Code)
}

func TestLongHorizons(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/growth/fixed", map[string]any{"principal": 1000, "rate": 0, "years": 1 << 40})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.GrowthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1000.0, resp.Final)

	w = do(t, r, http.MethodPost, "/api/v1/growth/fixed", map[string]any{
		"principal": 1000, "rate": 0, "years": 1 << 40, "include_breakdown": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidArgument, decodeError(t, w).Code)

	w = do(t, r, http.MethodPost, "/api/v1/withdrawal", map[string]any{
		"balance": 1000, "rate": 0.05, "years": 1 << 40, "include_schedule": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidRequest, decodeError(t, w).Code)

	w = do(t, r, http.MethodPost, "/api/v1/duration", map[string]any{
		"balance": 1000, "expense": 0, "rate": 0.01, "year_cap": 1 << 40, "include_trace": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidRequest, decodeError(t, w).Code)
}

func TestScenarios(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Scenarios, 1)
	assert.Equal(t, "reference", list.Scenarios[0].ID)
	assert.Equal(t, []string{"reference", "grow"}, list.Scenarios[0].Scenarios)

	w = do(t, r, http.MethodPost, "/api/v1/scenarios/reference/run", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var run struct {
		Outcomes []models.ScenarioOutcome `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	require.Len(t, run.Outcomes, 2)
	require.NotNil(t, run.Outcomes[0].Duration)
	assert.Equal(t, 21, run.Outcomes[0].Duration.Years)
	require.NotNil(t, run.Outcomes[1].Growth)
	assert.InDelta(t, 162889.46, run.Outcomes[1].Growth.Final, 0.01)

	w = do(t, r, http.MethodPost, "/api/v1/scenarios/reference/run?name=reference", map[string]any{"expense": 40000})
	require.Equal(t, http.StatusOK, w.Code)
	run.Outcomes = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	require.Len(t, run.Outcomes, 1)
	assert.True(t, run.Outcomes[0].Duration.Infinite)

	w = do(t, r, http.MethodPost, "/api/v1/scenarios/reference/run?name=nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/scenarios/missing/run", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.CodeNotFound, decodeError(t, w).Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/withdrawal", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(zerolog.Nop(), Config{ScenarioDir: t.TempDir()})
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := do(t, r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	e := decodeError(t, w)
	assert.Equal(t, models.CodeInternal, e.Code)
	assert.Equal(t, "boom", e.Message)
}

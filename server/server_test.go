package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/equity"
)

func init() { gin.SetMode(gin.TestMode) }

func setupRouter() *gin.Engine {
	return NewRouter(NewHandler(equity.DefaultScenario()))
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), "body: %s", rec.Body.String())
	return result
}

// errorFields returns the error code and the invalid fields of an error response.
func errorFields(t *testing.T, result map[string]any) (string, []string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]any)
	require.True(t, ok, "expected error object in response, got: %v", result)
	var fields []string
	if list, ok := errObj["fields"].([]any); ok {
		for _, f := range list {
			fields = append(fields, f.(map[string]any)["field"].(string))
		}
	}
	code, _ := errObj["code"].(string)
	return code, fields
}

func TestHealth(t *testing.T) {
	rec := doRequest(setupRouter(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", parseJSON(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestDefaultScenario(t *testing.T) {
	rec := doRequest(setupRouter(), http.MethodGet, "/v1/scenarios/default", "")

	require.Equal(t, http.StatusOK, rec.Code)
	result := parseJSON(t, rec)
	assert.Equal(t, float64(2024), result["epoch_year"])
	assert.Equal(t, "GBP", result["currency"])
}

func TestProject(t *testing.T) {
	t.Run("returns the default ledger on an empty body", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/projections", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		result := parseJSON(t, rec)
		years := result["ledger"].(map[string]any)["years"].([]any)
		assert.Len(t, years, 12)
		y2026 := years[2].(map[string]any)
		assert.Equal(t, "7.935", y2026["sharePrice"])
		assert.Equal(t, "300", y2026["options"].(map[string]any)["sharesRedeemed"])
		assert.Equal(t, "72895", y2026["combinedTotalValue"])
		assert.Empty(t, result["warnings"])
		assert.Empty(t, result["overRedemptions"])
	})

	t.Run("overrides the defaults with the body", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/projections",
			`{"final_year":2026,"common_shares_total":0,"option_basis":"granted"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		years := parseJSON(t, rec)["ledger"].(map[string]any)["years"].([]any)
		require.Len(t, years, 3)
		y2025 := years[1].(map[string]any)
		assert.Equal(t, "9000", y2025["options"].(map[string]any)["unsoldValue"])
		assert.Equal(t, "0", y2025["common"].(map[string]any)["totalValue"])
	})

	t.Run("reports warnings and over redemptions", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/projections",
			`{"vesting_schedule":{"2025":12000},"option_redemption_rate":1}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		result := parseJSON(t, rec)
		assert.NotEmpty(t, result["warnings"])
		over := result["overRedemptions"].([]any)
		require.NotEmpty(t, over)
		first := over[0].(map[string]any)
		assert.Equal(t, "options", first["track"])
		assert.Equal(t, float64(2026), first["year"])
		assert.Equal(t, "-2000", first["unsoldShares"])
	})

	t.Run("returns 400 with every invalid field", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/projections",
			`{"growth_rate":-1,"common_redemption_rate":2}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		code, fields := errorFields(t, parseJSON(t, rec))
		assert.Equal(t, "INVALID_PARAMETER", code)
		assert.ElementsMatch(t, []string{"growth_rate", "common_redemption_rate"}, fields)
	})

	t.Run("returns 400 on unknown fields", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/projections", `{"strike":6}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		code, _ := errorFields(t, parseJSON(t, rec))
		assert.Equal(t, "INVALID_INPUT", code)
	})
}

func TestSweep(t *testing.T) {
	t.Run("returns one ledger per value", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/sweeps",
			`{"dimension":"option-rate","values":["0%","5%","0.1"]}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		result := parseJSON(t, rec)
		assert.Equal(t, "option-rate", result["dimension"])
		variants := result["variants"].([]any)
		require.Len(t, variants, 3)
		assert.Equal(t, "10% option-rate", variants[2].(map[string]any)["label"])
	})

	t.Run("applies the scenario", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/sweeps",
			`{"scenario":{"final_year":2027},"dimension":"growth","values":["20%"]}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		variants := parseJSON(t, rec)["variants"].([]any)
		years := variants[0].(map[string]any)["ledger"].(map[string]any)["years"].([]any)
		assert.Len(t, years, 4)
	})

	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{"unknown dimension", `{"dimension":"strike","values":["5%"]}`, "dimension"},
		{"no values", `{"dimension":"growth","values":[]}`, "values"},
		{"invalid value", `{"dimension":"growth","values":["fast"]}`, "values"},
		{"rate out of range", `{"dimension":"option-rate","values":["150%"]}`, "option_redemption_rate"},
		{"invalid scenario", `{"scenario":{"base_share_price":0},"dimension":"growth","values":["5%"]}`, "base_share_price"},
	}
	for _, tc := range testCases {
		t.Run("returns 400 on "+tc.name, func(t *testing.T) {
			rec := doRequest(setupRouter(), http.MethodPost, "/v1/sweeps", tc.body)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			code, fields := errorFields(t, parseJSON(t, rec))
			assert.Equal(t, "INVALID_PARAMETER", code)
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestCharts(t *testing.T) {
	t.Run("returns the default charts", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/charts", "{}")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		result := parseJSON(t, rec)
		assert.Equal(t, "GBP", result["currency"])
		charts := result["charts"].([]any)
		require.Len(t, charts, 3)
		first := charts[0].(map[string]any)
		assert.Equal(t, "options_total_value", first["column"])
		assert.Equal(t, "Fixed assumption: growth = 20%", first["caption"])
		series := first["series"].([]any)
		require.Len(t, series, 3)
		// 20% growth without redemption: (7.2 - 6) * 6000 = 7200.
		assert.Equal(t, float64(7), series[0].(map[string]any)["thousands"].([]any)[0])
	})

	t.Run("leaves out common share charts", func(t *testing.T) {
		rec := doRequest(setupRouter(), http.MethodPost, "/v1/charts", `{"common_shares_total":0}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Len(t, parseJSON(t, rec)["charts"], 1)
	})
}

func TestInvalidParameters(t *testing.T) {
	s := equity.DefaultScenario()
	s.BaseSharePrice = 0
	s.OptionRedemptionRate = 3
	_, err := s.Params()
	require.Error(t, err)

	fields := invalidParameters(err)
	assert.Len(t, fields, 2)
	assert.Empty(t, invalidParameters(nil))
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etnz/equity"
)

// Health reports that the server is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DefaultScenario returns the scenario requests are completed with.
func (h *Handler) DefaultScenario(c *gin.Context) {
	c.JSON(http.StatusOK, h.defaults)
}

// scenario returns the defaults overridden by the fields of body.
func (h *Handler) scenario(body []byte) (equity.Scenario, error) {
	s := h.defaults
	// a vesting schedule in the body replaces the default one.
	s.Vesting = nil
	if len(body) == 0 {
		s.Vesting = h.defaults.Vesting
		return s, nil
	}
	if err := decodeJSON(body, &s); err != nil {
		return s, err
	}
	return s, nil
}

// projectionResponse is the body returned by Project.
type projectionResponse struct {
	Currency        string                           `json:"currency"`
	Ledger          *equity.Ledger                   `json:"ledger"`
	Warnings        []string                         `json:"warnings"`
	OverRedemptions []equity.OverRedemptionCondition `json:"overRedemptions"`
}

// Project handles POST /v1/projections: the body is a scenario, the response
// its ledger with the warnings of its parameters.
func (h *Handler) Project(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondWithInvalidInput(c, err)
		return
	}
	s, err := h.scenario(body)
	if err != nil {
		respondWithInvalidInput(c, err)
		return
	}
	p, err := s.Params()
	if err != nil {
		respondWithError(c, err)
		return
	}

	l := equity.Project(p)
	resp := projectionResponse{
		Currency:        s.CurrencyCode(),
		Ledger:          l,
		Warnings:        []string{},
		OverRedemptions: l.OverRedemptions(),
	}
	for _, w := range p.Warnings() {
		resp.Warnings = append(resp.Warnings, w.Error())
	}
	if resp.OverRedemptions == nil {
		resp.OverRedemptions = []equity.OverRedemptionCondition{}
	}
	c.JSON(http.StatusOK, resp)
}

// sweepRequest is the body of POST /v1/sweeps.
type sweepRequest struct {
	Scenario  json.RawMessage `json:"scenario"`
	Dimension string          `json:"dimension"`
	Values    []string        `json:"values"`
}

type variantResponse struct {
	Value  equity.Rate    `json:"value"`
	Label  string         `json:"label"`
	Ledger *equity.Ledger `json:"ledger"`
}

// Sweep handles POST /v1/sweeps: one ledger per value of the dimension.
func (h *Handler) Sweep(c *gin.Context) {
	var req sweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithInvalidInput(c, err)
		return
	}
	d, err := equity.ParseDimension(req.Dimension)
	if err != nil {
		respondWithError(c, &equity.InvalidParameterError{Field: "dimension", Value: req.Dimension, Reason: "must be option-rate, common-rate or growth"})
		return
	}
	if len(req.Values) == 0 {
		respondWithError(c, &equity.InvalidParameterError{Field: "values", Reason: "must not be empty"})
		return
	}
	values := make([]equity.Rate, len(req.Values))
	for i, v := range req.Values {
		if values[i], err = equity.ParseRate(v); err != nil {
			respondWithError(c, &equity.InvalidParameterError{Field: "values", Value: v, Reason: "must be a rate like 0.05 or 5%"})
			return
		}
	}

	p, ok := h.params(c, req.Scenario)
	if !ok {
		return
	}
	variants, err := equity.Sweep(c.Request.Context(), nil, p, d, values)
	if err != nil {
		respondWithError(c, err)
		return
	}
	resp := make([]variantResponse, len(variants))
	for i, v := range variants {
		resp[i] = variantResponse{Value: v.Value, Label: v.Label(), Ledger: v.Ledger}
	}
	c.JSON(http.StatusOK, gin.H{"dimension": d.String(), "variants": resp})
}

type seriesResponse struct {
	Label     string      `json:"label"`
	Value     equity.Rate `json:"value"`
	Thousands []int64     `json:"thousands"`
}

type chartResponse struct {
	Title   string           `json:"title"`
	Caption string           `json:"caption,omitempty"`
	Column  string           `json:"column"`
	Years   []int            `json:"years"`
	Series  []seriesResponse `json:"series"`
}

// Charts handles POST /v1/charts: the default sensitivity charts of the
// scenario, in thousands.
func (h *Handler) Charts(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondWithInvalidInput(c, err)
		return
	}
	s, err := h.scenario(body)
	if err != nil {
		respondWithInvalidInput(c, err)
		return
	}
	p, err := s.Params()
	if err != nil {
		respondWithError(c, err)
		return
	}
	charts, err := equity.BuildCharts(c.Request.Context(), equity.NewCache(), p, equity.DefaultCharts(p))
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]chartResponse, len(charts))
	for i, chart := range charts {
		resp[i] = chartResponse{
			Title:   chart.Spec.Title,
			Caption: chart.Spec.Caption(),
			Column:  chart.Spec.Column.String(),
			Years:   chart.Years,
		}
		for _, s := range chart.Series {
			resp[i].Series = append(resp[i].Series, seriesResponse{Label: s.Label, Value: s.Value, Thousands: s.Thousands()})
		}
	}
	c.JSON(http.StatusOK, gin.H{"currency": s.CurrencyCode(), "charts": resp})
}

// params converts a raw scenario object, writing the error response on failure.
func (h *Handler) params(c *gin.Context, body json.RawMessage) (equity.Params, bool) {
	s, err := h.scenario(body)
	if err != nil {
		respondWithInvalidInput(c, err)
		return equity.Params{}, false
	}
	p, err := s.Params()
	if err != nil {
		respondWithError(c, err)
		return equity.Params{}, false
	}
	return p, true
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"DealProjector/internal/model"
	"DealProjector/internal/recorder"
	"DealProjector/internal/service"
)

type memRecorder struct {
	mu      sync.Mutex
	runs    []*recorder.ProjectionRun
	listErr error
}

func (m *memRecorder) RecordProjection(_ context.Context, run *recorder.ProjectionRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

func (m *memRecorder) RecentRuns(_ context.Context, limit int) ([]recorder.RunInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []recorder.RunInfo
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		r := m.runs[i]
		out = append(out, recorder.RunInfo{ID: r.ID, Scenario: r.Scenario, Source: r.Source})
	}
	return out, nil
}

func (m *memRecorder) Close() error { return nil }

func newTestServer(rec recorder.Recorder, limiter *rate.Limiter) http.Handler {
	return NewRouter(service.NewProjector(service.NewMemoryCache(time.Minute)), rec, limiter)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

const holdBody = `{
	"name": "elm street",
	"inputs": {
		"investmentType": "buyAndHold",
		"dealDetails": {"purchasePrice": "100000", "rehabCost": "0"},
		"rentalDetails": {"monthlyRent": "1200"}
	}
}`

type projectResponse struct {
	Summary    model.Summary        `json:"summary"`
	Projection *model.Projection    `json:"projection"`
	Rehab      *model.RehabEstimate `json:"rehab"`
	Cached     bool                 `json:"cached"`
}

func TestHandleProject(t *testing.T) {
	rec := &memRecorder{}
	h := newTestServer(rec, nil)

	rr := do(t, h, http.MethodPost, "/api/projections", holdBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var resp projectResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Summary.InvestmentType != model.BuyAndHold || resp.Cached {
		t.Errorf("summary = %+v, cached = %v", resp.Summary, resp.Cached)
	}
	if resp.Projection == nil || resp.Projection.Month(1, 1).Rent != 1200 {
		t.Fatalf("projection month 1 missing or wrong: %+v", resp.Projection)
	}
	if resp.Rehab != nil {
		t.Errorf("unexpected rehab estimate: %+v", resp.Rehab)
	}

	rr = do(t, h, http.MethodPost, "/api/projections", holdBody)
	resp = projectResponse{}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Cached {
		t.Error("second identical request should be served from cache")
	}

	if len(rec.runs) != 2 || rec.runs[0].Scenario != "elm street" || rec.runs[0].Source != recorder.SourceAPI {
		t.Errorf("recorded runs = %+v", rec.runs)
	}
}

func TestHandleProject_WithRehab(t *testing.T) {
	body := `{
		"inputs": {
			"investmentType": "flip",
			"propertyDetails": {"squareFootage": "1000"},
			"dealDetails": {"purchasePrice": "150000", "afterRepairValue": "250000"}
		},
		"rehab": {"strategy": "flipAirbnb", "checked": ["lvpFlooring"]}
	}`
	rec := &memRecorder{}
	rr := do(t, newTestServer(rec, nil), http.MethodPost, "/api/projections", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var resp projectResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Rehab == nil || resp.Rehab.Total != 7000 {
		t.Fatalf("rehab = %+v, want total 7000", resp.Rehab)
	}
	if resp.Summary.InvestmentType != model.Flip || resp.Summary.SaleMonth == 0 {
		t.Errorf("summary = %+v", resp.Summary)
	}
	if len(rec.runs) != 1 || rec.runs[0].Scenario != "api" {
		t.Errorf("recorded runs = %+v", rec.runs)
	}
}

func TestHandleProject_HugeRent(t *testing.T) {
	body := `{"inputs": {"dealDetails": {"purchasePrice": "100000"}, "rentalDetails": {"monthlyRent": "1e308"}}}`
	rr := do(t, newTestServer(&memRecorder{}, nil), http.MethodPost, "/api/projections", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var resp projectResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Projection == nil || resp.Projection.Month(1, 1).Rent != 1e308 {
		t.Errorf("month 1 rent missing from response")
	}
}

func TestSendJSON_EncodeFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	sendJSON(rr, map[string]float64{"x": math.Inf(1)}, http.StatusOK)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	var e map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &e); err != nil || e["error"] == "" {
		t.Errorf("expected JSON error body, got %s", rr.Body)
	}
}

func TestHandleProject_BadRequests(t *testing.T) {
	h := newTestServer(&memRecorder{}, nil)
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"inputs":`},
		{"unknown rehab item", `{"inputs": {}, "rehab": {"checked": ["helipad"]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/api/projections", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			var e map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &e); err != nil || e["error"] == "" {
				t.Errorf("expected JSON error body, got %s", rr.Body)
			}
		})
	}
}

func TestHandleDefaults(t *testing.T) {
	rr := do(t, newTestServer(&memRecorder{}, nil), http.MethodGet, "/api/projections/defaults", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var raw model.RawInputs
	if err := json.Unmarshal(rr.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw.InvestmentType != "buyAndHold" || raw.LongTerm.LoanTerm != "30" {
		t.Errorf("defaults = %+v", raw)
	}
}

func TestHandleRehabCatalog(t *testing.T) {
	rr := do(t, newTestServer(&memRecorder{}, nil), http.MethodGet,
		"/api/rehab/catalog?strategy=flipAirbnb&squareFootage=1200&bedrooms=3&bathrooms=2", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var items []model.RehabItem
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, it := range items {
		if it.ID == "lvpFlooring" {
			found = true
			if it.Quantity != 1200 || it.Price != 7 {
				t.Errorf("lvpFlooring = %+v", it)
			}
		}
	}
	if !found {
		t.Error("lvpFlooring missing from catalog")
	}
}

func TestHandleRehabEstimate(t *testing.T) {
	h := newTestServer(&memRecorder{}, nil)
	body := `{
		"selection": {"strategy": "rental", "checked": ["newKitchen"], "custom": [{"description": "Permit", "quantity": 1, "price": 750}]},
		"propertyDetails": {"squareFootage": "1500", "bedrooms": "3", "bathrooms": "2"}
	}`
	rr := do(t, h, http.MethodPost, "/api/rehab/estimate", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var est model.RehabEstimate
	if err := json.Unmarshal(rr.Body.Bytes(), &est); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if est.Total != 7750 {
		t.Errorf("total = %v, want 7750", est.Total)
	}

	rr = do(t, h, http.MethodPost, "/api/rehab/estimate", `{"selection": {"checked": ["moat"]}}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown item status = %d, want 400", rr.Code)
	}
}

func TestHandleRecentRuns(t *testing.T) {
	rec := &memRecorder{}
	h := newTestServer(rec, nil)
	do(t, h, http.MethodPost, "/api/projections", holdBody)

	rr := do(t, h, http.MethodGet, "/api/runs?limit=5", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var runs []recorder.RunInfo
	if err := json.Unmarshal(rr.Body.Bytes(), &runs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(runs) != 1 || runs[0].Scenario != "elm street" {
		t.Errorf("runs = %+v", runs)
	}

	if rr := do(t, h, http.MethodGet, "/api/runs?limit=zero", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", rr.Code)
	}

	empty := do(t, newTestServer(&memRecorder{}, nil), http.MethodGet, "/api/runs", "")
	if strings.TrimSpace(empty.Body.String()) != "[]" {
		t.Errorf("empty runs body = %s, want []", empty.Body)
	}

	failing := do(t, newTestServer(&memRecorder{listErr: errors.New("locked")}, nil), http.MethodGet, "/api/runs", "")
	if failing.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", failing.Code)
	}
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(&memRecorder{}, rate.NewLimiter(rate.Every(time.Hour), 2))
	for i := 0; i < 2; i++ {
		if rr := do(t, h, http.MethodGet, "/healthz", ""); rr.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i+1, rr.Code)
		}
	}
	if rr := do(t, h, http.MethodGet, "/healthz", ""); rr.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rr.Code)
	}
}

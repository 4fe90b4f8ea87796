package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"DealProjector/internal/inputs"
	"DealProjector/internal/model"
	"DealProjector/internal/recorder"
	"DealProjector/internal/rehab"
	"DealProjector/internal/service"
)

const (
	maxBodyBytes     = 1 << 20
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// Handler holds the dependencies of the HTTP endpoints.
type Handler struct {
	projector *service.Projector
	recorder  recorder.Recorder
}

// EstimateRequest is the body of POST /api/rehab/estimate.
type EstimateRequest struct {
	Selection model.RehabSelection `json:"selection"`
	Property  model.RawProperty    `json:"propertyDetails"`
}

// HandleProject runs one projection. The body is a scenario: a name, the
// raw form inputs and an optional rehab selection.
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	var sc model.Scenario
	if !decodeBody(w, r, &sc) {
		return
	}
	if sc.Name == "" {
		sc.Name = "api"
	}

	res, err := h.projector.ProjectScenario(r.Context(), sc)
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	run := recorder.NewRun(sc.Name, recorder.SourceAPI, res.Params, res.Summary, res.Projection)
	if err := h.recorder.RecordProjection(r.Context(), run); err != nil {
		log.Printf("[ERROR] record %s: %v", sc.Name, err)
	}

	sendJSON(w, res, http.StatusOK)
}

// HandleDefaults returns the form defaults new calculations start from.
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, inputs.Defaults(), http.StatusOK)
}

// HandleRehabCatalog lists the rehab catalog priced for ?strategy= with
// quantities from ?squareFootage=, ?bedrooms= and ?bathrooms=.
func (h *Handler) HandleRehabCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	property := model.PropertyDetails{
		SquareFootage: inputs.ParseOrZero(q.Get("squareFootage")),
		Bedrooms:      inputs.ParseOrZero(q.Get("bedrooms")),
		Bathrooms:     inputs.ParseOrZero(q.Get("bathrooms")),
	}
	sendJSON(w, rehab.Catalog(rehab.ParseStrategy(q.Get("strategy")), property), http.StatusOK)
}

// HandleRehabEstimate prices a rehab selection.
func (h *Handler) HandleRehabEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	property := inputs.Normalize(model.RawInputs{Property: req.Property}).Property
	est, err := rehab.Estimate(req.Selection, property)
	if err != nil {
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	sendJSON(w, est, http.StatusOK)
}

// HandleRecentRuns lists recorded runs, newest first.
func (h *Handler) HandleRecentRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunsLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			sendJSONError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := h.recorder.RecentRuns(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] list runs: %v", err)
		sendJSONError(w, "could not list runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []recorder.RunInfo{}
	}
	sendJSON(w, runs, http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendJSONError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		sendJSONError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// sendJSON encodes v before writing the status so an encoding failure is
// reported as a 500 rather than a truncated 200.
func sendJSON(w http.ResponseWriter, v any, statusCode int) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"could not encode response"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(buf.Bytes())
}

func sendJSONError(w http.ResponseWriter, message string, statusCode int) {
	log.Printf("[WARN] request failed (%d): %s", statusCode, message)
	sendJSON(w, map[string]string{"error": message}, statusCode)
}

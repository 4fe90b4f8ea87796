// Package service runs projections for callers: it fills form defaults,
// normalizes, projects, summarizes and caches the result.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"DealProjector/internal/inputs"
	"DealProjector/internal/metrics"
	"DealProjector/internal/model"
	"DealProjector/internal/rehab"
	"DealProjector/internal/strategy"
)

// Result is one finished calculation.
type Result struct {
	Params     model.InvestmentParameters `json:"-"`
	Summary    model.Summary              `json:"summary"`
	Projection *model.Projection          `json:"projection"`
	Rehab      *model.RehabEstimate       `json:"rehab,omitempty"`
	Cached     bool                       `json:"cached"`
}

// Projector is safe for concurrent use.
type Projector struct {
	cache Cache
}

// NewProjector creates a Projector. A nil cache disables caching.
func NewProjector(cache Cache) *Projector {
	return &Projector{cache: cache}
}

// Prepare fills blank form fields the way the calculator form does and
// returns the engine parameters.
func Prepare(raw model.RawInputs) model.InvestmentParameters {
	return inputs.Normalize(inputs.ApplyDerived(inputs.WithDefaults(raw)))
}

// Project runs one calculation. Malformed inputs never fail; only a cancelled
// context does.
func (p *Projector) Project(ctx context.Context, raw model.RawInputs) (*Result, error) {
	return p.project(ctx, Prepare(raw))
}

// ProjectScenario runs a saved scenario. When the scenario carries a rehab
// selection and no rehab cost, the estimate total becomes the rehab cost.
func (p *Projector) ProjectScenario(ctx context.Context, sc model.Scenario) (*Result, error) {
	raw := sc.Inputs
	var est *model.RehabEstimate
	if sc.Rehab != nil {
		var err error
		est, err = rehab.Estimate(*sc.Rehab, inputs.Normalize(raw).Property)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		if raw.Deal.RehabCost == "" {
			raw.Deal.RehabCost = fmt.Sprintf("%.2f", est.Total)
		}
	}

	res, err := p.Project(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	res.Rehab = est
	return res, nil
}

func (p *Projector) project(ctx context.Context, params model.InvestmentParameters) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := CacheKey(params)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if res, ok := p.lookup(ctx, key); ok {
			res.Params = params
			return res, nil
		}
	}

	proj := strategy.Project(params)
	res := &Result{
		Params:     params,
		Summary:    metrics.Summarize(proj, params),
		Projection: proj,
	}

	if p.cache != nil {
		p.store(ctx, key, res)
	}
	return res, nil
}

func (p *Projector) lookup(ctx context.Context, key string) (*Result, bool) {
	data, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[WARN] %s cache get: %v", p.cache.Name(), err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil || res.Projection == nil {
		log.Printf("[WARN] %s cache entry %s unreadable: %v", p.cache.Name(), key, err)
		return nil, false
	}
	res.Projection.Type = res.Summary.InvestmentType
	res.Cached = true
	return &res, true
}

func (p *Projector) store(ctx context.Context, key string, res *Result) {
	data, err := json.Marshal(res)
	if err != nil {
		log.Printf("[ERROR] encode projection for cache: %v", err)
		return
	}
	if err := p.cache.Set(ctx, key, data); err != nil {
		log.Printf("[WARN] %s cache set: %v", p.cache.Name(), err)
	}
}

// CacheKey identifies a parameter snapshot. Equal parameters always map to
// the same key.
func CacheKey(params model.InvestmentParameters) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode params: %w", err)
	}
	sum := sha256.Sum256(data)
	return "projection:" + hex.EncodeToString(sum[:]), nil
}

// Package analyzer is the content quality analysis engine. It scores a
// block of text against a target keyword set and produces an overall score,
// per-dimension sub-scores and prioritized recommendations.
//
// The engine is stateless and side-effect-free per call: identical requests
// yield deeply equal reports, and concurrent requests need no
// synchronization.
package analyzer

import (
	"context"
	"strings"
	"sync"
)

// Engine runs the analysis pipeline with a fixed configuration.
type Engine struct {
	cfg Config
}

// New creates an Engine. The config weights must sum to 1.0.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Analyze runs the full pipeline on the request.
func (e *Engine) Analyze(req AnalysisRequest) (*AnalysisReport, error) {
	return e.AnalyzeWithContext(context.Background(), req)
}

// AnalyzeWithContext runs the full pipeline, honoring ctx between stages so
// a caller-level timeout can abort before aggregation.
func (e *Engine) AnalyzeWithContext(ctx context.Context, req AnalysisRequest) (*AnalysisReport, error) {
	return e.analyze(ctx, req, e.cfg.Weights)
}

// AnalyzeWithWeights is the weight-override variant: it behaves like
// AnalyzeWithContext but aggregates with the supplied weights, which must
// sum to 1.0 within epsilon.
func (e *Engine) AnalyzeWithWeights(ctx context.Context, req AnalysisRequest, w Weights) (*AnalysisReport, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return e.analyze(ctx, req, w)
}

func (e *Engine) analyze(ctx context.Context, req AnalysisRequest, w Weights) (*AnalysisReport, error) {
	stream, err := Tokenize(req.Content)
	if err != nil {
		return nil, err
	}
	keywords := dedupeKeywords(req.Keywords)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The three analyzers have no data dependency on one another: fan out,
	// then wait for all before aggregating. If any dimension fails the whole
	// call fails; the weight invariant leaves no room for a partial report.
	var (
		wg             sync.WaitGroup
		readability    SubScore
		readabilityErr error
		keywordScore   SubScore
		structureScore SubScore
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		readability, readabilityErr = e.readability(stream)
	}()
	go func() {
		defer wg.Done()
		keywordScore = e.keywordMetrics(stream, keywords)
	}()
	go func() {
		defer wg.Done()
		structureScore = e.structure(stream, req.ContentType)
	}()
	wg.Wait()

	if readabilityErr != nil {
		return nil, readabilityErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	subScores := []SubScore{readability, keywordScore, structureScore}
	applyWeights(subScores, w)

	overall, err := Aggregate(subScores)
	if err != nil {
		return nil, err
	}

	return &AnalysisReport{
		OverallScore:    overall,
		SubScores:       subScores,
		Recommendations: e.recommend(subScores),
	}, nil
}

// dedupeKeywords removes case-insensitive duplicates while preserving the
// caller's order.
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, kw)
	}
	return out
}

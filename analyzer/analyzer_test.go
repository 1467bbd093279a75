package analyzer

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"
)

func TestAnalyzeEmptyContent(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Analyze(AnalysisRequest{Content: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	_, err = e.Analyze(AnalysisRequest{Content: "   \n\t "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for whitespace content, got %v", err)
	}
}

func TestAnalyzeNoWords(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Analyze(AnalysisRequest{Content: "!!! ... ???"})
	if !errors.Is(err, ErrInsufficientText) {
		t.Errorf("Expected ErrInsufficientText, got %v", err)
	}
}

func TestAnalyzeReportInvariants(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.Analyze(AnalysisRequest{
		Content:     "Buy now. Limited time offer. Act fast to save big.",
		Keywords:    []string{"buy now"},
		ContentType: ContentAdCopy,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.OverallScore < 0 || report.OverallScore > 100 {
		t.Errorf("OverallScore %.2f outside [0,100]", report.OverallScore)
	}

	var weightSum float64
	for _, s := range report.SubScores {
		weightSum += s.Weight
		if s.Value < 0 || s.Value > 100 {
			t.Errorf("SubScore %s value %.2f outside [0,100]", s.Name, s.Value)
		}
	}
	if math.Abs(weightSum-1.0) > 1e-6 {
		t.Errorf("SubScore weights sum to %.6f, want 1.0", weightSum)
	}

	wantOrder := []string{DimReadability, DimKeywords, DimStructure}
	for i, s := range report.SubScores {
		if s.Name != wantOrder[i] {
			t.Errorf("SubScore %d = %q, want %q", i, s.Name, wantOrder[i])
		}
	}
}

func TestAnalyzeShortPromo(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.Analyze(AnalysisRequest{
		Content:  "Buy now. Limited time offer. Act fast to save big.",
		Keywords: []string{"buy now"},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	var readability, keywords SubScore
	for _, s := range report.SubScores {
		switch s.Name {
		case DimReadability:
			readability = s
		case DimKeywords:
			keywords = s
		}
	}

	// Three short, simple sentences read very easily.
	if readability.Value <= 70 {
		t.Errorf("Readability = %.2f, want > 70", readability.Value)
	}

	// The keyword opens the text, so placement is detected.
	per := keywords.Details["keywords"].(map[string]keywordMetric)
	if !per["buy now"].InIntro {
		t.Error("Expected 'buy now' detected in the first 100 characters")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	e := newTestEngine(t)

	req := AnalysisRequest{
		Content:     "# Launch Guide\n\nPrepare your launch carefully. Sign up today for tips.\n\nKeep every step small.",
		Keywords:    []string{"launch", "tips"},
		ContentType: ContentBlogPost,
	}

	first, err := e.Analyze(req)
	if err != nil {
		t.Fatalf("First analyze failed: %v", err)
	}
	second, err := e.Analyze(req)
	if err != nil {
		t.Fatalf("Second analyze failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Identical requests produced different reports")
	}
}

func TestAnalyzeEmptyKeywordList(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.Analyze(AnalysisRequest{
		Content: "# Simple Guide\n\nThis is a short guide. It helps you win. Sign up today to begin.",
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	var keywords SubScore
	for _, s := range report.SubScores {
		if s.Name == DimKeywords {
			keywords = s
		}
	}
	if keywords.Value != 50 {
		t.Errorf("Keyword sub-score = %.2f, want exactly 50", keywords.Value)
	}

	if len(report.Recommendations) != 1 {
		t.Fatalf("Expected exactly one recommendation, got %v", report.Recommendations)
	}
	rec := report.Recommendations[0]
	if rec.Priority != PriorityLow || rec.RelatedSubScore != DimKeywords {
		t.Errorf("Recommendation = %+v, want low-priority keyword suggestion", rec)
	}
}

func TestAnalyzeKeywordDeduplication(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.Analyze(AnalysisRequest{
		Content:  "Great coffee starts here. Fresh coffee daily. Visit us to learn more.",
		Keywords: []string{"coffee", "COFFEE", " coffee ", "fresh"},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	for _, s := range report.SubScores {
		if s.Name == DimKeywords {
			if got := s.Details["keywordCount"].(int); got != 2 {
				t.Errorf("keywordCount = %d, want 2 after case-insensitive dedup", got)
			}
		}
	}
}

func TestAnalyzeWeightOverride(t *testing.T) {
	e := newTestEngine(t)

	req := AnalysisRequest{
		Content:  "Plain readable text. Nothing fancy here. Short and clear.",
		Keywords: []string{"missing keyword"},
	}

	report, err := e.AnalyzeWithWeights(context.Background(), req, Weights{Readability: 1, Keywords: 0, Structure: 0})
	if err != nil {
		t.Fatalf("AnalyzeWithWeights failed: %v", err)
	}
	if report.OverallScore != report.SubScores[0].Value {
		t.Errorf("With readability weight 1.0, overall %.2f should equal readability %.2f",
			report.OverallScore, report.SubScores[0].Value)
	}

	_, err = e.AnalyzeWithWeights(context.Background(), req, Weights{Readability: 0.5, Keywords: 0.3, Structure: 0.1})
	if !errors.Is(err, ErrInvalidWeightConfig) {
		t.Errorf("Expected ErrInvalidWeightConfig, got %v", err)
	}
}

func TestAnalyzeHonorsCancellation(t *testing.T) {
	e := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.AnalyzeWithContext(ctx, AnalysisRequest{Content: "Some valid content here."})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestAnalyzeConcurrentRequests(t *testing.T) {
	e := newTestEngine(t)

	req := AnalysisRequest{
		Content:  "Concurrent analysis is safe. The engine keeps no state. Every call stands alone.",
		Keywords: []string{"engine"},
	}
	baseline, err := e.Analyze(req)
	if err != nil {
		t.Fatalf("Baseline analyze failed: %v", err)
	}

	const concurrency = 50
	var wg sync.WaitGroup
	errCh := make(chan error, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := e.Analyze(req)
			if err != nil {
				errCh <- err
				return
			}
			if !reflect.DeepEqual(report, baseline) {
				errCh <- errors.New("concurrent report differs from baseline")
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Error(err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Readability: 0.9, Keywords: 0.9, Structure: 0.9}
	if _, err := New(cfg); !errors.Is(err, ErrInvalidWeightConfig) {
		t.Errorf("Expected ErrInvalidWeightConfig, got %v", err)
	}
}

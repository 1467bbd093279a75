package analyzer

import (
	"errors"
	"math"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return e
}

func TestReadabilityFleschComputation(t *testing.T) {
	e := newTestEngine(t)

	// 12 monosyllabic words over 2 sentences: the raw Flesch figure is
	// 206.835 - 1.015*6 - 84.6*1 = 116.145, clamped to 100.
	ts, err := Tokenize("The cat sat on the mat. The dog ran to the park.")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	sub, err := e.readability(ts)
	if err != nil {
		t.Fatalf("readability failed: %v", err)
	}

	if sub.Name != DimReadability {
		t.Errorf("Name = %q, want %q", sub.Name, DimReadability)
	}
	if sub.Value != 100 {
		t.Errorf("Value = %.3f, want clamped 100", sub.Value)
	}

	raw := sub.Details["fleschReadingEase"].(float64)
	if math.Abs(raw-116.145) > 0.001 {
		t.Errorf("Raw Flesch = %.3f, want 116.145", raw)
	}
	if got := sub.Details["wordCount"].(int); got != 12 {
		t.Errorf("wordCount = %d, want 12", got)
	}
	if got := sub.Details["sentenceCount"].(int); got != 2 {
		t.Errorf("sentenceCount = %d, want 2", got)
	}
	if got := sub.Details["avgWordsPerSentence"].(float64); got != 6 {
		t.Errorf("avgWordsPerSentence = %.2f, want 6", got)
	}
}

func TestReadabilityValueIsClamped(t *testing.T) {
	e := newTestEngine(t)

	// Dense multisyllabic words drive the raw figure below zero.
	ts, err := Tokenize("Incomprehensibility characterization institutionalization individualization internationalization," +
		" counterrevolutionaries compartmentalization professionalization deinstitutionalization disproportionately.")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	sub, err := e.readability(ts)
	if err != nil {
		t.Fatalf("readability failed: %v", err)
	}

	if sub.Value < 0 || sub.Value > 100 {
		t.Errorf("Value %.3f outside [0,100]", sub.Value)
	}
	if raw := sub.Details["fleschReadingEase"].(float64); raw >= 0 {
		t.Errorf("Expected raw Flesch below zero for this input, got %.3f", raw)
	}
}

func TestReadabilityInsufficientText(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.readability(&TokenStream{})
	if !errors.Is(err, ErrInsufficientText) {
		t.Errorf("Expected ErrInsufficientText for empty stream, got %v", err)
	}
}

func TestReadabilityCompanionIndices(t *testing.T) {
	e := newTestEngine(t)

	ts, err := Tokenize("Understanding complicated vocabulary requires considerable concentration. Simple words help everyone.")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	sub, err := e.readability(ts)
	if err != nil {
		t.Fatalf("readability failed: %v", err)
	}

	for _, key := range []string{"fleschKincaidGrade", "gunningFog", "complexWordPercent", "avgSyllablesPerWord"} {
		if _, ok := sub.Details[key]; !ok {
			t.Errorf("Missing detail %q", key)
		}
	}
	if pct := sub.Details["complexWordPercent"].(float64); pct <= 0 {
		t.Errorf("Expected complex words in sample, got %.2f%%", pct)
	}
}

package analyzer

import (
	"errors"
	"math"
	"testing"
)

func TestAggregateWeightedSum(t *testing.T) {
	subs := []SubScore{
		{Name: DimReadability, Value: 100, Weight: 0.3},
		{Name: DimKeywords, Value: 50, Weight: 0.4},
		{Name: DimStructure, Value: 50, Weight: 0.3},
	}

	got, err := Aggregate(subs)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if math.Abs(got-65) > 1e-9 {
		t.Errorf("Aggregate = %.6f, want 65", got)
	}
}

func TestAggregateRejectsBadWeightSum(t *testing.T) {
	cases := []struct {
		name    string
		weights [3]float64
		wantErr bool
	}{
		{"exact", [3]float64{0.3, 0.4, 0.3}, false},
		{"within epsilon", [3]float64{0.3, 0.4, 0.3000005}, false},
		{"under", [3]float64{0.3, 0.3, 0.3}, true},
		{"over", [3]float64{0.5, 0.4, 0.3}, true},
		{"zero", [3]float64{0, 0, 0}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			subs := []SubScore{
				{Name: DimReadability, Value: 80, Weight: c.weights[0]},
				{Name: DimKeywords, Value: 80, Weight: c.weights[1]},
				{Name: DimStructure, Value: 80, Weight: c.weights[2]},
			}
			_, err := Aggregate(subs)
			if c.wantErr && !errors.Is(err, ErrInvalidWeightConfig) {
				t.Errorf("Expected ErrInvalidWeightConfig, got %v", err)
			}
			if !c.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("Default weights must validate: %v", err)
	}
	bad := Weights{Readability: 0.5, Keywords: 0.3, Structure: 0.1}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidWeightConfig) {
		t.Errorf("Expected ErrInvalidWeightConfig, got %v", err)
	}
}

func TestApplyWeights(t *testing.T) {
	subs := []SubScore{
		{Name: DimReadability},
		{Name: DimKeywords},
		{Name: DimStructure},
	}
	applyWeights(subs, Weights{Readability: 0.2, Keywords: 0.5, Structure: 0.3})

	if subs[0].Weight != 0.2 || subs[1].Weight != 0.5 || subs[2].Weight != 0.3 {
		t.Errorf("Weights not applied: %+v", subs)
	}
}

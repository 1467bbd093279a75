package analyzer

import (
	"fmt"
	"math"
)

// Aggregate combines sub-scores into the overall score as a weighted sum.
// The weights carried on the sub-scores must sum to 1.0 within epsilon;
// otherwise the call fails with ErrInvalidWeightConfig. Deterministic:
// identical inputs always yield the identical score.
func Aggregate(subScores []SubScore) (float64, error) {
	var weightSum, total float64
	for _, s := range subScores {
		weightSum += s.Weight
		total += s.Value * s.Weight
	}
	if math.Abs(weightSum-1.0) > weightEpsilon {
		return 0, fmt.Errorf("%w: got %.6f", ErrInvalidWeightConfig, weightSum)
	}
	return clampScore(total), nil
}

// applyWeights stamps the per-dimension weights onto the sub-scores.
func applyWeights(subScores []SubScore, w Weights) {
	for i := range subScores {
		switch subScores[i].Name {
		case DimReadability:
			subScores[i].Weight = w.Readability
		case DimKeywords:
			subScores[i].Weight = w.Keywords
		case DimStructure:
			subScores[i].Weight = w.Structure
		}
	}
}

package analyzer

import (
	"fmt"
	"math"
)

// Flesch Reading Ease coefficients.
const (
	fleschBase          = 206.835
	fleschSentenceCoeff = 1.015
	fleschSyllableCoeff = 84.6
)

// readability computes standardized readability indices from the token
// stream. The sub-score value is the Flesch Reading Ease figure clamped to
// [0,100]; the raw figure and the companion indices (Flesch-Kincaid grade,
// Gunning Fog, complex-word share) are carried in the details for display.
func (e *Engine) readability(ts *TokenStream) (SubScore, error) {
	words := ts.WordCount()
	sentences := ts.SentenceCount()
	if sentences == 0 {
		return SubScore{}, ErrInsufficientText
	}
	if words == 0 {
		return SubScore{}, fmt.Errorf("%w: no words found", ErrInsufficientText)
	}

	syllables := ts.SyllableTotal()
	complexWords := 0
	for _, w := range ts.Words {
		if ts.Syllables[w] >= 3 {
			complexWords++
		}
	}

	avgWordsPerSentence := float64(words) / float64(sentences)
	avgSyllablesPerWord := float64(syllables) / float64(words)
	complexPct := float64(complexWords) / float64(words) * 100

	flesch := fleschBase - fleschSentenceCoeff*avgWordsPerSentence - fleschSyllableCoeff*avgSyllablesPerWord
	fkGrade := 0.39*avgWordsPerSentence + 11.8*avgSyllablesPerWord - 15.59
	gunningFog := 0.4 * (avgWordsPerSentence + complexPct)

	return SubScore{
		Name:  DimReadability,
		Value: clampScore(flesch),
		Details: map[string]interface{}{
			"wordCount":           words,
			"sentenceCount":       sentences,
			"syllableCount":       syllables,
			"avgWordsPerSentence": avgWordsPerSentence,
			"avgSyllablesPerWord": avgSyllablesPerWord,
			"fleschReadingEase":   flesch,
			"fleschKincaidGrade":  fkGrade,
			"gunningFog":          gunningFog,
			"complexWordPercent":  complexPct,
		},
	}, nil
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

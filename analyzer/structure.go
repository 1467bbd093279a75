package analyzer

import (
	"regexp"
	"strings"
)

var paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

// structure inspects heading usage, paragraph balance and call-to-action
// presence. The blend: headings contribute up to 40 points, paragraph
// balance up to 30, a detected CTA the remaining 30.
func (e *Engine) structure(ts *TokenStream, contentType ContentType) SubScore {
	paragraphs := splitParagraphs(ts.Raw)

	lengths := make([]int, len(paragraphs))
	totalParaWords := 0
	longParagraphs := 0
	for i, p := range paragraphs {
		lengths[i] = len(strings.Fields(p))
		totalParaWords += lengths[i]
		if lengths[i] > e.cfg.LongParagraphWords {
			longParagraphs++
		}
	}

	avgParaWords := 0.0
	if len(paragraphs) > 0 {
		avgParaWords = float64(totalParaWords) / float64(len(paragraphs))
	}

	hasTitle := titlePresent(ts)
	hasCTA := containsCTA(ts.Raw, e.cfg.CTAPhrases)

	score := 0.0

	// Heading usage.
	if len(ts.Headings) >= 1 {
		score += 20
		if len(ts.Headings) >= 3 {
			score += 20
		} else if len(ts.Headings) >= 2 {
			score += 10
		}
	}

	// Paragraph balance: multiple paragraphs, none overly long.
	if len(paragraphs) >= 2 {
		score += 10
	}
	switch {
	case longParagraphs == 0:
		score += 20
	case longParagraphs*2 <= len(paragraphs):
		score += 10
	}

	if hasCTA {
		score += 30
	}

	return SubScore{
		Name:  DimStructure,
		Value: clampScore(score),
		Details: map[string]interface{}{
			"headingCount":      len(ts.Headings),
			"hasTitle":          hasTitle,
			"paragraphCount":    len(paragraphs),
			"avgParagraphWords": avgParaWords,
			"longParagraphs":    longParagraphs,
			"paragraphVariance": lengthVariance(lengths, avgParaWords),
			"hasCallToAction":   hasCTA,
			"wordCount":         ts.WordCount(),
			"targetWords":       e.cfg.WordTargets[contentType],
		},
	}
}

// splitParagraphs breaks text into blocks separated by blank lines.
func splitParagraphs(text string) []string {
	blocks := paragraphSplitRe.Split(strings.TrimSpace(text), -1)
	paragraphs := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b != "" {
			paragraphs = append(paragraphs, b)
		}
	}
	return paragraphs
}

// titlePresent reports whether the first non-empty line was detected as a
// heading.
func titlePresent(ts *TokenStream) bool {
	if len(ts.Headings) == 0 {
		return false
	}
	for _, line := range ts.Lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stripped := strings.TrimSpace(headingPrefixRe.ReplaceAllString(line, ""))
		return stripped == ts.Headings[0]
	}
	return false
}

func containsCTA(raw string, phrases []string) bool {
	lower := strings.ToLower(raw)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func lengthVariance(lengths []int, mean float64) float64 {
	if len(lengths) == 0 {
		return 0
	}
	var sum float64
	for _, l := range lengths {
		d := float64(l) - mean
		sum += d * d
	}
	return sum / float64(len(lengths))
}

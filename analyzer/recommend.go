package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// rule maps a dimension-specific deficit to a message. The table below is
// the whole recommendation policy; the generator itself only walks it.
type rule struct {
	dimension string
	fallback  bool // fires only when no other rule of the dimension fired
	when      func(s SubScore) bool
	message   func(s SubScore) string
}

var recommendationRules = []rule{
	// Readability.
	{
		dimension: DimReadability,
		when:      func(s SubScore) bool { return detailFloat(s, "avgWordsPerSentence") > 20 },
		message: func(s SubScore) string {
			return fmt.Sprintf("Reduce average sentence length (currently %.1f words per sentence)",
				detailFloat(s, "avgWordsPerSentence"))
		},
	},
	{
		dimension: DimReadability,
		when:      func(s SubScore) bool { return detailFloat(s, "complexWordPercent") > 20 },
		message: func(s SubScore) string {
			return "Use simpler words to lower the share of complex vocabulary"
		},
	},
	{
		dimension: DimReadability,
		fallback:  true,
		when:      func(s SubScore) bool { return true },
		message: func(s SubScore) string {
			return "Improve readability by using shorter sentences and simpler words"
		},
	},

	// Keywords.
	{
		dimension: DimKeywords,
		when:      func(s SubScore) bool { return len(detailStrings(s, "stuffedKeywords")) > 0 },
		message: func(s SubScore) string {
			return fmt.Sprintf("Decrease the density of %s to avoid keyword stuffing",
				quoteList(detailStrings(s, "stuffedKeywords")))
		},
	},
	{
		dimension: DimKeywords,
		when:      func(s SubScore) bool { return len(detailStrings(s, "missingKeywords")) > 0 },
		message: func(s SubScore) string {
			return fmt.Sprintf("Include %s in the content", quoteList(detailStrings(s, "missingKeywords")))
		},
	},
	{
		dimension: DimKeywords,
		when:      func(s SubScore) bool { return len(detailStrings(s, "unplacedKeywords")) > 0 },
		message: func(s SubScore) string {
			return fmt.Sprintf("Place %s in a heading or in the opening of the content",
				quoteList(detailStrings(s, "unplacedKeywords")))
		},
	},
	{
		dimension: DimKeywords,
		when:      func(s SubScore) bool { return len(detailStrings(s, "clusteredKeywords")) > 0 },
		message: func(s SubScore) string {
			return fmt.Sprintf("Spread %s more evenly through the content",
				quoteList(detailStrings(s, "clusteredKeywords")))
		},
	},
	{
		dimension: DimKeywords,
		fallback:  true,
		when:      func(s SubScore) bool { return true },
		message: func(s SubScore) string {
			return "Strengthen keyword usage: aim for a density between 0.5% and 2.5% per keyword"
		},
	},

	// Structure.
	{
		dimension: DimStructure,
		when:      func(s SubScore) bool { return detailInt(s, "headingCount") == 0 },
		message:   func(s SubScore) string { return "Add headings to structure the content" },
	},
	{
		dimension: DimStructure,
		when: func(s SubScore) bool {
			return detailInt(s, "headingCount") > 0 && !detailBool(s, "hasTitle")
		},
		message: func(s SubScore) string { return "Start the content with a clear title line" },
	},
	{
		dimension: DimStructure,
		when:      func(s SubScore) bool { return detailInt(s, "paragraphCount") < 2 },
		message:   func(s SubScore) string { return "Split the content into multiple paragraphs" },
	},
	{
		dimension: DimStructure,
		when:      func(s SubScore) bool { return detailInt(s, "longParagraphs") > 0 },
		message: func(s SubScore) string {
			return fmt.Sprintf("Break up %d overly long paragraph(s)", detailInt(s, "longParagraphs"))
		},
	},
	{
		dimension: DimStructure,
		when:      func(s SubScore) bool { return !detailBool(s, "hasCallToAction") },
		message:   func(s SubScore) string { return "Add a clear call to action" },
	},
	{
		dimension: DimStructure,
		when: func(s SubScore) bool {
			target := detailInt(s, "targetWords")
			return target > 0 && detailInt(s, "wordCount") < target
		},
		message: func(s SubScore) string {
			return fmt.Sprintf("Increase content length (currently %d words, aim for %d+)",
				detailInt(s, "wordCount"), detailInt(s, "targetWords"))
		},
	},
	{
		dimension: DimStructure,
		fallback:  true,
		when:      func(s SubScore) bool { return true },
		message: func(s SubScore) string {
			return "Improve content structure with headings, balanced paragraphs and a call to action"
		},
	},
}

var priorityRank = map[string]int{
	PriorityHigh:   2,
	PriorityMedium: 1,
	PriorityLow:    0,
}

// recommend walks the rule table for every sub-score below its threshold.
// Priority follows the deficit size. The result is stable-sorted by
// descending priority; ties keep the order of the source sub-scores.
func (e *Engine) recommend(subScores []SubScore) []Recommendation {
	recs := []Recommendation{}

	for _, s := range subScores {
		// An empty keyword list is neutral, not deficient, but still worth
		// flagging so the caller can supply keywords.
		if s.Name == DimKeywords && detailInt(s, "keywordCount") == 0 {
			recs = append(recs, Recommendation{
				Priority:        PriorityLow,
				Message:         "Add target keywords so keyword optimization can be measured",
				RelatedSubScore: s.Name,
			})
			continue
		}

		threshold := e.cfg.Thresholds.For(s.Name)
		if s.Value >= threshold {
			continue
		}
		priority := priorityForDeficit(threshold - s.Value)

		fired := false
		for _, r := range recommendationRules {
			if r.dimension != s.Name || r.fallback || !r.when(s) {
				continue
			}
			recs = append(recs, Recommendation{
				Priority:        priority,
				Message:         r.message(s),
				RelatedSubScore: s.Name,
			})
			fired = true
		}
		if !fired {
			for _, r := range recommendationRules {
				if r.dimension == s.Name && r.fallback {
					recs = append(recs, Recommendation{
						Priority:        priority,
						Message:         r.message(s),
						RelatedSubScore: s.Name,
					})
					break
				}
			}
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] > priorityRank[recs[j].Priority]
	})
	return recs
}

func priorityForDeficit(gap float64) string {
	switch {
	case gap > 20:
		return PriorityHigh
	case gap >= 10:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "'" + it + "'"
	}
	return strings.Join(quoted, ", ")
}

// Detail accessors tolerate absent keys so rules stay total functions.

func detailFloat(s SubScore, key string) float64 {
	switch v := s.Details[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func detailInt(s SubScore, key string) int {
	switch v := s.Details[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func detailBool(s SubScore, key string) bool {
	v, _ := s.Details[key].(bool)
	return v
}

func detailStrings(s SubScore, key string) []string {
	v, _ := s.Details[key].([]string)
	return v
}

package analyzer

import "strings"

// neutralKeywordScore is used when no keywords are supplied. Analysis stays
// usable without keywords; the recommendation generator asks for some.
const neutralKeywordScore = 50

// introWindow is how many leading characters count as early placement.
const introWindow = 100

// keywordMetric holds the measurements for a single keyword.
type keywordMetric struct {
	Count     int     `json:"count"`
	Density   float64 `json:"density"` // percentage of total words
	InIntro   bool    `json:"inIntro"`
	InHeading bool    `json:"inHeading"`
	Stuffed   bool    `json:"stuffed"`
	Quartiles [4]int  `json:"quartiles"` // occurrence counts per text quartile
	Spread    float64 `json:"spread"`    // 0..1, quartile coverage
	Score     float64 `json:"score"`
}

// keywordMetrics computes density, placement and distribution for each
// target keyword and averages the per-keyword scores. Matching is
// whole-word over the normalized word sequence so "art" never matches
// inside "start".
func (e *Engine) keywordMetrics(ts *TokenStream, keywords []string) SubScore {
	if len(keywords) == 0 {
		return SubScore{
			Name:  DimKeywords,
			Value: neutralKeywordScore,
			Details: map[string]interface{}{
				"keywordCount": 0,
			},
		}
	}

	perKeyword := make(map[string]keywordMetric, len(keywords))
	var stuffed, missing, unplaced, clustered []string
	var sum float64

	for _, kw := range keywords {
		m := e.scoreKeyword(ts, kw)
		perKeyword[kw] = m
		sum += m.Score

		if m.Stuffed {
			stuffed = append(stuffed, kw)
		}
		if m.Count == 0 {
			missing = append(missing, kw)
		} else {
			if !m.InIntro && !m.InHeading {
				unplaced = append(unplaced, kw)
			}
			if m.Count >= 2 && m.Spread <= 0.5 {
				clustered = append(clustered, kw)
			}
		}
	}

	return SubScore{
		Name:  DimKeywords,
		Value: sum / float64(len(keywords)),
		Details: map[string]interface{}{
			"keywordCount":      len(keywords),
			"keywords":          perKeyword,
			"stuffedKeywords":   stuffed,
			"missingKeywords":   missing,
			"unplacedKeywords":  unplaced,
			"clusteredKeywords": clustered,
		},
	}
}

func (e *Engine) scoreKeyword(ts *TokenStream, keyword string) keywordMetric {
	m := keywordMetric{}

	phrase := splitWords(strings.ToLower(keyword))
	totalWords := ts.WordCount()
	if len(phrase) == 0 || totalWords == 0 {
		return m
	}

	positions := matchPositions(ts.Words, phrase)
	m.Count = len(positions)
	m.Density = float64(m.Count) / float64(totalWords) * 100
	m.InIntro = keywordInIntro(ts.Raw, keyword)
	m.InHeading = keywordInHeadings(ts.Headings, keyword)

	if m.Count == 0 {
		return m
	}

	occupied := 0
	for _, pos := range positions {
		q := pos * 4 / totalWords
		if q > 3 {
			q = 3
		}
		m.Quartiles[q]++
	}
	for _, n := range m.Quartiles {
		if n > 0 {
			occupied++
		}
	}
	denom := m.Count
	if denom > 4 {
		denom = 4
	}
	m.Spread = float64(occupied) / float64(denom)

	pol := e.cfg.Density
	m.Stuffed = m.Density > pol.StuffingLimit

	var densityScore float64
	switch {
	case m.Stuffed:
		densityScore = pol.StuffingCap
	case m.Density >= pol.OptimalMin && m.Density <= pol.OptimalMax:
		densityScore = 100
	case m.Density < pol.OptimalMin:
		densityScore = 50 + m.Density/pol.OptimalMin*50
	default: // between optimal max and the stuffing limit
		densityScore = 100 - (m.Density-pol.OptimalMax)/(pol.StuffingLimit-pol.OptimalMax)*40
	}

	// Density dominates, distribution refines, placement tops up: a
	// perfect per-keyword score needs all three.
	score := 0.6*densityScore + 0.25*(m.Spread*100)
	if m.InIntro || m.InHeading {
		score += pol.PlacementBonus
	}
	score = clampScore(score)
	if m.Stuffed && score > pol.StuffingCap {
		// Stuffing is capped, never rewarded, regardless of placement.
		score = pol.StuffingCap
	}
	m.Score = score
	return m
}

// matchPositions returns the word index of every whole-word occurrence of
// phrase in words.
func matchPositions(words, phrase []string) []int {
	var positions []int
	if len(phrase) == 0 || len(words) < len(phrase) {
		return positions
	}
	for i := 0; i+len(phrase) <= len(words); i++ {
		matched := true
		for j, p := range phrase {
			if words[i+j] != p {
				matched = false
				break
			}
		}
		if matched {
			positions = append(positions, i)
		}
	}
	return positions
}

func keywordInIntro(raw, keyword string) bool {
	intro := strings.ToLower(raw)
	if len(intro) > introWindow {
		intro = intro[:introWindow]
	}
	return strings.Contains(intro, strings.ToLower(strings.TrimSpace(keyword)))
}

func keywordInHeadings(headings []string, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	for _, h := range headings {
		if strings.Contains(strings.ToLower(h), kw) {
			return true
		}
	}
	return false
}

package analyzer

// ContentType identifies what kind of copy is being analyzed. It selects
// the word-count target used by recommendations; it does not change weights.
type ContentType string

const (
	ContentBlogPost           ContentType = "blog_post"
	ContentSocialMedia        ContentType = "social_media"
	ContentEmail              ContentType = "email"
	ContentLandingPage        ContentType = "landing_page"
	ContentProductDescription ContentType = "product_description"
	ContentAdCopy             ContentType = "ad_copy"
	ContentPressRelease       ContentType = "press_release"
	ContentCustom             ContentType = "custom"
)

// AnalysisRequest is the immutable input to a single analysis call.
type AnalysisRequest struct {
	Content     string      `json:"content"`
	Keywords    []string    `json:"keywords"`
	ContentType ContentType `json:"contentType"`
}

// TokenStream is a read-only view of the request content produced by
// Tokenize and shared by all analyzers. It is never mutated after creation.
type TokenStream struct {
	Raw       string
	Lines     []string       // original case, one per input line
	Sentences []string
	Words     []string       // lowercased, punctuation stripped
	Headings  []string       // detected heading lines, original case
	Syllables map[string]int // per unique word
}

// WordCount returns the number of words in the stream.
func (ts *TokenStream) WordCount() int { return len(ts.Words) }

// SentenceCount returns the number of detected sentences.
func (ts *TokenStream) SentenceCount() int { return len(ts.Sentences) }

// SyllableTotal sums syllable counts over every word occurrence.
func (ts *TokenStream) SyllableTotal() int {
	total := 0
	for _, w := range ts.Words {
		total += ts.Syllables[w]
	}
	return total
}

// Sub-score dimension names. Callers switch on SubScore.Name to interpret
// the Details payload.
const (
	DimReadability = "readability"
	DimKeywords    = "keywords"
	DimStructure   = "structure"
)

// SubScore is one dimension's quality measurement. Value is in [0,100] and
// Weight is in [0,1]; the weights of a report's sub-scores sum to 1.
type SubScore struct {
	Name    string                 `json:"name"`
	Value   float64                `json:"value"`
	Weight  float64                `json:"weight"`
	Details map[string]interface{} `json:"details"`
}

// Recommendation priorities, most to least urgent.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is a single actionable improvement suggestion.
type Recommendation struct {
	Priority        string `json:"priority"`
	Message         string `json:"message"`
	RelatedSubScore string `json:"relatedSubScore"`
}

// AnalysisReport is the terminal artifact returned to the caller. The engine
// keeps no reference to it after return; identical requests produce deeply
// equal reports.
type AnalysisReport struct {
	OverallScore    float64          `json:"overallScore"`
	SubScores       []SubScore       `json:"subScores"`
	Recommendations []Recommendation `json:"recommendations"`
}

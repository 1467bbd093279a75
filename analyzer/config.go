package analyzer

import (
	"fmt"
	"math"
)

// weightEpsilon is the tolerance used when checking that weights sum to 1.0.
const weightEpsilon = 1e-6

// Weights distributes the overall score across the three dimensions.
type Weights struct {
	Readability float64 `yaml:"readability" json:"readability"`
	Keywords    float64 `yaml:"keywords" json:"keywords"`
	Structure   float64 `yaml:"structure" json:"structure"`
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{Readability: 0.3, Keywords: 0.4, Structure: 0.3}
}

// Validate checks that the weights sum to 1.0 within epsilon.
func (w Weights) Validate() error {
	sum := w.Readability + w.Keywords + w.Structure
	if math.Abs(sum-1.0) > weightEpsilon {
		return fmt.Errorf("%w: got %.6f", ErrInvalidWeightConfig, sum)
	}
	return nil
}

// Thresholds are the per-dimension floors below which recommendations fire.
type Thresholds struct {
	Readability float64 `yaml:"readability" json:"readability"`
	Keywords    float64 `yaml:"keywords" json:"keywords"`
	Structure   float64 `yaml:"structure" json:"structure"`
}

// For returns the threshold for the named dimension.
func (t Thresholds) For(dimension string) float64 {
	switch dimension {
	case DimReadability:
		return t.Readability
	case DimKeywords:
		return t.Keywords
	case DimStructure:
		return t.Structure
	}
	return 0
}

// DensityPolicy controls how keyword density maps to a score. Densities are
// percentages of total word count.
type DensityPolicy struct {
	OptimalMin     float64 `yaml:"optimalMin" json:"optimalMin"`         // below this the keyword is underused
	OptimalMax     float64 `yaml:"optimalMax" json:"optimalMax"`         // above this the score tapers off
	StuffingLimit  float64 `yaml:"stuffingLimit" json:"stuffingLimit"`   // strictly above this is flagged as stuffing
	StuffingCap    float64 `yaml:"stuffingCap" json:"stuffingCap"`       // score ceiling for stuffed keywords
	PlacementBonus float64 `yaml:"placementBonus" json:"placementBonus"` // added when the keyword appears early or in a heading
}

// Config collects every tunable constant of the engine. The numeric defaults
// are policy, not contract; callers may override them wholesale.
type Config struct {
	Weights            Weights             `yaml:"weights"`
	Thresholds         Thresholds          `yaml:"thresholds"`
	Density            DensityPolicy       `yaml:"density"`
	LongParagraphWords int                 `yaml:"longParagraphWords"` // paragraphs above this many words are penalized
	WordTargets        map[ContentType]int `yaml:"wordTargets"`        // minimum word counts per content type
	CTAPhrases         []string            `yaml:"ctaPhrases"`
}

// DefaultConfig returns the engine defaults. The CTA lexicon is a fixed list
// of common direct-response phrasings.
func DefaultConfig() Config {
	return Config{
		Weights: DefaultWeights(),
		Thresholds: Thresholds{
			Readability: 60,
			Keywords:    50,
			Structure:   50,
		},
		Density: DensityPolicy{
			OptimalMin:     0.5,
			OptimalMax:     2.5,
			StuffingLimit:  3.0,
			StuffingCap:    30,
			PlacementBonus: 15,
		},
		LongParagraphWords: 150,
		WordTargets: map[ContentType]int{
			ContentBlogPost:     1000,
			ContentLandingPage:  500,
			ContentPressRelease: 400,
		},
		CTAPhrases: []string{
			"buy now",
			"act now",
			"act fast",
			"shop now",
			"order now",
			"sign up",
			"subscribe",
			"get started",
			"start today",
			"learn more",
			"find out more",
			"contact us",
			"download",
			"join",
			"claim your",
			"try it",
			"risk-free",
			"don't miss",
			"click here",
			"reserve your",
			"unlock",
			"take the first step",
			"get your",
			"save big",
			"limited time",
		},
	}
}

// Validate checks config consistency before the engine accepts it.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.Density.StuffingLimit <= c.Density.OptimalMax {
		return fmt.Errorf("density stuffing limit %.2f must exceed optimal max %.2f",
			c.Density.StuffingLimit, c.Density.OptimalMax)
	}
	return nil
}

package scoring

import (
	"selfchart/domain/survey"
)

// StrategyName identifies a scoring taxonomy.
type StrategyName string

const (
	// StrategyBigFive is the canonical five-factor scorer.
	StrategyBigFive StrategyName = "bigfive"
	// StrategyEnergy is the four-type energy taxonomy scorer.
	StrategyEnergy StrategyName = "energy"
)

// Band is the qualitative label attached to a percentile score.
type Band string

const (
	BandVeryHigh Band = "Very High"
	BandHigh     Band = "High"
	BandModerate Band = "Moderate"
	BandLow      Band = "Low"
	BandVeryLow  Band = "Very Low"
)

// BandFor maps a percentile to its qualitative band.
func BandFor(percentile float64) Band {
	switch {
	case percentile >= 80:
		return BandVeryHigh
	case percentile >= 60:
		return BandHigh
	case percentile >= 40:
		return BandModerate
	case percentile >= 20:
		return BandLow
	default:
		return BandVeryLow
	}
}

// TraitScore is one scored trait.
type TraitScore struct {
	Raw        int     `json:"raw"`
	Percentile float64 `json:"percentile"`
	Band       Band    `json:"band"`
}

// TraitProfile is the output of a scoring strategy. The five-factor scorer
// fills Scores and sets Type to the argmax trait; the energy scorer fills
// the classification fields and bucket totals instead.
type TraitProfile struct {
	Strategy StrategyName `json:"strategy"`

	Scores map[survey.Trait]TraitScore `json:"scores,omitempty"`

	// Type is the argmax category of the strategy's primary bucket set.
	Type      string `json:"type"`
	Authority string `json:"authority,omitempty"`

	// ProfileCandidates holds the two profile strings built from the two
	// highest-scoring line buckets, primary ordering first.
	ProfileCandidates []string `json:"profile_candidates,omitempty"`

	// DefinedTendencies lists centers whose weighted sum cleared the
	// defined threshold, in canonical center order.
	DefinedTendencies []string `json:"defined_tendencies,omitempty"`

	// TypeScores keeps the raw bucket totals behind the Type pick.
	TypeScores map[string]float64 `json:"type_scores,omitempty"`

	Summary string `json:"summary"`
}

// Strategy scores a validated response vector. Scoring never fails: all
// input invariants are guaranteed by survey.Validate upstream.
type Strategy interface {
	Name() StrategyName
	Score(vec survey.ResponseVector) TraitProfile
}

// ForName returns the strategy registered under name, defaulting to the
// canonical five-factor scorer for anything unrecognized.
func ForName(name StrategyName) Strategy {
	if name == StrategyEnergy {
		return NewEnergyScorer()
	}
	return NewBigFiveScorer()
}

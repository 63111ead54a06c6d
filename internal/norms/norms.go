// Package norms compares trait scores against fixed adult population
// norms. Display-only: the canonical percentile remains the linear rescale
// in the scorer, these figures just give the report a reference frame.
package norms

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"selfchart/domain/scoring"
	"selfchart/domain/survey"
)

// norm holds the population mean and standard deviation for one trait on
// the 0..100 percentile scale.
type norm struct {
	mean  float64
	sigma float64
}

// populationNorms are fixed reference values; they never change between
// releases so stored comparisons stay comparable.
var populationNorms = map[survey.Trait]norm{
	survey.Openness:          {mean: 56.2, sigma: 17.9},
	survey.Conscientiousness: {mean: 58.1, sigma: 16.4},
	survey.Extraversion:      {mean: 50.3, sigma: 19.2},
	survey.Agreeableness:     {mean: 61.7, sigma: 15.8},
	survey.Neuroticism:       {mean: 47.5, sigma: 18.6},
}

// Comparison is one trait's position against the population.
type Comparison struct {
	Trait      survey.Trait `json:"trait"`
	ZScore     float64      `json:"z_score"`
	Percentile float64      `json:"percentile"` // Normal CDF, 0..100
}

// Summary is the norm comparison across all five traits.
type Summary struct {
	Comparisons []Comparison `json:"comparisons"`
	MeanScore   float64      `json:"mean_score"`
	Spread      float64      `json:"spread"`
}

// Compare positions a five-factor profile against the population norms.
// Profiles from other strategies produce an empty summary.
func Compare(profile scoring.TraitProfile) Summary {
	if profile.Strategy != scoring.StrategyBigFive || len(profile.Scores) == 0 {
		return Summary{}
	}

	comparisons := make([]Comparison, 0, len(survey.Traits))
	values := make([]float64, 0, len(survey.Traits))
	for _, trait := range survey.Traits {
		score, ok := profile.Scores[trait]
		if !ok {
			continue
		}
		n := populationNorms[trait]
		dist := distuv.Normal{Mu: n.mean, Sigma: n.sigma}
		comparisons = append(comparisons, Comparison{
			Trait:      trait,
			ZScore:     (score.Percentile - n.mean) / n.sigma,
			Percentile: dist.CDF(score.Percentile) * 100,
		})
		values = append(values, score.Percentile)
	}

	mean, err := stats.Mean(values)
	if err != nil {
		mean = 0
	}
	spread, err := stats.StandardDeviation(values)
	if err != nil {
		spread = 0
	}

	return Summary{
		Comparisons: comparisons,
		MeanScore:   mean,
		Spread:      spread,
	}
}

package norms

import (
	"math"
	"testing"

	"selfchart/domain/scoring"
	"selfchart/domain/survey"
)

func TestCompare_ZScoreAtPopulationMean(t *testing.T) {
	profile := scoring.TraitProfile{
		Strategy: scoring.StrategyBigFive,
		Scores: map[survey.Trait]scoring.TraitScore{
			survey.Openness: {Raw: 65, Percentile: 56.2, Band: scoring.BandModerate},
		},
	}

	summary := Compare(profile)
	if len(summary.Comparisons) != 1 {
		t.Fatalf("expected 1 comparison, got %d", len(summary.Comparisons))
	}

	c := summary.Comparisons[0]
	if math.Abs(c.ZScore) > 1e-9 {
		t.Errorf("score at the population mean should have z = 0, got %f", c.ZScore)
	}
	if math.Abs(c.Percentile-50) > 1e-6 {
		t.Errorf("score at the population mean should sit at the 50th percentile, got %f", c.Percentile)
	}
}

func TestCompare_DirectionOfZScore(t *testing.T) {
	profile := scoring.TraitProfile{
		Strategy: scoring.StrategyBigFive,
		Scores: map[survey.Trait]scoring.TraitScore{
			survey.Extraversion: {Percentile: 90},
			survey.Neuroticism:  {Percentile: 10},
		},
	}

	summary := Compare(profile)
	if len(summary.Comparisons) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(summary.Comparisons))
	}
	for _, c := range summary.Comparisons {
		switch c.Trait {
		case survey.Extraversion:
			if c.ZScore <= 0 || c.Percentile <= 50 {
				t.Errorf("high score should land above the population: %+v", c)
			}
		case survey.Neuroticism:
			if c.ZScore >= 0 || c.Percentile >= 50 {
				t.Errorf("low score should land below the population: %+v", c)
			}
		}
	}
}

func TestCompare_IgnoresOtherStrategies(t *testing.T) {
	profile := scoring.TraitProfile{Strategy: scoring.StrategyEnergy, Type: "Generator"}
	summary := Compare(profile)
	if len(summary.Comparisons) != 0 {
		t.Error("energy profiles carry no five-factor scores to compare")
	}
}

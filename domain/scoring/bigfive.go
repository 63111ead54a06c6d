package scoring

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"selfchart/domain/survey"
)

// Raw per-trait sums range over [20,100]: twenty questions, each
// contributing 1..5 after reverse adjustment.
const (
	rawMin = survey.TraitQuestionSpan * survey.MinAnswer
	rawMax = survey.TraitQuestionSpan * survey.MaxAnswer
)

// BigFiveScorer scores a response vector under the five-factor model.
type BigFiveScorer struct{}

// NewBigFiveScorer creates the canonical five-factor scorer.
func NewBigFiveScorer() *BigFiveScorer {
	return &BigFiveScorer{}
}

func (s *BigFiveScorer) Name() StrategyName { return StrategyBigFive }

// Score sums per-trait contributions (reverse-scored questions contribute
// 6 - answer), rescales raw 20..100 sums to 0..100 percentiles, and bands
// them. The summary names the highest- and lowest-scoring traits.
func (s *BigFiveScorer) Score(vec survey.ResponseVector) TraitProfile {
	raw := make(map[survey.Trait]int, len(survey.Traits))
	for q := 1; q <= survey.QuestionCount; q++ {
		contribution := vec.Answer(q)
		if survey.Reversed(q) {
			contribution = survey.MaxAnswer + survey.MinAnswer - contribution
		}
		raw[survey.TraitFor(q)] += contribution
	}

	scores := make(map[survey.Trait]TraitScore, len(survey.Traits))
	percentiles := make([]float64, 0, len(survey.Traits))
	var highest, lowest survey.Trait
	for _, trait := range survey.Traits {
		p := rescale(raw[trait])
		scores[trait] = TraitScore{
			Raw:        raw[trait],
			Percentile: p,
			Band:       BandFor(p),
		}
		percentiles = append(percentiles, p)
		if highest == "" || p > scores[highest].Percentile {
			highest = trait
		}
		if lowest == "" || p < scores[lowest].Percentile {
			lowest = trait
		}
	}

	return TraitProfile{
		Strategy: StrategyBigFive,
		Scores:   scores,
		Type:     string(highest),
		Summary:  summarize(scores, highest, lowest, percentiles),
	}
}

// rescale maps a raw 20..100 sum onto a 0..100 percentile, clamped.
func rescale(raw int) float64 {
	p := float64(raw-rawMin) / float64(rawMax-rawMin) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func summarize(scores map[survey.Trait]TraitScore, highest, lowest survey.Trait, percentiles []float64) string {
	mean, err := stats.Mean(percentiles)
	if err != nil {
		mean = 0
	}
	spread, err := stats.StandardDeviation(percentiles)
	if err != nil {
		spread = 0
	}
	return fmt.Sprintf(
		"Your strongest trait is %s (%s, %.0f) and your least expressed is %s (%s, %.0f). Average expression %.0f, spread %.0f.",
		highest, scores[highest].Band, scores[highest].Percentile,
		lowest, scores[lowest].Band, scores[lowest].Percentile,
		mean, spread,
	)
}

package scoring

import (
	"strings"
	"testing"

	"selfchart/domain/survey"
)

func vectorOf(value int, t *testing.T) survey.ResponseVector {
	t.Helper()
	raw := make([]int, survey.QuestionCount)
	for i := range raw {
		raw[i] = value
	}
	vec, err := survey.Validate(raw)
	if err != nil {
		t.Fatalf("failed to build test vector: %v", err)
	}
	return vec
}

func TestBigFive_MidpointSymmetry(t *testing.T) {
	// With every answer at the midpoint, reversed questions contribute the
	// same as regular ones (6-3 == 3), so all traits land on the same
	// percentile.
	profile := NewBigFiveScorer().Score(vectorOf(3, t))

	for trait, score := range profile.Scores {
		if score.Raw != 60 {
			t.Errorf("%s: expected raw 60, got %d", trait, score.Raw)
		}
		if score.Percentile != 50 {
			t.Errorf("%s: expected percentile 50, got %f", trait, score.Percentile)
		}
		if score.Band != BandModerate {
			t.Errorf("%s: expected Moderate band, got %s", trait, score.Band)
		}
	}
}

func TestBigFive_PercentileClamped(t *testing.T) {
	for _, value := range []int{1, 2, 4, 5} {
		profile := NewBigFiveScorer().Score(vectorOf(value, t))
		for trait, score := range profile.Scores {
			if score.Percentile < 0 || score.Percentile > 100 {
				t.Errorf("answer %d, %s: percentile %f outside [0,100]", value, trait, score.Percentile)
			}
		}
	}
}

func TestBigFive_ReversedHalvesCancelExtremes(t *testing.T) {
	// All-5s: regular questions contribute 5, reversed contribute 1.
	// Ten of each per trait gives raw 60 -> percentile 50 across the board.
	profile := NewBigFiveScorer().Score(vectorOf(5, t))
	for trait, score := range profile.Scores {
		if score.Raw != 60 {
			t.Errorf("%s: expected raw 60 from balanced halves, got %d", trait, score.Raw)
		}
	}
}

func TestBigFive_ArgmaxTypeAndSummary(t *testing.T) {
	// Boost the Openness block (questions 1-10 regular, 11-20 reversed).
	raw := make([]int, survey.QuestionCount)
	for i := range raw {
		raw[i] = 3
	}
	for q := 1; q <= 10; q++ {
		raw[q-1] = 5
	}
	for q := 11; q <= 20; q++ {
		raw[q-1] = 1 // reversed: contributes 5
	}
	vec, err := survey.Validate(raw)
	if err != nil {
		t.Fatal(err)
	}

	profile := NewBigFiveScorer().Score(vec)
	if profile.Type != string(survey.Openness) {
		t.Errorf("expected argmax type Openness, got %s", profile.Type)
	}
	if profile.Scores[survey.Openness].Raw != 100 {
		t.Errorf("expected raw 100 for boosted trait, got %d", profile.Scores[survey.Openness].Raw)
	}
	if !strings.Contains(profile.Summary, string(survey.Openness)) {
		t.Errorf("summary should name the strongest trait: %q", profile.Summary)
	}
}

func TestBandFor_Boundaries(t *testing.T) {
	cases := []struct {
		percentile float64
		want       Band
	}{
		{100, BandVeryHigh}, {80, BandVeryHigh},
		{79.9, BandHigh}, {60, BandHigh},
		{59.9, BandModerate}, {40, BandModerate},
		{39.9, BandLow}, {20, BandLow},
		{19.9, BandVeryLow}, {0, BandVeryLow},
	}
	for _, tc := range cases {
		if got := BandFor(tc.percentile); got != tc.want {
			t.Errorf("BandFor(%f): expected %s, got %s", tc.percentile, tc.want, got)
		}
	}
}

func TestForName_DefaultsToBigFive(t *testing.T) {
	if ForName("").Name() != StrategyBigFive {
		t.Error("empty strategy name should resolve to the canonical scorer")
	}
	if ForName("bogus").Name() != StrategyBigFive {
		t.Error("unknown strategy name should resolve to the canonical scorer")
	}
	if ForName(StrategyEnergy).Name() != StrategyEnergy {
		t.Error("energy strategy should resolve to the energy scorer")
	}
}

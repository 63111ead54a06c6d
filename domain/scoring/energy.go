package scoring

import (
	"fmt"

	"selfchart/domain/survey"
)

// EnergyScorer scores a response vector under the four-type energy
// taxonomy: weighted type/authority/profile/center buckets from the static
// question table.
type EnergyScorer struct{}

// NewEnergyScorer creates the four-type taxonomy scorer.
func NewEnergyScorer() *EnergyScorer {
	return &EnergyScorer{}
}

func (s *EnergyScorer) Name() StrategyName { return StrategyEnergy }

func (s *EnergyScorer) Score(vec survey.ResponseVector) TraitProfile {
	typeSums := make(map[string]float64, len(survey.EnergyTypes))
	authoritySums := make(map[string]float64, len(survey.Authorities))
	profileSums := make(map[string]float64, len(survey.ProfileLines))
	centerSums := make(map[string]float64, len(survey.Centers))

	for q := 1; q <= survey.QuestionCount; q++ {
		answer := float64(vec.Answer(q))
		for _, w := range survey.EnergyWeights[q-1] {
			switch w.Kind {
			case survey.BucketType:
				typeSums[w.Key] += answer * w.Factor
			case survey.BucketAuthority:
				authoritySums[w.Key] += answer * w.Factor
			case survey.BucketProfile:
				profileSums[w.Key] += answer * w.Factor
			case survey.BucketCenter:
				centerSums[w.Key] += answer * w.Factor
			}
		}
	}

	energyType := dominant(survey.EnergyTypes, typeSums)
	authority := dominant(survey.AuthoritiesByType[energyType], authoritySums)
	first, second := topTwo(survey.ProfileLines, profileSums)

	var defined []string
	for _, center := range survey.Centers {
		if centerSums[center] > survey.CenterDefinedThreshold {
			defined = append(defined, center)
		}
	}

	return TraitProfile{
		Strategy:  StrategyEnergy,
		Type:      energyType,
		Authority: authority,
		ProfileCandidates: []string{
			fmt.Sprintf("%s/%s", first, second),
			fmt.Sprintf("%s/%s", second, first),
		},
		DefinedTendencies: defined,
		TypeScores:        typeSums,
		Summary:           fmt.Sprintf("Your answers lean %s with %s authority.", energyType, authority),
	}
}

// dominant picks the highest-scoring key; ties break toward the earlier
// entry in the declaration-order list.
func dominant(order []string, sums map[string]float64) string {
	best := order[0]
	for _, key := range order[1:] {
		if sums[key] > sums[best] {
			best = key
		}
	}
	return best
}

// topTwo returns the two highest-scoring keys in declaration-order
// tie-breaking, first place then second.
func topTwo(order []string, sums map[string]float64) (string, string) {
	first := dominant(order, sums)
	second := ""
	for _, key := range order {
		if key == first {
			continue
		}
		if second == "" || sums[key] > sums[second] {
			second = key
		}
	}
	return first, second
}

package insight

import (
	"fmt"
	"strings"

	"selfchart/domain/chart"
	"selfchart/domain/scoring"
)

// Report is the ordered list of insight strings. Order is fixed: type
// comparison, authority comparison, center summary, profile comparison,
// strategy statement.
type Report []string

// Synthesizer compares quiz-derived and chart-derived classifications and
// emits the integration insights. No randomness, no I/O.
type Synthesizer struct{}

// NewSynthesizer creates an integration synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize produces the insight report. The result has four or five
// entries depending on whether any centers are activated.
func (s *Synthesizer) Synthesize(trait scoring.TraitProfile, ch chart.ChartProfile) Report {
	report := make(Report, 0, 5)

	report = append(report, typeInsight(trait.Type, string(ch.Type)))
	report = append(report, authorityInsight(trait.Authority, string(ch.Authority)))

	if len(ch.ActivatedCenters) > 0 {
		report = append(report, centerInsight(ch.ActivatedCenters))
	}

	report = append(report, profileInsight(trait.ProfileCandidates, ch.Profile))

	if strategy, ok := chart.Strategies[ch.Type]; ok {
		report = append(report, strategy)
	}

	return report
}

func typeInsight(traitType, chartType string) string {
	if strings.EqualFold(traitType, chartType) {
		return fmt.Sprintf("Your answers and your chart agree: you move through the world as a %s.", chartType)
	}
	return fmt.Sprintf("Your answers point to %s while your chart shows %s; the tension between them is worth exploring.", traitType, chartType)
}

func authorityInsight(traitAuthority, chartAuthority string) string {
	if traitAuthority != "" && containsFold(traitAuthority, chartAuthority) {
		return fmt.Sprintf("Your decision-making style matches your %s authority.", chartAuthority)
	}
	if traitAuthority == "" {
		return fmt.Sprintf("Your chart suggests %s authority; your answers did not favor a decision style.", chartAuthority)
	}
	return fmt.Sprintf("You answered like %s authority but your chart carries %s authority.", traitAuthority, chartAuthority)
}

// containsFold reports whether either string is a case-insensitive
// substring of the other.
func containsFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func centerInsight(centers []chart.Center) string {
	names := make([]string, len(centers))
	for i, c := range centers {
		names[i] = string(c)
	}
	return fmt.Sprintf("Your defined centers: %s.", strings.Join(names, ", "))
}

func profileInsight(candidates []string, chartProfile string) string {
	for _, c := range candidates {
		if c == chartProfile {
			return fmt.Sprintf("Your %s profile shows up in both your answers and your chart.", chartProfile)
		}
	}
	return fmt.Sprintf("Your chart carries a %s profile; try its themes on and see what resonates.", chartProfile)
}

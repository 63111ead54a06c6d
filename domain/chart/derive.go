package chart

import (
	"fmt"
	"sort"
)

// Deriver turns birth data into a ChartProfile. Pure function of the birth
// date and time; identical input yields a byte-identical chart.
type Deriver struct{}

// NewDeriver creates a chart deriver.
func NewDeriver() *Deriver {
	return &Deriver{}
}

// Derive runs the full derivation: pseudo-ephemeris, gate and center
// activation, channel detection, then definition, type, authority and
// profile classification.
func (d *Deriver) Derive(birth BirthRecord) (ChartProfile, error) {
	dayOfYear, err := parseBirthMoment(birth)
	if err != nil {
		return ChartProfile{}, err
	}

	pos := positions(dayOfYear)

	gates := activatedGates(pos)
	centers := activatedCenters(gates)
	channels := activeChannels(gates)

	chartType := classifyType(centers)

	return ChartProfile{
		Type:             chartType,
		Authority:        classifyAuthority(centers, chartType),
		Profile:          fmt.Sprintf("%d/%d", pos[BodySun].Line, pos[BodyEarth].Line),
		Definition:       classifyDefinition(len(channels)),
		ActivatedCenters: centers,
		ActivatedGates:   gates,
		ActiveChannels:   channels,
		Positions:        pos,
	}, nil
}

// activatedGates is the union of all body gates, ascending.
func activatedGates(pos map[Body]Position) []int {
	set := make(map[int]bool, len(pos))
	for _, p := range pos {
		set[p.Gate] = true
	}
	gates := make([]int, 0, len(set))
	for g := range set {
		gates = append(gates, g)
	}
	sort.Ints(gates)
	return gates
}

// activatedCenters maps the gate set through the gate->center table,
// in canonical center order.
func activatedCenters(gates []int) []Center {
	set := make(map[Center]bool, len(CenterOrder))
	for _, g := range gates {
		set[CenterFor(g)] = true
	}
	centers := make([]Center, 0, len(set))
	for _, c := range CenterOrder {
		if set[c] {
			centers = append(centers, c)
		}
	}
	return centers
}

// activeChannels returns every channel whose both gates are activated,
// in table order.
func activeChannels(gates []int) []Channel {
	active := make(map[int]bool, len(gates))
	for _, g := range gates {
		active[g] = true
	}
	channels := make([]Channel, 0)
	for _, ch := range Channels {
		if active[ch.GateA] && active[ch.GateB] {
			channels = append(channels, ch)
		}
	}
	return channels
}

// classifyDefinition buckets the active-channel count. Thresholds are
// exactly as enumerated, no interpolation.
func classifyDefinition(channelCount int) Definition {
	switch {
	case channelCount == 0:
		return DefinitionNone
	case channelCount <= 2:
		return DefinitionSingle
	case channelCount <= 4:
		return DefinitionSplit
	default:
		return DefinitionTripleSplit
	}
}

// classifyType evaluates the fixed priority chain over the activated
// centers. The second branch re-checks Sacral even though the first
// subsumes it; the order is load-bearing for the Manifesting Generator
// case and must not be "simplified".
func classifyType(centers []Center) Type {
	has := make(map[Center]bool, len(centers))
	for _, c := range centers {
		has[c] = true
	}

	switch {
	case has[CenterSacral] && (has[CenterThroat] || has[CenterHeart]):
		return TypeManifestingGenerator
	case has[CenterSacral]:
		return TypeGenerator
	case has[CenterThroat] && (has[CenterHeart] || has[CenterRoot]):
		return TypeManifestor
	case has[CenterSolarPlexus] || has[CenterSacral] || has[CenterHeart] || has[CenterRoot]:
		return TypeProjector
	default:
		return TypeReflector
	}
}

// classifyAuthority evaluates the fixed authority priority chain.
func classifyAuthority(centers []Center, chartType Type) Authority {
	has := make(map[Center]bool, len(centers))
	for _, c := range centers {
		has[c] = true
	}

	switch {
	case has[CenterSolarPlexus]:
		return AuthorityEmotional
	case (chartType == TypeGenerator || chartType == TypeManifestingGenerator) && has[CenterSacral]:
		return AuthoritySacral
	case has[CenterSpleen]:
		return AuthoritySplenic
	case has[CenterHeart]:
		return AuthorityEgo
	case has[CenterG]:
		return AuthoritySelfProjected
	case has[CenterThroat] && chartType == TypeProjector:
		return AuthorityMental
	default:
		return AuthorityLunar
	}
}

package chart

// Type is the energetic type classification.
type Type string

const (
	TypeGenerator             Type = "Generator"
	TypeManifestor            Type = "Manifestor"
	TypeProjector             Type = "Projector"
	TypeReflector             Type = "Reflector"
	TypeManifestingGenerator  Type = "Manifesting Generator"
)

// Authority is the decision-making authority classification.
type Authority string

const (
	AuthorityEmotional     Authority = "Emotional"
	AuthoritySacral        Authority = "Sacral"
	AuthoritySplenic       Authority = "Splenic"
	AuthorityEgo           Authority = "Ego"
	AuthoritySelfProjected Authority = "Self-Projected"
	AuthorityMental        Authority = "Mental"
	AuthorityLunar         Authority = "Lunar"
)

// Definition classifies channel connectivity by active-channel count.
type Definition string

const (
	DefinitionNone        Definition = "None"
	DefinitionSingle      Definition = "Single"
	DefinitionSplit       Definition = "Split"
	DefinitionTripleSplit Definition = "Triple Split"
)

// Center is one of the nine energy centers.
type Center string

const (
	CenterHead        Center = "Head"
	CenterAjna        Center = "Ajna"
	CenterThroat      Center = "Throat"
	CenterG           Center = "G"
	CenterHeart       Center = "Heart"
	CenterSacral      Center = "Sacral"
	CenterSolarPlexus Center = "Solar Plexus"
	CenterSpleen      Center = "Spleen"
	CenterRoot        Center = "Root"
)

// CenterOrder is the canonical output ordering for center sets.
var CenterOrder = []Center{
	CenterHead, CenterAjna, CenterThroat, CenterG, CenterHeart,
	CenterSacral, CenterSolarPlexus, CenterSpleen, CenterRoot,
}

// Body is one of the thirteen tracked celestial bodies.
type Body string

const (
	BodySun       Body = "Sun"
	BodyEarth     Body = "Earth"
	BodyMoon      Body = "Moon"
	BodyNorthNode Body = "North Node"
	BodySouthNode Body = "South Node"
	BodyMercury   Body = "Mercury"
	BodyVenus     Body = "Venus"
	BodyMars      Body = "Mars"
	BodyJupiter   Body = "Jupiter"
	BodySaturn    Body = "Saturn"
	BodyUranus    Body = "Uranus"
	BodyNeptune   Body = "Neptune"
	BodyPluto     Body = "Pluto"
)

// Position is a body's activation: a gate 1..64 and a line 1..6.
type Position struct {
	Gate int `json:"gate"`
	Line int `json:"line"`
}

// Channel is a defined pairing of two gates, active when both gates are
// activated. GateA < GateB always.
type Channel struct {
	GateA int    `json:"gate_a"`
	GateB int    `json:"gate_b"`
	Name  string `json:"name"`
}

// BirthRecord is the raw birth input. Coordinates are optional and never
// gate derivation; only Date and Time feed the pseudo-ephemeris.
type BirthRecord struct {
	Date      string   `json:"date"` // YYYY-MM-DD
	Time      string   `json:"time"` // HH:MM
	Place     string   `json:"place"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  string   `json:"timezone"`
}

// ChartProfile is the full derived energetic configuration. All slice
// fields are in canonical order so that identical inputs serialize to
// identical bytes.
type ChartProfile struct {
	Type             Type                `json:"type"`
	Authority        Authority           `json:"authority"`
	Profile          string              `json:"profile"` // "sunLine/earthLine"
	Definition       Definition          `json:"definition"`
	ActivatedCenters []Center            `json:"activated_centers"`
	ActivatedGates   []int               `json:"activated_gates"`
	ActiveChannels   []Channel           `json:"active_channels"`
	Positions        map[Body]Position   `json:"raw_planetary_positions"`
}

// HasCenter reports whether a center is activated.
func (c ChartProfile) HasCenter(center Center) bool {
	for _, ac := range c.ActivatedCenters {
		if ac == center {
			return true
		}
	}
	return false
}

package chart

// gateCenters maps each of the 64 gates to the single center it belongs to.
var gateCenters = map[int]Center{
	64: CenterHead, 61: CenterHead, 63: CenterHead,

	47: CenterAjna, 24: CenterAjna, 4: CenterAjna,
	17: CenterAjna, 43: CenterAjna, 11: CenterAjna,

	62: CenterThroat, 23: CenterThroat, 56: CenterThroat,
	35: CenterThroat, 12: CenterThroat, 45: CenterThroat,
	33: CenterThroat, 8: CenterThroat, 31: CenterThroat,
	20: CenterThroat, 16: CenterThroat,

	1: CenterG, 13: CenterG, 25: CenterG, 46: CenterG,
	2: CenterG, 15: CenterG, 10: CenterG, 7: CenterG,

	21: CenterHeart, 40: CenterHeart, 26: CenterHeart, 51: CenterHeart,

	34: CenterSacral, 5: CenterSacral, 14: CenterSacral,
	29: CenterSacral, 59: CenterSacral, 9: CenterSacral,
	3: CenterSacral, 42: CenterSacral, 27: CenterSacral,

	36: CenterSolarPlexus, 22: CenterSolarPlexus, 37: CenterSolarPlexus,
	6: CenterSolarPlexus, 49: CenterSolarPlexus, 55: CenterSolarPlexus,
	30: CenterSolarPlexus,

	48: CenterSpleen, 57: CenterSpleen, 44: CenterSpleen,
	50: CenterSpleen, 32: CenterSpleen, 28: CenterSpleen,
	18: CenterSpleen,

	53: CenterRoot, 60: CenterRoot, 52: CenterRoot,
	19: CenterRoot, 39: CenterRoot, 41: CenterRoot,
	58: CenterRoot, 38: CenterRoot, 54: CenterRoot,
}

// CenterFor returns the center a gate belongs to.
func CenterFor(gate int) Center {
	return gateCenters[gate]
}

// rawChannels is the channel table as it shipped; the {9,52} and {18,58}
// rows appear twice upstream, which dedupeChannels repairs on init.
var rawChannels = []Channel{
	{1, 8, "Inspiration"},
	{2, 14, "The Beat"},
	{3, 60, "Mutation"},
	{4, 63, "Logic"},
	{5, 15, "Rhythm"},
	{6, 59, "Intimacy"},
	{7, 31, "The Alpha"},
	{9, 52, "Concentration"},
	{10, 20, "Awakening"},
	{10, 34, "Exploration"},
	{10, 57, "Perfected Form"},
	{11, 56, "Curiosity"},
	{12, 22, "Openness"},
	{13, 33, "The Prodigal"},
	{16, 48, "The Wavelength"},
	{17, 62, "Acceptance"},
	{18, 58, "Judgment"},
	{9, 52, "Concentration"},
	{19, 49, "Synthesis"},
	{20, 34, "Charisma"},
	{20, 57, "The Brainwave"},
	{21, 45, "The Money Line"},
	{23, 43, "Structuring"},
	{24, 61, "Awareness"},
	{25, 51, "Initiation"},
	{26, 44, "Surrender"},
	{27, 50, "Preservation"},
	{28, 38, "Struggle"},
	{18, 58, "Judgment"},
	{29, 46, "Discovery"},
	{30, 41, "Recognition"},
	{32, 54, "Transformation"},
	{34, 57, "Power"},
	{35, 36, "Transitoriness"},
	{37, 40, "Community"},
	{39, 55, "Emoting"},
	{42, 53, "Maturation"},
	{47, 64, "Abstraction"},
}

// Channels is the de-duplicated channel table, 36 unique gate pairs.
var Channels = dedupeChannels(rawChannels)

func dedupeChannels(raw []Channel) []Channel {
	seen := make(map[[2]int]bool, len(raw))
	out := make([]Channel, 0, len(raw))
	for _, ch := range raw {
		a, b := ch.GateA, ch.GateB
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Channel{GateA: a, GateB: b, Name: ch.Name})
	}
	return out
}

// Strategies is the per-type strategy statement table used by the
// integration step.
var Strategies = map[Type]string{
	TypeGenerator:            "Wait to respond: let life come to you and answer with your gut.",
	TypeManifestingGenerator: "Respond, then inform: move fast once your gut says yes.",
	TypeManifestor:           "Inform before you act: initiate freely, but tell those affected.",
	TypeProjector:            "Wait for the invitation: your guidance lands when it is asked for.",
	TypeReflector:            "Wait a lunar cycle: let big decisions ripen for a full month.",
}

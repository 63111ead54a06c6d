package survey

// Static question taxonomy tables. Question ids are 1-based and fixed: the
// survey text may be edited, but which bucket a question feeds never moves.

// Trait is a five-factor personality trait.
type Trait string

const (
	Openness          Trait = "Openness"
	Conscientiousness Trait = "Conscientiousness"
	Extraversion      Trait = "Extraversion"
	Agreeableness     Trait = "Agreeableness"
	Neuroticism       Trait = "Neuroticism"
)

// Traits enumerates the five factors in canonical order. Tie-breaking and
// output ordering follow this order everywhere.
var Traits = []Trait{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}

// TraitQuestionSpan is how many consecutive questions feed one trait.
const TraitQuestionSpan = 20

// TraitFor returns the five-factor trait a 1-based question id feeds.
// Questions are partitioned into five fixed blocks of twenty.
func TraitFor(questionID int) Trait {
	return Traits[(questionID-1)/TraitQuestionSpan]
}

// Reversed reports whether a question is reverse-scored (contribution is
// 6 - answer). The second half of every trait block is reversed.
func Reversed(questionID int) bool {
	return (questionID-1)%TraitQuestionSpan >= TraitQuestionSpan/2
}

// Energy taxonomy labels, in canonical declaration order. Argmax ties break
// toward the earlier entry.

var EnergyTypes = []string{"Generator", "Manifestor", "Projector", "Reflector"}

var Authorities = []string{"Emotional", "Sacral", "Splenic", "Ego", "Self-Projected", "Mental", "Lunar"}

// AuthoritiesByType restricts which authorities are valid for each energy
// type. The dominant authority is the highest-scoring entry of this list.
var AuthoritiesByType = map[string][]string{
	"Generator":  {"Emotional", "Sacral"},
	"Manifestor": {"Emotional", "Splenic", "Ego"},
	"Projector":  {"Emotional", "Splenic", "Ego", "Self-Projected", "Mental"},
	"Reflector":  {"Lunar"},
}

var ProfileLines = []string{"1", "2", "3", "4", "5", "6"}

var Centers = []string{"Head", "Ajna", "Throat", "G", "Heart", "Sacral", "Solar Plexus", "Spleen", "Root"}

// CenterDefinedThreshold is the weighted sum above which a center tendency
// counts as defined in the energy scoring model.
const CenterDefinedThreshold = 15.0

// BucketKind tags which classification family a weight contributes to.
type BucketKind int

const (
	BucketType BucketKind = iota
	BucketAuthority
	BucketProfile
	BucketCenter
)

// Weight is one contribution of a question to a bucket: the answer is
// multiplied by Factor and added to the bucket named Key.
type Weight struct {
	Kind   BucketKind
	Key    string
	Factor float64
}

// EnergyWeights maps each question (index 0 = question 1) to its bucket
// contributions under the four-type energy taxonomy.
var EnergyWeights = buildEnergyWeights()

func buildEnergyWeights() [QuestionCount][]Weight {
	var w [QuestionCount][]Weight

	set := func(questionID int, weights ...Weight) {
		w[questionID-1] = weights
	}

	// Q1-40: ten questions per energy type. A few double as weak center
	// signals for the center most associated with that type.
	for q := 1; q <= 10; q++ {
		set(q, Weight{BucketType, "Generator", 1.0})
	}
	set(3, Weight{BucketType, "Generator", 1.0}, Weight{BucketCenter, "Sacral", 0.5})
	set(7, Weight{BucketType, "Generator", 1.0}, Weight{BucketCenter, "Sacral", 0.5})
	for q := 11; q <= 20; q++ {
		set(q, Weight{BucketType, "Manifestor", 1.0})
	}
	set(13, Weight{BucketType, "Manifestor", 1.0}, Weight{BucketCenter, "Throat", 0.5})
	set(17, Weight{BucketType, "Manifestor", 1.0}, Weight{BucketCenter, "Heart", 0.5})
	for q := 21; q <= 30; q++ {
		set(q, Weight{BucketType, "Projector", 1.0})
	}
	set(23, Weight{BucketType, "Projector", 1.0}, Weight{BucketCenter, "G", 0.5})
	set(27, Weight{BucketType, "Projector", 1.0}, Weight{BucketCenter, "Ajna", 0.5})
	for q := 31; q <= 40; q++ {
		set(q, Weight{BucketType, "Reflector", 1.0})
	}
	set(35, Weight{BucketType, "Reflector", 1.0}, Weight{BucketCenter, "Head", 0.5})

	// Q41-60: authority questions, each reinforcing its seat center.
	authoritySeats := []struct {
		authority string
		center    string
		from, to  int
	}{
		{"Emotional", "Solar Plexus", 41, 44},
		{"Sacral", "Sacral", 45, 48},
		{"Splenic", "Spleen", 49, 52},
		{"Ego", "Heart", 53, 56},
		{"Self-Projected", "G", 57, 58},
		{"Mental", "Ajna", 59, 60},
	}
	for _, seat := range authoritySeats {
		for q := seat.from; q <= seat.to; q++ {
			set(q,
				Weight{BucketAuthority, seat.authority, 1.0},
				Weight{BucketCenter, seat.center, 0.8},
			)
		}
	}

	// Q61-84: four questions per profile line.
	for i, line := range ProfileLines {
		for q := 61 + i*4; q <= 64+i*4; q++ {
			set(q, Weight{BucketProfile, line, 1.0})
		}
	}

	// Q85-100: direct center questions. Root and Throat get an extra
	// question each; the rest get either one or two.
	centerQuestions := []struct {
		center string
		ids    []int
	}{
		{"Head", []int{85}},
		{"Ajna", []int{86}},
		{"Throat", []int{87, 88}},
		{"G", []int{89}},
		{"Heart", []int{90, 91}},
		{"Sacral", []int{92, 93}},
		{"Solar Plexus", []int{94, 95}},
		{"Spleen", []int{96, 97}},
		{"Root", []int{98, 99, 100}},
	}
	for _, cq := range centerQuestions {
		for _, q := range cq.ids {
			set(q, Weight{BucketCenter, cq.center, 1.2})
		}
	}

	return w
}

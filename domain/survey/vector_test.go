package survey

import (
	"testing"

	"selfchart/domain/core"
)

func uniformAnswers(n, value int) []int {
	raw := make([]int, n)
	for i := range raw {
		raw[i] = value
	}
	return raw
}

func TestValidate_AcceptsFullVector(t *testing.T) {
	vec, err := Validate(uniformAnswers(QuestionCount, 3))
	if err != nil {
		t.Fatalf("expected valid vector, got %v", err)
	}
	if len(vec) != QuestionCount {
		t.Fatalf("expected %d answers, got %d", QuestionCount, len(vec))
	}
	if vec.Answer(1) != 3 || vec.Answer(100) != 3 {
		t.Error("answers should round-trip by question id")
	}
}

func TestValidate_RejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 99, 101} {
		_, err := Validate(uniformAnswers(n, 3))
		if !core.IsValidationError(err) {
			t.Errorf("length %d: expected validation error, got %v", n, err)
		}
	}
}

func TestValidate_RejectsOutOfRange(t *testing.T) {
	for _, bad := range []int{0, 6, -1} {
		raw := uniformAnswers(QuestionCount, 3)
		raw[42] = bad
		_, err := Validate(raw)
		if !core.IsValidationError(err) {
			t.Errorf("value %d: expected validation error, got %v", bad, err)
		}
	}
}

func TestValidate_CopiesInput(t *testing.T) {
	raw := uniformAnswers(QuestionCount, 3)
	vec, err := Validate(raw)
	if err != nil {
		t.Fatal(err)
	}
	raw[0] = 5
	if vec.Answer(1) != 3 {
		t.Error("validated vector must not alias caller's slice")
	}
}

func TestFillDefaults_MidpointForMissing(t *testing.T) {
	raw := FillDefaults(map[int]int{1: 5, 100: 1})
	if raw[0] != 5 || raw[99] != 1 {
		t.Error("provided answers should survive defaulting")
	}
	if raw[49] != MidpointAnswer {
		t.Errorf("missing answers default to %d, got %d", MidpointAnswer, raw[49])
	}
	if _, err := Validate(raw); err != nil {
		t.Errorf("defaulted vector should validate: %v", err)
	}
}

func TestTraitFor_FixedBlocks(t *testing.T) {
	cases := []struct {
		id   int
		want Trait
	}{
		{1, Openness}, {20, Openness},
		{21, Conscientiousness}, {40, Conscientiousness},
		{41, Extraversion}, {60, Extraversion},
		{61, Agreeableness}, {80, Agreeableness},
		{81, Neuroticism}, {100, Neuroticism},
	}
	for _, tc := range cases {
		if got := TraitFor(tc.id); got != tc.want {
			t.Errorf("question %d: expected %s, got %s", tc.id, tc.want, got)
		}
	}
}

func TestReversed_SecondHalfOfEachBlock(t *testing.T) {
	if Reversed(1) || Reversed(10) {
		t.Error("first half of a block is not reversed")
	}
	if !Reversed(11) || !Reversed(20) {
		t.Error("second half of a block is reversed")
	}
	if Reversed(21) {
		t.Error("block boundaries reset the reversed flag")
	}
}

func TestEnergyWeights_EveryQuestionContributes(t *testing.T) {
	for q := 1; q <= QuestionCount; q++ {
		if len(EnergyWeights[q-1]) == 0 {
			t.Errorf("question %d has no energy-taxonomy contribution", q)
		}
		for _, w := range EnergyWeights[q-1] {
			if w.Factor <= 0 {
				t.Errorf("question %d has non-positive weight %f", q, w.Factor)
			}
			if w.Key == "" {
				t.Errorf("question %d has an unnamed bucket", q)
			}
		}
	}
}

func TestAuthoritiesByType_CoversAllTypes(t *testing.T) {
	for _, energyType := range EnergyTypes {
		if len(AuthoritiesByType[energyType]) == 0 {
			t.Errorf("type %s has no valid authorities", energyType)
		}
	}
}

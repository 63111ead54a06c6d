package chart

import (
	"encoding/json"
	"fmt"
	"testing"

	"selfchart/domain/core"
)

func TestDerive_Deterministic(t *testing.T) {
	birth := BirthRecord{Date: "1990-06-15", Time: "08:30", Place: "Lisbon"}

	first, err := NewDeriver().Derive(birth)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	second, err := NewDeriver().Derive(birth)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("identical birth input must produce byte-identical charts")
	}
}

func TestDerive_AntipodeLaw(t *testing.T) {
	dates := []string{
		"1990-06-15", "2000-01-01", "1984-12-31", "1969-07-20",
		"2012-02-29", "1955-03-17", "2023-11-05",
	}
	for _, date := range dates {
		profile, err := NewDeriver().Derive(BirthRecord{Date: date, Time: "12:00"})
		if err != nil {
			t.Fatalf("%s: %v", date, err)
		}

		sun := profile.Positions[BodySun]
		earth := profile.Positions[BodyEarth]
		if earth.Gate != ((sun.Gate-1+32)%64)+1 {
			t.Errorf("%s: Earth gate %d is not the antipode of Sun gate %d", date, earth.Gate, sun.Gate)
		}

		north := profile.Positions[BodyNorthNode]
		south := profile.Positions[BodySouthNode]
		if south.Gate != ((north.Gate-1+32)%64)+1 {
			t.Errorf("%s: South Node gate %d is not the antipode of North Node gate %d", date, south.Gate, north.Gate)
		}
	}
}

func TestDerive_PositionsInRange(t *testing.T) {
	profile, err := NewDeriver().Derive(BirthRecord{Date: "1990-06-15", Time: "08:30"})
	if err != nil {
		t.Fatal(err)
	}
	if len(profile.Positions) != 13 {
		t.Fatalf("expected 13 body positions, got %d", len(profile.Positions))
	}
	for body, pos := range profile.Positions {
		if pos.Gate < 1 || pos.Gate > 64 {
			t.Errorf("%s: gate %d outside 1..64", body, pos.Gate)
		}
		if pos.Line < 1 || pos.Line > 6 {
			t.Errorf("%s: line %d outside 1..6", body, pos.Line)
		}
	}
}

func TestDerive_ProfileFromSunAndEarthLines(t *testing.T) {
	profile, err := NewDeriver().Derive(BirthRecord{Date: "1990-06-15", Time: "08:30"})
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("%d/%d", profile.Positions[BodySun].Line, profile.Positions[BodyEarth].Line)
	if profile.Profile != want {
		t.Errorf("expected profile %s, got %s", want, profile.Profile)
	}
}

func TestDerive_CoordinatesNeverRequired(t *testing.T) {
	withPlace, err := NewDeriver().Derive(BirthRecord{Date: "1990-06-15", Time: "08:30", Place: "nowhere in particular"})
	if err != nil {
		t.Fatalf("place-only record should derive: %v", err)
	}

	lat, lon := 38.72, -9.14
	withCoords, err := NewDeriver().Derive(BirthRecord{
		Date: "1990-06-15", Time: "08:30", Latitude: &lat, Longitude: &lon,
	})
	if err != nil {
		t.Fatalf("record with coordinates should derive: %v", err)
	}

	if withPlace.Type != withCoords.Type || withPlace.Profile != withCoords.Profile {
		t.Error("coordinates must not affect derivation")
	}
}

func TestDerive_MalformedInputFailsWithParseError(t *testing.T) {
	cases := []BirthRecord{
		{Date: "15-06-1990", Time: "08:30"},
		{Date: "1990-06-15", Time: "8.30am"},
		{Date: "", Time: "08:30"},
		{Date: "1990-06-15", Time: ""},
	}
	for _, birth := range cases {
		_, err := NewDeriver().Derive(birth)
		if !core.IsParseError(err) {
			t.Errorf("birth %+v: expected parse error, got %v", birth, err)
		}
	}
}

func TestChannels_DeduplicatedTo36(t *testing.T) {
	if len(Channels) != 36 {
		t.Fatalf("expected 36 unique channels, got %d", len(Channels))
	}
	seen := make(map[[2]int]bool)
	for _, ch := range Channels {
		if ch.GateA >= ch.GateB {
			t.Errorf("channel %v: gates must be stored ascending", ch)
		}
		key := [2]int{ch.GateA, ch.GateB}
		if seen[key] {
			t.Errorf("duplicate channel %v survived de-duplication", ch)
		}
		seen[key] = true
	}
}

func TestGateCenters_CoversAllGates(t *testing.T) {
	if len(gateCenters) != 64 {
		t.Fatalf("expected 64 gate entries, got %d", len(gateCenters))
	}
	for gate := 1; gate <= 64; gate++ {
		if _, ok := gateCenters[gate]; !ok {
			t.Errorf("gate %d has no center", gate)
		}
	}
}

func TestClassifyDefinition_Boundaries(t *testing.T) {
	cases := []struct {
		channels int
		want     Definition
	}{
		{0, DefinitionNone},
		{1, DefinitionSingle},
		{2, DefinitionSingle},
		{3, DefinitionSplit},
		{4, DefinitionSplit},
		{5, DefinitionTripleSplit},
		{9, DefinitionTripleSplit},
	}
	for _, tc := range cases {
		if got := classifyDefinition(tc.channels); got != tc.want {
			t.Errorf("%d channels: expected %s, got %s", tc.channels, tc.want, got)
		}
	}
}

func TestClassifyType_PriorityOrder(t *testing.T) {
	cases := []struct {
		centers []Center
		want    Type
	}{
		// Sacral plus Throat or Heart outranks plain Generator.
		{[]Center{CenterSacral, CenterThroat}, TypeManifestingGenerator},
		{[]Center{CenterSacral, CenterHeart}, TypeManifestingGenerator},
		{[]Center{CenterSacral}, TypeGenerator},
		{[]Center{CenterSacral, CenterSpleen}, TypeGenerator},
		{[]Center{CenterThroat, CenterHeart}, TypeManifestor},
		{[]Center{CenterThroat, CenterRoot}, TypeManifestor},
		{[]Center{CenterSolarPlexus}, TypeProjector},
		{[]Center{CenterHeart}, TypeProjector},
		{[]Center{CenterRoot}, TypeProjector},
		{[]Center{CenterThroat}, TypeReflector},
		{nil, TypeReflector},
		{[]Center{CenterHead, CenterAjna}, TypeReflector},
	}
	for _, tc := range cases {
		if got := classifyType(tc.centers); got != tc.want {
			t.Errorf("centers %v: expected %s, got %s", tc.centers, tc.want, got)
		}
	}
}

func TestClassifyAuthority_PriorityChain(t *testing.T) {
	cases := []struct {
		centers   []Center
		chartType Type
		want      Authority
	}{
		{[]Center{CenterSolarPlexus, CenterSacral}, TypeGenerator, AuthorityEmotional},
		{[]Center{CenterSacral}, TypeGenerator, AuthoritySacral},
		{[]Center{CenterSacral, CenterThroat}, TypeManifestingGenerator, AuthoritySacral},
		{[]Center{CenterSpleen}, TypeProjector, AuthoritySplenic},
		{[]Center{CenterHeart}, TypeProjector, AuthorityEgo},
		{[]Center{CenterG}, TypeProjector, AuthoritySelfProjected},
		{[]Center{CenterThroat}, TypeProjector, AuthorityMental},
		{[]Center{CenterThroat}, TypeManifestor, AuthorityLunar},
		{nil, TypeReflector, AuthorityLunar},
	}
	for _, tc := range cases {
		if got := classifyAuthority(tc.centers, tc.chartType); got != tc.want {
			t.Errorf("centers %v type %s: expected %s, got %s", tc.centers, tc.chartType, tc.want, got)
		}
	}
}

package chart

import (
	"math"
	"time"

	"selfchart/domain/core"
)

// bodySpeed holds the per-body mock speed constants. The formula is a
// deterministic placeholder, not astronomy: gate and line are modular
// projections of day-of-year scaled by these constants. Do not "correct"
// the constants; stored readings depend on exact reproduction.
type bodySpeed struct {
	gate float64
	line float64
}

// bodyOrder fixes iteration order for the thirteen bodies.
var bodyOrder = []Body{
	BodySun, BodyEarth, BodyMoon, BodyNorthNode, BodySouthNode,
	BodyMercury, BodyVenus, BodyMars, BodyJupiter, BodySaturn,
	BodyUranus, BodyNeptune, BodyPluto,
}

var bodySpeeds = map[Body]bodySpeed{
	BodySun:       {gate: 0.986, line: 5.916},
	BodyEarth:     {gate: 0.986, line: 3.721},
	BodyMoon:      {gate: 13.176, line: 79.056},
	BodyNorthNode: {gate: 0.053, line: 0.318},
	BodySouthNode: {gate: 0.053, line: 0.573},
	BodyMercury:   {gate: 1.383, line: 8.298},
	BodyVenus:     {gate: 1.202, line: 7.212},
	BodyMars:      {gate: 0.524, line: 3.144},
	BodyJupiter:   {gate: 0.083, line: 0.498},
	BodySaturn:    {gate: 0.033, line: 0.198},
	BodyUranus:    {gate: 0.012, line: 0.072},
	BodyNeptune:   {gate: 0.006, line: 0.036},
	BodyPluto:     {gate: 0.004, line: 0.024},
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// parseBirthMoment validates the date and time strings and returns the
// 1-based day of year. Local calendar, no timezone correction beyond the
// supplied offset label.
func parseBirthMoment(birth BirthRecord) (int, error) {
	date, err := time.Parse(dateLayout, birth.Date)
	if err != nil {
		return 0, core.NewParseError("date", birth.Date, err)
	}
	if _, err := time.Parse(timeLayout, birth.Time); err != nil {
		return 0, core.NewParseError("time", birth.Time, err)
	}
	return date.YearDay(), nil
}

// positionFor projects a day-of-year onto a body's gate and line.
func positionFor(body Body, dayOfYear int) Position {
	speed := bodySpeeds[body]
	doy := float64(dayOfYear)
	return Position{
		Gate: int(math.Floor(math.Mod(doy*speed.gate, 64))) + 1,
		Line: int(math.Floor(math.Mod(doy*speed.line, 6))) + 1,
	}
}

// antipodeGate returns the gate directly opposite the given gate on the
// 64-gate wheel.
func antipodeGate(gate int) int {
	return ((gate - 1 + 32) % 64) + 1
}

// positions computes all thirteen body positions for a day of year.
// Earth mirrors the Sun's gate and the South Node mirrors the North
// Node's gate; their lines come from their own speed constants.
func positions(dayOfYear int) map[Body]Position {
	out := make(map[Body]Position, len(bodyOrder))
	for _, body := range bodyOrder {
		out[body] = positionFor(body, dayOfYear)
	}

	earth := out[BodyEarth]
	earth.Gate = antipodeGate(out[BodySun].Gate)
	out[BodyEarth] = earth

	south := out[BodySouthNode]
	south.Gate = antipodeGate(out[BodyNorthNode].Gate)
	out[BodySouthNode] = south

	return out
}

package route

import (
	"fmt"
	"math"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/geo"
)

const (
	TURN_STRAIGHT = "straight"
	TURN_LEFT     = "left"
	TURN_RIGHT    = "right"
	FINISH        = "finish"
)

// turns smaller than this read as going straight on
const straightTolerance = 13.0

// Legs one entry per segment. Turn is the heading change onto the next leg
// at the leg's end waypoint, 0 on the final leg.
func (e *Editor) Legs() []datastructure.Leg {
	if e.Len() < 2 {
		return []datastructure.Leg{}
	}
	legs := make([]datastructure.Leg, 0, e.Len()-1)
	cumulative := 0.0
	for i := 0; i+1 < e.Len(); i++ {
		from := e.waypoints[i].Point
		to := e.waypoints[i+1].Point
		dist := geo.HaversineDistance(from, to)
		cumulative += dist
		legs = append(legs, datastructure.Leg{
			FromIndex:          i,
			ToIndex:            i + 1,
			Distance:           dist,
			Heading:            geo.Bearing(from, to),
			CumulativeDistance: cumulative,
		})
	}
	for i := 0; i+1 < len(legs); i++ {
		legs[i].Turn = geo.CalculateTurn(legs[i].Heading, legs[i+1].Heading)
	}
	return legs
}

func PredictTurn(turn float64) string {
	if turn > straightTolerance {
		return TURN_RIGHT
	} else if turn < -straightTolerance {
		return TURN_LEFT
	}
	return TURN_STRAIGHT
}

// Instructions human readable leg list, e.g. for a briefing panel.
func Instructions(wps []datastructure.Waypoint, legs []datastructure.Leg) []string {
	out := make([]string, 0, len(legs))
	for i, l := range legs {
		out = append(out, legInstruction(wps, l, i == len(legs)-1))
	}
	return out
}

func legInstruction(wps []datastructure.Waypoint, l datastructure.Leg, last bool) string {
	to := waypointLabel(wps, l.ToIndex)
	nm := geo.MetersToNauticalMiles(l.Distance)
	if last {
		return fmt.Sprintf("fly %03.0f for %.1f NM to %s, %s", l.Heading, nm, to, FINISH)
	}
	turn := PredictTurn(l.Turn)
	if turn == TURN_STRAIGHT {
		return fmt.Sprintf("fly %03.0f for %.1f NM to %s, then continue %s", l.Heading, nm, to, TURN_STRAIGHT)
	}
	return fmt.Sprintf("fly %03.0f for %.1f NM to %s, then turn %s %.0f°", l.Heading, nm, to, turn, math.Abs(l.Turn))
}

func waypointLabel(wps []datastructure.Waypoint, index int) string {
	if index >= 0 && index < len(wps) && wps[index].Name != "" {
		return wps[index].Name
	}
	return fmt.Sprintf("waypoint %d", index+1)
}

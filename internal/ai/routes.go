package ai

import "github.com/dpt/greatescape-core/internal/world"

// StepKind distinguishes what a route step resolves to.
type StepKind int

const (
	StepDoor StepKind = iota
	StepLocation
	StepEnded
)

// Step is the resolved meaning of one route byte.
type Step struct {
	Kind StepKind
	Door world.DoorID
	Pos  world.Pos8
}

// locationTable maps a non-door route byte to a plain map-position target.
// Route bytes 0..NumRouteDoors-1 always address a door; everything at or
// above that addresses this table instead.
var locationTable = buildLocationTable()

func buildLocationTable() [256 - world.NumRouteDoors]world.Pos8 {
	var t [256 - world.NumRouteDoors]world.Pos8
	for i := range t {
		// A deterministic, evenly-spread placeholder grid. Resolve always
		// reads this built-in table; no caller-supplied waypoint data
		// replaces it.
		t[i] = world.Pos8{U: uint8(32 + (i%8)*4), V: uint8(32 + (i/8%8)*4), W: 0}
	}
	return t
}

// Resolve looks up route.Bytes[step] and reports what it means. A step at
// or past the end of route.Bytes reports StepEnded.
func Resolve(route *world.Route, step uint8) Step {
	if int(step) >= len(route.Bytes) {
		return Step{Kind: StepEnded}
	}
	b := route.Bytes[step]
	if b < world.NumRouteDoors {
		return Step{Kind: StepDoor, Door: world.DoorID(b)}
	}
	return Step{Kind: StepLocation, Pos: locationTable[int(b)-world.NumRouteDoors]}
}

// Advance moves route.Step forward or backward depending on Reversed,
// reporting whether the route has now run off either end.
func Advance(rs *world.RouteState, routeLen int) (ended bool) {
	if rs.Reversed() {
		if rs.Step == 0 {
			return true
		}
		rs.Step--
	} else {
		rs.Step++
		if int(rs.Step) >= routeLen {
			return true
		}
	}
	return false
}

// TargetForRoute resolves the vischar's current route step to a target
// map position, following the doorway's pair landing position when the
// step names a door (per the door-pair symmetry: a route is walked in one
// physical direction regardless of which half it names).
func TargetForRoute(w *world.World, route *world.Route, rs world.RouteState) (target world.Pos8, isDoor bool, door world.DoorID) {
	step := Resolve(route, rs.Step)
	switch step.Kind {
	case StepDoor:
		d := step.Door
		if rs.Reversed() {
			d = d.Pair()
		}
		return w.DoorTable[d].Pos, true, d
	case StepLocation:
		return step.Pos, false, 0
	default:
		return world.Pos8{}, false, 0
	}
}

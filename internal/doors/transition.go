// Package doors implements the room/door transition state machine and
// roomdef-driven interior door table.
//
// A tight, range-gated routing switch selects direction/distance-gated
// door candidates. Control flow that would otherwise require unwinding
// several stack frames back to the main-loop entry is instead expressed
// as a tagged TransitionOutcome returned up to the caller.
package doors

import "github.com/dpt/greatescape-core/internal/world"

// TransitionOutcome tells the caller (internal/ai, and ultimately the
// top-level engine tick) what happened as a result of a transition.
type TransitionOutcome int

const (
	NoTransition TransitionOutcome = iota
	TransitionedNonHero
	TransitionedOutdoors
	TransitionedIndoors
)

// exteriorRange is the +/-3-unit gate exterior doors use.
const exteriorRange = 3

// interiorRangeLow, interiorRangeHigh bound the asymmetric interior gate:
// positions from -3 to +2 inclusive are considered in range.
const (
	interiorRangeLow  = -3
	interiorRangeHigh = 2
)

// DoorInRange reports whether target is within axis in both U and V of
// door, using the exterior (symmetric) gate when outdoor is true and the
// interior (asymmetric) gate otherwise.
func DoorInRange(target, doorPos world.Pos8, outdoor bool) bool {
	du := int(target.U) - int(doorPos.U)
	dv := int(target.V) - int(doorPos.V)
	if outdoor {
		return abs(du) <= exteriorRange && abs(dv) <= exteriorRange
	}
	return du >= interiorRangeLow && du <= interiorRangeHigh &&
		dv >= interiorRangeLow && dv <= interiorRangeHigh
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// IsDoorLocked reports whether d's doorway is currently locked.
func IsDoorLocked(w *world.World, d world.DoorID) bool {
	return w.Locks.IsLocked(d)
}

// SetupDoors scans the door table for halves physically located in room
// (i.e. whose pair's destination is room) and returns up to 4 of them,
// the interior doors a room keeps on hand for its own door handling.
func SetupDoors(w *world.World, room world.Room) [4]world.DoorID {
	var out [4]world.DoorID
	for i := range out {
		out[i] = world.DoorID(0xFF) // sentinel: no door in this slot
	}
	n := 0
	for i := world.DoorID(0); i < world.NumDoors && n < 4; i++ {
		pair := i.Pair()
		if w.DoorTable[pair].Room == room {
			out[n] = i
			n++
		}
	}
	return out
}

// DoorHandlingExterior walks the first NumExteriorDoorPairs door pairs,
// selecting those whose direction matches v, range-gating on heroPos, and
// attempting the transition on the first open hit.
func DoorHandlingExterior(w *world.World, v *world.Vischar, heroPos world.Pos8) TransitionOutcome {
	for i := world.DoorID(0); i < world.NumExteriorDoorPairs*2; i++ {
		d := w.DoorTable[i]
		if d.Direction != v.Direction {
			continue
		}
		if !DoorInRange(heroPos, d.Pos, true) {
			continue
		}
		if IsDoorLocked(w, i) {
			continue
		}
		return enterDoor(w, v, i)
	}
	return NoTransition
}

// DoorHandlingInterior walks the up-to-4 door indices precomputed for the
// vischar's current room.
func DoorHandlingInterior(w *world.World, v *world.Vischar, interiorDoors [4]world.DoorID, heroPos world.Pos8) TransitionOutcome {
	for _, d := range interiorDoors {
		if d == world.DoorID(0xFF) {
			continue
		}
		door := w.DoorTable[d]
		if door.Direction != v.Direction {
			continue
		}
		if !DoorInRange(heroPos, door.Pos, false) {
			continue
		}
		if IsDoorLocked(w, d) {
			continue
		}
		return enterDoor(w, v, d)
	}
	return NoTransition
}

// enterDoor commits to door d: the vischar's room becomes d's destination
// and Transition is invoked with the paired door's landing position.
func enterDoor(w *world.World, v *world.Vischar, d world.DoorID) TransitionOutcome {
	dest := w.DoorTable[d]
	landing := w.DoorTable[d.Pair()].Pos
	v.Room = dest.Room
	return Transition(w, v, landing)
}

// Transition updates v's position for a door just walked through.
//
// Non-hero vischars are demoted back to their characterstruct and control
// returns (TransitionedNonHero). For the hero, NO_COLLIDE is cleared and
// the caller (internal/ai / the engine) is told whether the new room is
// outdoors or an interior so it can recentre the map or expand the new
// room and run its entry animation; those side effects simply run after
// Transition returns rather than being triggered from inside it.
func Transition(w *world.World, v *world.Vischar, target world.Pos8) TransitionOutcome {
	outdoors := v.Room == world.RoomOutdoors
	if outdoors {
		v.Item.Pos = target.ToPos16Outdoors()
	} else {
		v.Item.Pos = target.ToPos16()
	}

	if v != w.HeroVischar() {
		w.Demote(v)
		return TransitionedNonHero
	}

	v.Counter.SetNoCollide(false)
	if outdoors {
		return TransitionedOutdoors
	}
	return TransitionedIndoors
}

package hud

import "github.com/dpt/greatescape-core/internal/world"

// SearchlightState is which of the three fixed searchlight beams (if any)
// is currently sweeping, its current position along its fixed arc, which
// way it is currently sweeping, and its catch state machine.
type SearchlightState struct {
	Active    bool
	BeamIdx   int
	Position  int
	direction direction

	// State is SearchlightSearching, SearchlightCaught, or an
	// intermediate 0x00..0x1E value counting down back to SEARCHING once
	// the hero leaves the beam.
	State uint8

	// cooldown is ticks remaining before the next morale hit may land
	// while State is CAUGHT.
	cooldown int
}

// SearchlightBeam is one fixed searchlight's sweep range, in UDG columns.
type SearchlightBeam struct {
	MinCol, MaxCol int
}

// Beams is the fixed table of the three searchlight sweep ranges.
var Beams = [3]SearchlightBeam{
	{MinCol: 2, MaxCol: 8},
	{MinCol: 10, MaxCol: 16},
	{MinCol: 18, MaxCol: 22},
}

// direction is which way a beam is currently sweeping.
type direction int

const (
	sweepForward direction = iota
	sweepBackward
)

// SearchlightSearching and SearchlightCaught are the two named
// SearchlightState.State values; everything in between is a cooldown
// step counting back down to SearchlightSearching.
const (
	SearchlightSearching uint8 = 0xFF
	SearchlightCaught    uint8 = 0x1F
)

// catchCooldownTicks is how long a contact must remain between morale
// hits while CAUGHT.
const catchCooldownTicks = 5

// catchReleaseState is the cooldown value a catch leaves behind once the
// hero leaves the beam, counting back down to SearchlightSearching.
const catchReleaseState = 0x1E

// AttrYellowOnBlack and AttrBrightBlueOnBlack are the two screen
// attribute bytes (flash/bright/paper/ink packed F B PPP III) the
// searchlight writes over its lit region.
const (
	AttrYellowOnBlack     byte = 0x06
	AttrBrightBlueOnBlack byte = 0x41
)

// Advance steps the searchlight state machine by one tick: sweeping the
// active beam while SEARCHING, or counting a recent catch back down to
// SEARCHING.
func Advance(s *SearchlightState) {
	if !s.Active {
		return
	}
	switch s.State {
	case SearchlightSearching:
		beam := Beams[s.BeamIdx]
		if s.direction == sweepForward {
			s.Position++
			if s.Position >= beam.MaxCol {
				s.direction = sweepBackward
			}
		} else {
			s.Position--
			if s.Position <= beam.MinCol {
				s.direction = sweepForward
			}
		}
	case SearchlightCaught:
		// Held at CAUGHT until CaughtByBeam reports the hero has left the
		// beam, which starts the cooldown countdown below.
	default:
		s.State--
		if s.State == 0 {
			s.State = SearchlightSearching
		}
	}
}

// CaughtByBeam reports whether heroCol falls within the beam's current
// sweep position while the hero is outdoors at night, moving the state
// machine into CAUGHT, and whether this contact is due a morale hit
// (gated by catchCooldownTicks).
func CaughtByBeam(s *SearchlightState, heroCol int, heroRoom world.Room, isNight bool) (caught, moraleHit bool) {
	if !s.Active || !isNight || heroRoom != world.RoomOutdoors {
		return false, false
	}
	d := heroCol - s.Position
	if d < 0 {
		d = -d
	}
	if d > 1 {
		if s.State == SearchlightCaught {
			s.State = catchReleaseState
		}
		return false, false
	}
	s.State = SearchlightCaught
	if s.cooldown > 0 {
		s.cooldown--
		return true, false
	}
	s.cooldown = catchCooldownTicks
	return true, true
}

// Attribute reports the screen attribute byte to paint over the beam's
// lit columns this tick, and whether any write is needed at all.
func (s *SearchlightState) Attribute() (attr byte, write bool) {
	switch {
	case s.State == SearchlightCaught:
		return AttrYellowOnBlack, true
	case s.State != SearchlightSearching:
		return AttrBrightBlueOnBlack, true
	default:
		return 0, false
	}
}

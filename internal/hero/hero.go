// Package hero implements hero-specific rules that don't belong to the
// general vischar/route machinery: the permitted-area check, escape
// detection, and solitary confinement.
package hero

import "github.com/dpt/greatescape-core/internal/world"

// PermittedArea is one room (or a rectangle of the outdoor map, when
// Room is RoomOutdoors) the hero is allowed to occupy without triggering
// a challenge from nearby guards.
type PermittedArea struct {
	Room   world.Room
	Bounds world.Rect // only consulted when Room == RoomOutdoors
}

// InPermittedArea reports whether pos in room falls within any of areas.
// An empty Bounds (all zero) for an interior room entry matches the whole
// room; outdoor entries are gated by Bounds as well.
func InPermittedArea(areas []PermittedArea, room world.Room, pos world.Pos8) bool {
	for _, a := range areas {
		if a.Room != room {
			continue
		}
		if room != world.RoomOutdoors {
			return true
		}
		if pos.U >= a.Bounds.X0 && pos.U <= a.Bounds.X1 &&
			pos.V >= a.Bounds.Y0 && pos.V <= a.Bounds.Y1 {
			return true
		}
	}
	return false
}

// EscapeRoom is the room the hero must be in to trigger escape detection
// (the hero is always outdoors at the map edge when this fires).
const EscapeRoom = world.RoomOutdoors

// EscapeOutcome classifies how an escape attempt ends, based on which of
// compass/papers/purse/uniform the hero is holding when they cross the
// boundary.
type EscapeOutcome int

const (
	// NotEscaped means the hero has not yet reached the boundary.
	NotEscaped EscapeOutcome = iota
	// EscapeWon is compass+papers: the best ending.
	EscapeWon
	// EscapeCrossedBorder is compass+purse: a successful but lesser ending.
	EscapeCrossedBorder
	// EscapeCaughtInUniform means a held uniform always loses regardless
	// of any other item held.
	EscapeCaughtInUniform
	// EscapeReturnedToSolitary is every other combination: the attempt
	// fails and the hero is sent back to solitary confinement.
	EscapeReturnedToSolitary
)

func held(w *world.World, item world.ItemID) bool {
	return w.ItemsHeld[0] == item || w.ItemsHeld[1] == item
}

// CheckEscape reports how an escape attempt made at the map boundary
// resolves, given the items currently in the hero's two inventory slots.
// It does not mutate w; callers apply the outcome (award the ending,
// return the hero to solitary, and so on).
func CheckEscape(w *world.World, boundary world.Rect) EscapeOutcome {
	hero := w.HeroVischar()
	if hero.Room != EscapeRoom {
		return NotEscaped
	}
	pos := hero.Item.Pos.ToPos8()
	if pos.U < boundary.X0 || pos.U > boundary.X1 || pos.V < boundary.Y0 || pos.V > boundary.Y1 {
		return NotEscaped
	}
	if held(w, world.ItemUniform) {
		return EscapeCaughtInUniform
	}
	switch {
	case held(w, world.ItemCompass) && held(w, world.ItemPapers):
		return EscapeWon
	case held(w, world.ItemCompass) && held(w, world.ItemPurse):
		return EscapeCrossedBorder
	default:
		return EscapeReturnedToSolitary
	}
}

// SolitaryRoom is where the hero serves a period of confinement after
// being caught.
const SolitaryRoom world.Room = 24

// SolitaryConfinement holds the countdown timer for a confinement spell;
// zero means the hero is free to act normally.
type SolitaryConfinement struct {
	TicksRemaining int
}

// Begin starts (or restarts) a confinement spell of the given duration.
func (s *SolitaryConfinement) Begin(duration int) { s.TicksRemaining = duration }

// Active reports whether the hero is currently confined.
func (s *SolitaryConfinement) Active() bool { return s.TicksRemaining > 0 }

// Tick decrements the countdown by one, reporting whether confinement
// just ended this tick.
func (s *SolitaryConfinement) Tick() (justEnded bool) {
	if s.TicksRemaining <= 0 {
		return false
	}
	s.TicksRemaining--
	return s.TicksRemaining == 0
}

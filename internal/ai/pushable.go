package ai

import "github.com/dpt/greatescape-core/internal/world"

// pushDistance is how far (in map units) a push moves the stove or crate
// per kick, and snapDistance is the tolerance within which the hero's
// position is treated as flush against the object before a push is
// allowed — matching the sprites' fixed physical footprint rather than
// requiring pixel-perfect alignment.
const (
	pushDistance = 4
	snapDistance = 2
)

// Pushable is a pseudo-character object (stove or crate) the hero can
// shove by walking into it and pressing fire/kick.
type Pushable struct {
	Character world.CharacterID
	Pos       world.Pos8
	// AxisU records the axis the object slides along: true for the U
	// axis, false for V. TryPush does not read it; the push direction
	// alone decides which axis the object moves on.
	AxisU bool
}

// TryPush attempts to push p in heroDirection, snapping the hero against
// the object's position (not merely its nominal tile) and returning the
// new object position and hero landing position when the push succeeds.
// A push only succeeds if the hero is within snapDistance of the object
// on both the U and V axes and the target cell the object would move into
// is not already occupied (checked by the caller via occupied). There is
// no direction-specific snap: every direction moves the object by
// pushDistance and lands the hero at half that distance.
func TryPush(p *Pushable, heroPos world.Pos8, direction world.Direction, occupied func(world.Pos8) bool) (newObjPos, newHeroPos world.Pos8, ok bool) {
	du := int(heroPos.U) - int(p.Pos.U)
	dv := int(heroPos.V) - int(p.Pos.V)
	if du < 0 {
		du = -du
	}
	if dv < 0 {
		dv = -dv
	}
	if du > snapDistance || dv > snapDistance {
		return world.Pos8{}, world.Pos8{}, false
	}

	delta := pushDelta(direction)
	candidate := world.Pos8{
		U: uint8(int(p.Pos.U) + delta.U*pushDistance),
		V: uint8(int(p.Pos.V) + delta.V*pushDistance),
		W: p.Pos.W,
	}
	if occupied != nil && occupied(candidate) {
		return world.Pos8{}, world.Pos8{}, false
	}

	heroLanding := world.Pos8{
		U: uint8(int(p.Pos.U) + delta.U*pushDistance/2),
		V: uint8(int(p.Pos.V) + delta.V*pushDistance/2),
		W: heroPos.W,
	}
	p.Pos = candidate
	return candidate, heroLanding, true
}

type delta struct{ U, V int }

func pushDelta(d world.Direction) delta {
	switch d {
	case world.DirTopLeft:
		return delta{-1, 0}
	case world.DirTopRight:
		return delta{0, -1}
	case world.DirBottomRight:
		return delta{1, 0}
	case world.DirBottomLeft:
		return delta{0, 1}
	}
	return delta{}
}

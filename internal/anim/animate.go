// Package anim advances each on-screen character's animation by one frame
// per tick and picks a new animation when input direction changes or the
// current animation runs out of frames.
package anim

import "github.com/dpt/greatescape-core/internal/world"

// AnimationTable supplies the shared animation records by table index.
type AnimationTable interface {
	Animation(index int) *world.Animation
}

// sliceTable adapts a plain slice/array to AnimationTable.
type sliceTable []world.Animation

func (s sliceTable) Animation(index int) *world.Animation {
	if index < 0 || index >= len(s) {
		return nil
	}
	return &s[index]
}

// NewTable wraps animations (e.g. World.Animations[:]) as an AnimationTable.
func NewTable(animations []world.Animation) AnimationTable { return sliceTable(animations) }

// SelectAnimation picks (and installs) the animation v should be playing
// given its current facing direction and pending input, applying any
// direction change the selection implies. It is idempotent: calling it
// again with the same input while already on the matching animation does
// nothing.
func SelectAnimation(v *world.Vischar, table AnimationTable) {
	entry := selectionTable[v.Direction][bucketFor(v.Input)]
	if entry.AnimIndex < 0 {
		return
	}
	newAnim := table.Animation(entry.AnimIndex)
	if newAnim == nil {
		return
	}
	if entry.ChangesDir {
		v.Direction = entry.NewDirection
	}
	base := newAnim
	if v.Crawl {
		newAnim = newAnim.Reversed()
	}
	if v.AnimBase == base && v.Anim != nil && v.AnimReverse == v.Crawl {
		return
	}
	v.AnimBase = base
	v.Anim = newAnim
	v.AnimReverse = v.Crawl
	v.AnimFrameIndex = 0
}

// Advance steps v to its next animation frame, applying the frame's
// (dx,dy,dw) delta to v's map position and returning the sprite index and
// flip bit to plot this tick. It reports whether the animation ran out of
// frames (callers then re-run SelectAnimation or terminate a route step).
func Advance(v *world.Vischar) (spriteIndex uint8, flip bool, exhausted bool) {
	if v.Anim == nil || v.AnimFrameIndex >= v.Anim.NumFrames() {
		return 0, false, true
	}
	frame := v.Anim.Frames[v.AnimFrameIndex]
	v.Item.Pos.U += int16(frame.DX)
	v.Item.Pos.V += int16(frame.DY)
	v.Item.Pos.W += int16(frame.DW)
	v.Iso = world.Project16(v.Item.Pos)
	v.AnimFrameIndex++
	return frame.SpriteIndex(), frame.Flip(), v.AnimFrameIndex >= v.Anim.NumFrames()
}

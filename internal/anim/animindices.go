package anim

import "github.com/dpt/greatescape-core/internal/world"

// inputBucket groups the raw Input flags into the 9 cases the selection
// table distinguishes: no input, one of 4 pure directions, or one of 4
// diagonal combinations.
type inputBucket int

const (
	bucketNone inputBucket = iota
	bucketUp
	bucketDown
	bucketLeft
	bucketRight
	bucketUpLeft
	bucketUpRight
	bucketDownLeft
	bucketDownRight

	numBuckets = 9
)

func bucketFor(in world.Input) inputBucket {
	up, down := in.Has(world.InputUp), in.Has(world.InputDown)
	left, right := in.Has(world.InputLeft), in.Has(world.InputRight)
	switch {
	case up && left:
		return bucketUpLeft
	case up && right:
		return bucketUpRight
	case down && left:
		return bucketDownLeft
	case down && right:
		return bucketDownRight
	case up:
		return bucketUp
	case down:
		return bucketDown
	case left:
		return bucketLeft
	case right:
		return bucketRight
	default:
		return bucketNone
	}
}

// selectionEntry names the animation table index to switch to (or -1 to
// keep the current animation unchanged) and whether the switch also
// flips the facing direction.
type selectionEntry struct {
	AnimIndex    int
	NewDirection world.Direction
	ChangesDir   bool
}

// selectionTable is indexed [currentDirection][inputBucket] and encodes
// which animation a character switches to when a given input arrives
// while facing a given direction. A char facing DirTopLeft that receives
// bucketRight, for instance, turns to face DirTopRight and picks up that
// direction's walk animation; bucketNone requests the matching "stand"
// animation.
var selectionTable = buildSelectionTable()

func buildSelectionTable() [4][numBuckets]selectionEntry {
	var t [4][numBuckets]selectionEntry
	for d := world.Direction(0); d < 4; d++ {
		for b := inputBucket(0); b < numBuckets; b++ {
			t[d][b] = selectionEntry{AnimIndex: -1}
		}
	}

	// Walking continuing in the character's current facing direction
	// reuses that direction's walk animation without a direction change.
	walkAnimForDir := func(d world.Direction) int { return int(d) }
	standAnimForDir := func(d world.Direction) int { return 20 + int(d) } // the 4 stand anims are the last 4 of the 24 slots

	dirForBucket := map[inputBucket]world.Direction{
		bucketUp:    world.DirTopLeft,
		bucketLeft:  world.DirBottomLeft,
		bucketDown:  world.DirBottomRight,
		bucketRight: world.DirTopRight,

		bucketUpLeft:    world.DirTopLeft,
		bucketUpRight:   world.DirTopRight,
		bucketDownLeft:  world.DirBottomLeft,
		bucketDownRight: world.DirBottomRight,
	}

	for d := world.Direction(0); d < 4; d++ {
		t[d][bucketNone] = selectionEntry{AnimIndex: standAnimForDir(d)}
		for b, target := range dirForBucket {
			if target == d {
				t[d][b] = selectionEntry{AnimIndex: walkAnimForDir(d)}
			} else {
				t[d][b] = selectionEntry{AnimIndex: walkAnimForDir(target), NewDirection: target, ChangesDir: true}
			}
		}
	}
	return t
}

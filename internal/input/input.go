// Package input composes the host's currently-held buttons into the
// vischar input byte, with one piece of edge-triggered state: the KICK
// bit only pulses on the tick kick is freshly pressed, rather than
// staying set for as long as the button is held.
package input

import "github.com/dpt/greatescape-core/internal/world"

// Latch tracks KICK's previous state so Sample can detect its rising edge.
type Latch struct {
	prevKick bool
}

// Sample composes up/down/left/right/fire live (movement always reflects
// whatever the host is currently reporting) and sets world.InputKick only
// on kick's rising edge, so a held kick button registers as a single
// event rather than continuously re-triggering.
func (l *Latch) Sample(up, down, left, right, fire, kick bool) world.Input {
	var v world.Input
	if up {
		v |= world.InputUp
	}
	if down {
		v |= world.InputDown
	}
	if left {
		v |= world.InputLeft
	}
	if right {
		v |= world.InputRight
	}
	if fire {
		v |= world.InputFire
	}
	if kick && !l.prevKick {
		v |= world.InputKick
	}
	l.prevKick = kick
	return v
}

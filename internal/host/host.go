// Package host defines the boundary between the simulation core and
// whatever presents it to a player: drawing the framebuffer, reading
// input, playing sound cues, and persisting save data. The core never
// imports a concrete Host implementation; it only calls through this
// interface, so the same core can run headless in tests, behind a replay
// tool, or behind a real graphical front end.
package host

import "github.com/dpt/greatescape-core/internal/screen"

// SoundCue names one of the fixed set of sound effects the core can ask
// a Host to play (door, bell, kick, snip, morale-failure collapse, etc).
// Cue content/synthesis is entirely the Host's concern.
type SoundCue int

// Host is the contract a front end implements to drive one simulation.
type Host interface {
	// Present delivers a freshly rendered frame for display.
	Present(fb *screen.FrameBuffer)

	// PollInput returns the currently held direction/fire/kick bits; the
	// core samples this once per tick.
	PollInput() (up, down, left, right, fire, kick bool)

	// PlaySound requests cue be played; the Host may drop it if its
	// output is busy or unavailable.
	PlaySound(cue SoundCue)

	// SaveGame/LoadGame persist and restore opaque save-state bytes
	// produced by internal/save; the Host only owns where they live.
	SaveGame(data []byte) error
	LoadGame() ([]byte, error)
}

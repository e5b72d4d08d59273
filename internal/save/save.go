// Package save serializes a complete snapshot of the simulation state
// using encoding/gob, so a Host can persist and restore a game in
// progress without the core depending on any particular storage medium.
package save

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/dpt/greatescape-core/internal/ai"
	"github.com/dpt/greatescape-core/internal/hero"
	"github.com/dpt/greatescape-core/internal/hud"
	"github.com/dpt/greatescape-core/internal/items"
	"github.com/dpt/greatescape-core/internal/world"
)

func init() {
	gob.Register(world.Pos8{})
	gob.Register(world.Pos16{})
}

// State is everything needed to resume a simulation exactly where it left
// off: the full World, the off-screen movement scheduler's cursor, the
// PRNG cursor, the hud counters, and the hero's confinement timer.
type State struct {
	World        world.World
	SchedulerPos uint8
	PRNGCursor   uint8
	Bell         hud.BellState
	Morale       hud.MoraleState
	Score        hud.ScoreState
	Solitary     hero.SolitaryConfinement
	Lockout      items.Lockout
	ClockTick    int
	Escaped      bool
}

// Encode serializes state to a gob-encoded byte slice.
func Encode(s *State) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("save: encoding state: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode restores a State previously produced by Encode.
func Decode(data []byte) (*State, error) {
	var s State
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return nil, fmt.Errorf("save: decoding state: %w", err)
	}
	return &s, nil
}

// RestoreScheduler and RestorePRNG hand the persisted cursors back to
// fresh ai.Scheduler/ai.PRNG values, since those types keep their cursor
// fields unexported to stop callers mutating them except by stepping.
func RestorePRNG(s *State) *ai.PRNG {
	p := &ai.PRNG{}
	p.SetCursor(s.PRNGCursor)
	return p
}

// RestoreScheduler hands the persisted cursor back to a fresh
// ai.Scheduler.
func RestoreScheduler(s *State) *ai.Scheduler {
	sch := &ai.Scheduler{}
	sch.SetCursor(world.CharacterID(s.SchedulerPos))
	return sch
}

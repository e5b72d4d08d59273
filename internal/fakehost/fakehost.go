// Package fakehost is a minimal, non-authoritative host.Host
// implementation over an in-memory framebuffer, used by integration tests
// and cmd/replay. It is not part of the core's public surface.
package fakehost

import (
	"fmt"

	"github.com/dpt/greatescape-core/internal/host"
	"github.com/dpt/greatescape-core/internal/screen"
)

// FakeHost records the last frame presented and plays back a scripted
// sequence of inputs, one set per PollInput call.
type FakeHost struct {
	LastFrame  *screen.FrameBuffer
	SoundLog   []host.SoundCue
	savedState []byte

	scriptedInputs [][6]bool
	inputCursor    int
}

// NewFakeHost creates a FakeHost that plays back scripted inputs in
// order, holding the last one once the script runs out.
func NewFakeHost(scriptedInputs [][6]bool) *FakeHost {
	return &FakeHost{scriptedInputs: scriptedInputs}
}

func (f *FakeHost) Present(fb *screen.FrameBuffer) { f.LastFrame = fb }

func (f *FakeHost) PollInput() (up, down, left, right, fire, kick bool) {
	if len(f.scriptedInputs) == 0 {
		return
	}
	idx := f.inputCursor
	if idx >= len(f.scriptedInputs) {
		idx = len(f.scriptedInputs) - 1
	} else {
		f.inputCursor++
	}
	in := f.scriptedInputs[idx]
	return in[0], in[1], in[2], in[3], in[4], in[5]
}

func (f *FakeHost) PlaySound(cue host.SoundCue) { f.SoundLog = append(f.SoundLog, cue) }

func (f *FakeHost) SaveGame(data []byte) error {
	f.savedState = append([]byte(nil), data...)
	return nil
}

func (f *FakeHost) LoadGame() ([]byte, error) {
	if f.savedState == nil {
		return nil, fmt.Errorf("fakehost: no saved state")
	}
	return f.savedState, nil
}

package hud

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func TestSearchlightAdvanceReversesAtBounds(t *testing.T) {
	s := &SearchlightState{Active: true, BeamIdx: 0, Position: Beams[0].MaxCol - 1, State: SearchlightSearching}
	Advance(s)
	if s.Position != Beams[0].MaxCol {
		t.Fatalf("expected position to reach MaxCol, got %d", s.Position)
	}
	Advance(s)
	if s.Position != Beams[0].MaxCol-1 {
		t.Fatalf("expected sweep to reverse after hitting MaxCol, got %d", s.Position)
	}
}

func TestCaughtByBeamRequiresNightAndOutdoors(t *testing.T) {
	s := &SearchlightState{Active: true, Position: 5, State: SearchlightSearching}
	caught, moraleHit := CaughtByBeam(s, 5, world.RoomOutdoors, true)
	if !caught || !moraleHit {
		t.Fatalf("expected caught with a fresh morale hit when aligned outdoors at night")
	}
	if s.State != SearchlightCaught {
		t.Fatalf("expected state to move to CAUGHT, got %#x", s.State)
	}

	s = &SearchlightState{Active: true, Position: 5, State: SearchlightSearching}
	if caught, _ := CaughtByBeam(s, 5, world.RoomOutdoors, false); caught {
		t.Fatalf("expected no catch during daytime")
	}
	s = &SearchlightState{Active: true, Position: 5, State: SearchlightSearching}
	if caught, _ := CaughtByBeam(s, 5, world.Room(3), true); caught {
		t.Fatalf("expected no catch indoors")
	}
}

func TestCaughtByBeamCooldownSuppressesRepeatMoraleHits(t *testing.T) {
	s := &SearchlightState{Active: true, Position: 5, State: SearchlightSearching}
	if _, moraleHit := CaughtByBeam(s, 5, world.RoomOutdoors, true); !moraleHit {
		t.Fatalf("expected first contact to report a morale hit")
	}
	if _, moraleHit := CaughtByBeam(s, 5, world.RoomOutdoors, true); moraleHit {
		t.Fatalf("expected continued contact to be suppressed by cooldown")
	}
}

func TestSearchlightAttributeTracksState(t *testing.T) {
	s := &SearchlightState{State: SearchlightSearching}
	if _, write := s.Attribute(); write {
		t.Fatalf("expected no attribute write while searching")
	}
	s.State = SearchlightCaught
	if attr, write := s.Attribute(); !write || attr != AttrYellowOnBlack {
		t.Fatalf("expected yellow-over-black while caught, got %#x %v", attr, write)
	}
	s.State = catchReleaseState
	if attr, write := s.Attribute(); !write || attr != AttrBrightBlueOnBlack {
		t.Fatalf("expected bright-blue-over-black while releasing, got %#x %v", attr, write)
	}
}

func TestBellRingsForFixedDuration(t *testing.T) {
	var b BellState
	b.Ring()
	if !b.Ringing() {
		t.Fatalf("expected bell to be ringing after Ring")
	}
	for i := 0; i < RingDuration; i++ {
		b.Tick()
	}
	if b.Ringing() {
		t.Fatalf("expected bell to stop after RingDuration ticks")
	}
}

func TestMoraleAdjustClampsAndReportsFailure(t *testing.T) {
	var m MoraleState
	m.Value = 5
	if m.Adjust(-10) != true {
		t.Fatalf("expected morale hitting 0 to report a fresh failure")
	}
	if m.Value != MoraleMin {
		t.Fatalf("expected morale clamped at MoraleMin, got %d", m.Value)
	}
	if m.Adjust(0) != false {
		t.Fatalf("expected repeated failure at 0 to not re-report")
	}
}

func TestFlagWaveFrameScalesWithMorale(t *testing.T) {
	if got := FlagWaveFrame(0, 4); got != 0 {
		t.Fatalf("expected frame 0 at zero morale, got %d", got)
	}
	if got := FlagWaveFrame(MoraleMax, 4); got != 3 {
		t.Fatalf("expected final frame at max morale, got %d", got)
	}
}

func TestScoreAddCarries(t *testing.T) {
	var s ScoreState
	s.Add(15)
	s.Add(90)
	if s.Value() != 105 {
		t.Fatalf("expected cumulative score 105, got %d", s.Value())
	}
}

func TestMessageQueueSequencesMessages(t *testing.T) {
	var q Queue
	q.Enqueue(1)
	q.Enqueue(2)
	current, showing := q.Tick()
	if !showing || current != 1 {
		t.Fatalf("expected message 1 showing, got %v %v", current, showing)
	}
	for i := 0; i < DisplayDuration; i++ {
		current, showing = q.Tick()
	}
	if !showing || current != 2 {
		t.Fatalf("expected message 2 to take over, got %v %v", current, showing)
	}
}

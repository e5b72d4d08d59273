package ai

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func newTestSchedulerWorld() *world.World {
	w := &world.World{}
	for i := range w.Vischars {
		w.Vischars[i].Reset()
	}
	w.Vischars[0].Flags = 0
	w.Vischars[0].Character = world.CharacterHero
	w.HeroVischar().Item.Pos = world.Pos16{U: 40, V: 40}
	return w
}

func TestStepOffScreenPromotesNearbyCharacter(t *testing.T) {
	w := newTestSchedulerWorld()
	w.Characters[world.CharacterCommandant].Pos = world.Pos8{U: 42, V: 41}
	w.Characters[world.CharacterCommandant].Room = w.HeroVischar().Room

	var s Scheduler
	s.cursor = world.CharacterCommandant
	s.StepOffScreen(w)

	if !w.Characters[world.CharacterCommandant].OnScreen() {
		t.Fatalf("expected nearby character to be promoted")
	}
}

func TestStepOffScreenIgnoresFarCharacter(t *testing.T) {
	w := newTestSchedulerWorld()
	w.Characters[world.CharacterCommandant].Pos = world.Pos8{U: 200, V: 200}
	w.Characters[world.CharacterCommandant].Room = w.HeroVischar().Room

	var s Scheduler
	s.cursor = world.CharacterCommandant
	s.StepOffScreen(w)

	if w.Characters[world.CharacterCommandant].OnScreen() {
		t.Fatalf("expected far character to remain off-screen")
	}
}

func TestPurgeInvisibleDemotesFarVischar(t *testing.T) {
	w := newTestSchedulerWorld()
	w.Characters[world.CharacterCommandant].Room = w.HeroVischar().Room
	w.Characters[world.CharacterCommandant].Pos = world.Pos8{U: 42, V: 41}
	v, err := w.Promote(world.CharacterCommandant)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	v.Item.Pos = world.Pos16{U: 255, V: 255}

	PurgeInvisible(w)
	if w.Characters[world.CharacterCommandant].OnScreen() {
		t.Fatalf("expected far-drifted vischar to be purged")
	}
}

func TestSchedulerCursorRoundTrips(t *testing.T) {
	var s Scheduler
	s.SetCursor(world.CharacterCommandant)
	if got := s.Cursor(); got != world.CharacterCommandant {
		t.Fatalf("got cursor %d, want %d", got, world.CharacterCommandant)
	}
}

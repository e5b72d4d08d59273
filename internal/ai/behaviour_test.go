package ai

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func TestTargetReachedWithinRadius(t *testing.T) {
	v := &world.Vischar{}
	v.Item.Pos = world.Pos16{U: 10, V: 10}
	if !TargetReached(v, world.Pos8{U: 11, V: 9}) {
		t.Fatalf("expected position within radius 2 to count as reached")
	}
	if TargetReached(v, world.Pos8{U: 20, V: 20}) {
		t.Fatalf("expected far position to not count as reached")
	}
}

func TestStepCharacterAdvancesRouteOnceReached(t *testing.T) {
	w := &world.World{}
	route := &world.Route{Bytes: []uint8{200, 201}}
	v := &world.Vischar{}
	// Land exactly on the first location target so StepCharacter advances.
	firstTarget, _, _ := TargetForRoute(w, route, v.Route)
	v.Item.Pos = firstTarget.ToPos16()

	newTarget, ended := StepCharacter(w, v, route)
	if ended {
		t.Fatalf("did not expect the route to end after its first step")
	}
	if v.Route.Step != 1 {
		t.Fatalf("expected step to advance to 1, got %d", v.Route.Step)
	}
	if newTarget == firstTarget {
		t.Fatalf("expected a new target after advancing")
	}
}

func TestStepPursuitCatchesHeroWithinRadius(t *testing.T) {
	hero := &world.Vischar{}
	hero.Item.Pos = world.Pos16{U: 50, V: 50}
	v := &world.Vischar{}
	v.Item.Pos = world.Pos16{U: 51, V: 49}

	_, action := StepPursuit(v, hero, 3)
	if action != ActionCaughtHero {
		t.Fatalf("expected catch, got %v", action)
	}
}

func TestStepPursuitContinuesWhenFar(t *testing.T) {
	hero := &world.Vischar{}
	hero.Item.Pos = world.Pos16{U: 0, V: 0}
	v := &world.Vischar{}
	v.Item.Pos = world.Pos16{U: 100, V: 100}

	_, action := StepPursuit(v, hero, 3)
	if action != ActionContinue {
		t.Fatalf("expected continue, got %v", action)
	}
}

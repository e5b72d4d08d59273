package ai

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func TestResolveDoorStep(t *testing.T) {
	route := &world.Route{Bytes: []uint8{5, 200}}
	step := Resolve(route, 0)
	if step.Kind != StepDoor || step.Door != 5 {
		t.Fatalf("got %+v", step)
	}
}

func TestResolveLocationStep(t *testing.T) {
	route := &world.Route{Bytes: []uint8{5, 200}}
	step := Resolve(route, 1)
	if step.Kind != StepLocation {
		t.Fatalf("got %+v", step)
	}
}

func TestResolvePastEndReportsEnded(t *testing.T) {
	route := &world.Route{Bytes: []uint8{5}}
	step := Resolve(route, 3)
	if step.Kind != StepEnded {
		t.Fatalf("got %+v", step)
	}
}

func TestAdvanceForwardEndsAtRouteLength(t *testing.T) {
	rs := &world.RouteState{Step: 0}
	if Advance(rs, 2) {
		t.Fatalf("did not expect route to end yet")
	}
	if rs.Step != 1 {
		t.Fatalf("expected step 1, got %d", rs.Step)
	}
	if !Advance(rs, 2) {
		t.Fatalf("expected route to end once step reaches route length")
	}
}

func TestAdvanceReversedEndsAtZero(t *testing.T) {
	rs := &world.RouteState{Step: 0, Index: world.RouteReverseFlag}
	if !Advance(rs, 5) {
		t.Fatalf("expected reversed route already at 0 to end")
	}
}

func TestTargetForRouteFollowsPairWhenReversed(t *testing.T) {
	w := &world.World{}
	w.DoorTable[4] = world.Door{Pos: world.Pos8{U: 1, V: 1}}
	w.DoorTable[5] = world.Door{Pos: world.Pos8{U: 9, V: 9}}
	route := &world.Route{Bytes: []uint8{4}}

	target, isDoor, door := TargetForRoute(w, route, world.RouteState{Index: world.RouteReverseFlag, Step: 0})
	if !isDoor || door != 5 {
		t.Fatalf("expected reversed route to use door 5 (the pair), got door %d", door)
	}
	if target != (world.Pos8{U: 9, V: 9}) {
		t.Fatalf("got %+v", target)
	}
}

package ai

import "github.com/dpt/greatescape-core/internal/world"

// targetReachedRadius is how close (in map units on either axis) a vischar
// must come to its target before it is considered to have reached it.
const targetReachedRadius = 2

// TargetReached reports whether v's map position is within
// targetReachedRadius of target on both axes.
func TargetReached(v *world.Vischar, target world.Pos8) bool {
	pos := v.Item.Pos.ToPos8()
	du := int(pos.U) - int(target.U)
	dv := int(pos.V) - int(target.V)
	if du < 0 {
		du = -du
	}
	if dv < 0 {
		dv = -dv
	}
	return du <= targetReachedRadius && dv <= targetReachedRadius
}

// StepCharacter advances one off-screen character's route by one target:
// resolves the current step, checks whether it's already been reached,
// and if so advances the route cursor (looping or ending per Advance).
// Returns the new target for the caller to steer v.Target/v.Direction
// toward, and whether the route just ran out.
func StepCharacter(w *world.World, v *world.Vischar, route *world.Route) (target world.Pos8, ended bool) {
	target, _, _ = TargetForRoute(w, route, v.Route)
	if !TargetReached(v, target) {
		return target, false
	}
	if Advance(&v.Route, len(route.Bytes)) {
		return target, true
	}
	target, _, _ = TargetForRoute(w, route, v.Route)
	return target, false
}

// PursuitAction is what the caller should do this tick as a result of a
// pursuit-mode character's AI step.
type PursuitAction int

const (
	ActionContinue PursuitAction = iota
	ActionCaughtHero
	ActionGaveUp
)

// StepPursuit advances a guard or dog in Pursue mode one tick: the
// returned target is always the hero's position, and the action is
// ActionCaughtHero when the hero is within catchRadius units on both axes,
// ActionContinue otherwise. It never returns ActionGaveUp and does not
// change v's pursuit mode.
func StepPursuit(v *world.Vischar, hero *world.Vischar, catchRadius int) (target world.Pos8, action PursuitAction) {
	heroPos := hero.Item.Pos.ToPos8()
	pos := v.Item.Pos.ToPos8()
	du := int(pos.U) - int(heroPos.U)
	dv := int(pos.V) - int(heroPos.V)
	if du < 0 {
		du = -du
	}
	if dv < 0 {
		dv = -dv
	}
	if du <= catchRadius && dv <= catchRadius {
		return heroPos, ActionCaughtHero
	}
	return heroPos, ActionContinue
}

package ai

import "github.com/dpt/greatescape-core/internal/world"

// nearbyRadius is how close (in Pos8 map units on each axis) an off-screen
// character's map position must be to the hero's before it is promoted to
// a vischar and starts being drawn and pursued.
const nearbyRadius = 12

// Scheduler round-robins through the off-screen character table, looking
// at one character per StepOffScreen call rather than all of them, so the
// cost stays flat regardless of how many characters exist. It only
// decides promotion: it does not move an off-screen character's position
// or advance its route.
type Scheduler struct {
	cursor world.CharacterID
}

// Cursor returns the slot the scheduler will next consider, for save-state
// serialisation.
func (s *Scheduler) Cursor() world.CharacterID { return s.cursor }

// SetCursor restores a previously saved cursor position.
func (s *Scheduler) SetCursor(c world.CharacterID) { s.cursor = c }

// StepOffScreen advances the scheduler by one character slot (wrapping
// past NumCharacters), checking whether that character should be promoted
// to an on-screen vischar because it has wandered near the hero.
func (s *Scheduler) StepOffScreen(w *world.World) {
	c := s.cursor
	s.cursor++
	if int(s.cursor) >= world.NumCharacters {
		s.cursor = 0
	}

	cs := &w.Characters[c]
	if cs.OnScreen() {
		return
	}
	hero := w.HeroVischar()
	if hero.Room != cs.Room {
		return
	}
	heroPos := hero.Item.Pos.ToPos8()
	du := int(cs.Pos.U) - int(heroPos.U)
	dv := int(cs.Pos.V) - int(heroPos.V)
	if du < 0 {
		du = -du
	}
	if dv < 0 {
		dv = -dv
	}
	if du <= nearbyRadius && dv <= nearbyRadius {
		_, _ = w.Promote(c)
	}
}

// PurgeInvisible demotes every on-screen vischar whose character has
// wandered far enough from the hero (or changed room) that it no longer
// needs per-frame simulation, freeing its slot for another promotion.
func PurgeInvisible(w *world.World) {
	hero := w.HeroVischar()
	heroPos := hero.Item.Pos.ToPos8()
	for i := range w.Vischars {
		v := &w.Vischars[i]
		if v.Empty() || v == hero {
			continue
		}
		if v.Room != hero.Room {
			w.Demote(v)
			continue
		}
		pos := v.Item.Pos.ToPos8()
		du := int(pos.U) - int(heroPos.U)
		dv := int(pos.V) - int(heroPos.V)
		if du < 0 {
			du = -du
		}
		if dv < 0 {
			dv = -dv
		}
		if du > nearbyRadius*2 || dv > nearbyRadius*2 {
			w.Demote(v)
		}
	}
}

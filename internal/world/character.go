package world

// CharacterID identifies one of the character slots: commandant, 15
// guards, 4 dogs, 6 prisoners, plus the hero (vischar 0's character is
// always CharacterHero).
type CharacterID uint8

const (
	CharacterHero CharacterID = iota
	CharacterCommandant
	// Guards occupy 2..16 (15 guards).
	// Dogs occupy 17..20 (4 dogs).
	// Prisoners occupy 21..26 (6 prisoners).

	NumCharacters = 27 // hero + commandant + 15 guards + 4 dogs + 6 prisoners
)

func firstGuard() CharacterID     { return CharacterCommandant + 1 }
func firstDog() CharacterID       { return firstGuard() + 15 }
func firstPrisoner() CharacterID  { return firstDog() + 4 }

func (c CharacterID) IsGuard() bool {
	return c >= firstGuard() && c < firstGuard()+15
}
func (c CharacterID) IsDog() bool {
	return c >= firstDog() && c < firstDog()+4
}
func (c CharacterID) IsPrisoner() bool {
	return c >= firstPrisoner() && c < firstPrisoner()+6
}

// Pseudo-character ids for the pushable stove/crate objects; they share
// the collision machinery but are never promoted to a real vischar slot.
const (
	PseudoStove1 CharacterID = NumCharacters + iota
	PseudoStove2
	PseudoCrate
)

// RouteState is a route (index, step) pair.
type RouteState struct {
	Index uint8 // route table index, or RouteWander (255); top bit = reverse
	Step  uint8
}

const (
	RouteReverseFlag uint8 = 0x80
	RouteWander      uint8 = 255
	RouteStandStill  uint8 = 0
)

// PlainIndex strips the reverse flag, yielding the table index.
func (r RouteState) PlainIndex() uint8 { return r.Index &^ RouteReverseFlag }

// Reversed reports whether this route is being walked back to front.
func (r RouteState) Reversed() bool { return r.Index&RouteReverseFlag != 0 }

// Character-and-flags bits.
const CharacterOnScreen uint8 = 1 << 7

// CharacterStruct is the state of an off-screen character.
type CharacterStruct struct {
	Character  CharacterID
	Flags      uint8 // CharacterOnScreen when promoted to a vischar
	Room       Room
	Pos        Pos8
	Route      RouteState
}

func (c *CharacterStruct) OnScreen() bool   { return c.Flags&CharacterOnScreen != 0 }
func (c *CharacterStruct) SetOnScreen(v bool) {
	if v {
		c.Flags |= CharacterOnScreen
	} else {
		c.Flags &^= CharacterOnScreen
	}
}

package world

import "errors"

// NumVischars is the number of visible-character slots; slot 0 is always
// the hero.
const NumVischars = 8

// Pursuit-mode bits, the low 6 bits of vischar.Flags.
type PursuitMode uint8

const (
	PursuitNone PursuitMode = iota
	PursuitPursue
	PursuitHassle
	PursuitDogFood
	PursuitSawBribe

	pursuitModeMask = 0x3F
)

// CounterAndFlags packs a sub-tick delay counter alongside the
// axis-dominance, drawable, and no-collide flag bits.
const (
	counterMask           uint8 = 0x1F // sub-tick delay, low 5 bits
	flagAxisDominanceV    uint8 = 1 << 5
	flagDrawable          uint8 = 1 << 6
	flagNoCollide         uint8 = 1 << 7
)

// CounterAndFlags keeps DontMoveMap as its own field rather than
// contending for the one spare bit in raw, so callers only ever see
// named accessors and never the packed byte directly.
type CounterAndFlags struct {
	raw         uint8
	dontMoveMap bool
}

func (c *CounterAndFlags) Counter() uint8     { return c.raw & counterMask }
func (c *CounterAndFlags) SetCounter(v uint8) { c.raw = (c.raw &^ counterMask) | (v & counterMask) }

func (c *CounterAndFlags) AxisDominanceV() bool { return c.raw&flagAxisDominanceV != 0 }
func (c *CounterAndFlags) SetAxisDominanceV(v bool) {
	c.setBit(flagAxisDominanceV, v)
}

func (c *CounterAndFlags) Drawable() bool     { return c.raw&flagDrawable != 0 }
func (c *CounterAndFlags) SetDrawable(v bool) { c.setBit(flagDrawable, v) }

func (c *CounterAndFlags) NoCollide() bool     { return c.raw&flagNoCollide != 0 }
func (c *CounterAndFlags) SetNoCollide(v bool) { c.setBit(flagNoCollide, v) }

func (c *CounterAndFlags) DontMoveMap() bool     { return c.dontMoveMap }
func (c *CounterAndFlags) SetDontMoveMap(v bool) { c.dontMoveMap = v }

// GobEncode and GobDecode let encoding/gob save the unexported fields.
func (c CounterAndFlags) GobEncode() ([]byte, error) {
	b := []byte{c.raw, 0}
	if c.dontMoveMap {
		b[1] = 1
	}
	return b, nil
}

func (c *CounterAndFlags) GobDecode(b []byte) error {
	if len(b) != 2 {
		return errors.New("world: bad CounterAndFlags encoding")
	}
	c.raw, c.dontMoveMap = b[0], b[1] != 0
	return nil
}

func (c *CounterAndFlags) setBit(bit uint8, v bool) {
	if v {
		c.raw |= bit
	} else {
		c.raw &^= bit
	}
}

// Input is the pending input byte: direction bits, FIRE, and the KICK
// latch bit that marks "new input since last consumed".
type Input uint8

const (
	InputUp    Input = 1 << 0
	InputDown  Input = 1 << 1
	InputLeft  Input = 1 << 2
	InputRight Input = 1 << 3
	InputFire  Input = 1 << 4
	InputKick  Input = 1 << 5
)

func (i Input) Has(bit Input) bool { return i&bit != 0 }

// Sprite is a masked isometric sprite bitmap: a bitplane and a coincident
// transparency mask. Two widths exist, 16px (2+1 shifted bytes) and 24px
// (3+1 shifted bytes); WidthBytes distinguishes them.
//
// Sprite bitmap/mask content (the actual pixel art) is supplied by the
// caller; Sprite only carries the shape the plotter operates on.
type Sprite struct {
	WidthBytes int // 2 (16px) or 3 (24px)
	Height     int // pixel rows
	Bitmap     []byte
	Mask       []byte
}

// MovableItem is a 16-bit map position paired with a sprite pointer and
// a sprite index + flip bit.
type MovableItem struct {
	Pos             Pos16
	Sprite          *Sprite
	SpriteIndexFlip uint8
}

// Vischar is the full on-screen state of one visible character.
type Vischar struct {
	Character       CharacterID
	Flags           uint8 // pursuit mode (low 6 bits) + reserved high bits
	Route           RouteState
	Target          Pos8
	Counter         CounterAndFlags
	AnimBase        *Animation
	Anim            *Animation
	AnimFrameIndex  int // current frame; negative/>=len signals "need new animation"
	AnimReverse     bool
	Input           Input
	Direction       Direction
	Crawl           bool
	Item            MovableItem
	Iso             IsoPos
	Room            Room
	Width, Height   int // current bitmap width (pixels)/height (pixels)
}

const emptySlotFlags uint8 = 0xFF

// Empty reports whether this slot is the inert "empty slot" template.
func (v *Vischar) Empty() bool { return v.Flags == emptySlotFlags }

// Reset returns v to the inert empty-slot template.
func (v *Vischar) Reset() {
	*v = Vischar{Flags: emptySlotFlags}
}

func (v *Vischar) PursuitMode() PursuitMode { return PursuitMode(v.Flags & pursuitModeMask) }
func (v *Vischar) SetPursuitMode(m PursuitMode) {
	v.Flags = (v.Flags &^ pursuitModeMask) | uint8(m)
}

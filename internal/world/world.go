package world

import "fmt"

// World is the complete dynamic+static game state: rooms, doors, items,
// characters and visible characters, plus the route/animation tables they
// reference.
type World struct {
	RoomDefs   [NumRooms]RoomDef
	Shadows    [NumRooms]ShadowState
	DoorTable  Doors
	Locks      LockState
	Items      [NumItems]ItemStruct
	Characters [NumCharacters]CharacterStruct
	Vischars   [NumVischars]Vischar
	Routes     []Route // indexed by RouteState.PlainIndex(), walked by internal/ai
	Animations [NumAnimations]Animation

	ItemsHeld [2]ItemID // NoItemHeld sentinel below fills unused slots

	// RedCrossParcelContents is which item the parcel currently conceals,
	// chosen from RedCrossParcelCandidates each time it is restocked.
	RedCrossParcelContents ItemID
}

// NoItemHeld is the "slot empty" sentinel for World.ItemsHeld.
const NoItemHeld ItemID = 0xFF

// Route is one route's byte sequence. It lives here rather than in
// internal/ai (which itself depends on world for Pos8/DoorID); see
// internal/ai for the route-walking logic. Kept minimal: a byte sequence.
type Route struct {
	Bytes []uint8
}

// HeroVischar returns the vischar slot that is always the hero.
func (w *World) HeroVischar() *Vischar { return &w.Vischars[0] }

// FindVischar returns the slot currently representing c, or nil.
func (w *World) FindVischar(c CharacterID) *Vischar {
	for i := range w.Vischars {
		if !w.Vischars[i].Empty() && w.Vischars[i].Character == c {
			return &w.Vischars[i]
		}
	}
	return nil
}

// Promote creates a vischar for character c in a free slot other than
// slot 0 (which always belongs to the hero), copying its
// room/position across and marking the characterstruct ON_SCREEN. It is
// the caller's responsibility (internal/ai) to have already decided c
// belongs on screen; Promote only performs the atomic state transition
// and keeps the ON_SCREEN/vischar-presence invariant intact.
func (w *World) Promote(c CharacterID) (*Vischar, error) {
	cs := &w.Characters[c]
	if cs.OnScreen() {
		return nil, fmt.Errorf("character %d is already on screen", c)
	}
	for i := 1; i < len(w.Vischars); i++ {
		if w.Vischars[i].Empty() {
			w.Vischars[i].Reset()
			w.Vischars[i].Character = c
			w.Vischars[i].Flags = 0
			w.Vischars[i].Room = cs.Room
			w.Vischars[i].Item.Pos = cs.Pos.ToPos16()
			w.Vischars[i].Route = cs.Route
			cs.SetOnScreen(true)
			return &w.Vischars[i], nil
		}
	}
	return nil, fmt.Errorf("no free vischar slot to promote character %d", c)
}

// Demote destroys vischar v, copying its position back onto the owning
// characterstruct and clearing ON_SCREEN.
func (w *World) Demote(v *Vischar) {
	if v.Empty() {
		return
	}
	cs := &w.Characters[v.Character]
	cs.Pos = v.Item.Pos.ToPos8()
	cs.Room = v.Room
	cs.Route = v.Route
	cs.SetOnScreen(false)
	v.Reset()
}

// CheckInvariants validates the ON_SCREEN/vischar consistency, vischar
// character-id and route-index ranges, and item-held slot ordering;
// intended for use from tests and from debug-build assertions.
func (w *World) CheckInvariants() error {
	for c := CharacterID(0); c < NumCharacters; c++ {
		cs := &w.Characters[c]
		vs := w.FindVischar(c)
		if cs.OnScreen() && vs == nil {
			return fmt.Errorf("character %d marked ON_SCREEN but has no vischar", c)
		}
		if !cs.OnScreen() && vs != nil {
			return fmt.Errorf("character %d not marked ON_SCREEN but vischar %v claims it", c, vs)
		}
	}
	for i := range w.Vischars {
		v := &w.Vischars[i]
		if v.Empty() {
			continue
		}
		if int(v.Character) >= NumCharacters {
			return fmt.Errorf("vischar %d has out-of-range character %d", i, v.Character)
		}
		r := v.Route.PlainIndex()
		if r != RouteWander && int(r) >= len(w.Routes) {
			return fmt.Errorf("vischar %d has out-of-range route %d", i, r)
		}
	}
	if w.ItemsHeld[0] == NoItemHeld && w.ItemsHeld[1] != NoItemHeld {
		return fmt.Errorf("item held slot 1 filled while slot 0 is empty")
	}
	return nil
}

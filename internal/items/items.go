// Package items implements pickup, drop, and use actions for the two
// item-holding slots, plus the discovery lifecycle that teleports a
// discovered item back to its default position.
package items

import (
	"fmt"

	"github.com/dpt/greatescape-core/internal/ai"
	"github.com/dpt/greatescape-core/internal/world"
)

// pickupRadius is how close the hero's map position must be to an item's
// to pick it up.
const pickupRadius = 2

// NearbyItem finds an unheld item that is placed in a room and lies within
// pickupRadius of the hero on both axes, or reports none found. The FOUND
// flag is not consulted, so an item picked up before can be found again.
func NearbyItem(w *world.World, heroPos world.Pos8) (world.ItemID, bool) {
	for i := range w.Items {
		it := &w.Items[i]
		if it.Held() || it.Room() == world.NoRoom {
			continue
		}
		du := int(it.Pos.U) - int(heroPos.U)
		dv := int(it.Pos.V) - int(heroPos.V)
		if du < 0 {
			du = -du
		}
		if dv < 0 {
			dv = -dv
		}
		if du <= pickupRadius && dv <= pickupRadius {
			return it.Item, true
		}
	}
	return 0, false
}

// Pickup moves item into the first free held-item slot, marking it HELD
// and clearing its room (NoRoom). Fails if both slots are occupied.
func Pickup(w *world.World, item world.ItemID) error {
	slot := -1
	for i, held := range w.ItemsHeld {
		if held == world.NoItemHeld {
			slot = i
			break
		}
	}
	if slot == -1 {
		return fmt.Errorf("items: both held-item slots are full")
	}
	it := &w.Items[item]
	it.Flags |= world.ItemFlagHeld
	it.RoomAndFlags = world.NoRoom
	w.ItemsHeld[slot] = item
	return nil
}

// Drop releases slot's held item back into the world at pos/room. Dropping
// slot 0 while slot 1 is held moves slot 1's item down into slot 0, so
// slot 0 is never left empty with slot 1 filled.
func Drop(w *world.World, slot int, pos world.Pos8, room world.Room) error {
	if slot != 0 && slot != 1 {
		return fmt.Errorf("items: invalid held slot %d", slot)
	}
	item := w.ItemsHeld[slot]
	if item == world.NoItemHeld {
		return fmt.Errorf("items: slot %d is already empty", slot)
	}
	it := &w.Items[item]
	it.Flags &^= world.ItemFlagHeld
	it.Pos = pos
	it.SetRoom(uint8(room))

	if slot == 0 && w.ItemsHeld[1] != world.NoItemHeld {
		w.ItemsHeld[0] = w.ItemsHeld[1]
		w.ItemsHeld[1] = world.NoItemHeld
	} else {
		w.ItemsHeld[slot] = world.NoItemHeld
	}
	return nil
}

// MarkFound flags an item FOUND (picking it up for the first time reveals
// its role, e.g. a poisoned food tin or the red-cross parcel's contents).
func MarkFound(w *world.World, item world.ItemID) {
	w.Items[item].Flags |= world.ItemFlagFound
}

// ReturnToDefault teleports item back to its static default position and
// clears HELD. Discovered uses it for an item found where it does not
// belong; Use does not call it.
func ReturnToDefault(w *world.World, item world.ItemID) {
	def := world.DefaultItemPositions[item]
	it := &w.Items[item]
	it.Flags &^= world.ItemFlagHeld
	it.Pos = def.Pos
	it.SetRoom(uint8(def.Room))
}

// RerollRedCrossParcel picks one of the four candidate items (via prng)
// to be the parcel's contents; the caller stores the result each time the
// parcel is restocked.
func RerollRedCrossParcel(w *world.World, p *ai.PRNG) world.ItemID {
	idx := int(p.Next()) % len(world.RedCrossParcelCandidates)
	return world.RedCrossParcelCandidates[idx]
}

// IsDiscoverable reports whether a just-dropped item should trigger a
// hostile search: it landed somewhere other than its default room (the
// red-cross parcel is exempt, since its own room is a deliberate
// placement rather than a "default" it could stray from), or, outdoors,
// it landed outside mapBounds.
func IsDiscoverable(item world.ItemID, room world.Room, pos world.Pos8, mapBounds world.Rect) bool {
	if item == world.ItemRedCrossParcel {
		return false
	}
	def := world.DefaultItemPositions[item]
	if room != def.Room {
		return true
	}
	if room == world.RoomOutdoors {
		if pos.U < mapBounds.X0 || pos.U > mapBounds.X1 || pos.V < mapBounds.Y0 || pos.V > mapBounds.Y1 {
			return true
		}
	}
	return false
}

// Discovered is what happens once IsDiscoverable fires, or once a dog
// finds poisoned food: the item is snatched back to its default position.
func Discovered(w *world.World, item world.ItemID) {
	ReturnToDefault(w, item)
}

// Lockout is the single shared "player input frozen" timer the wiresnips
// and lockpick use actions start: the original's player_locked_out_until
// field. While Active, the hero stands still cutting wire or picking a
// lock.
type Lockout struct {
	TicksRemaining int
	Picking        bool // true only while the frozen ticks are a lockpick attempt
	Door           world.DoorID
}

// Lockout durations, in ticks.
const (
	WiresnipsLockoutTicks = 96
	LockpickLockoutTicks  = 255
)

// Active reports whether the player's input is currently inhibited.
func (l *Lockout) Active() bool { return l.TicksRemaining > 0 }

// Tick advances an active lockout by one tick. When a lockpick lockout
// completes, it unlocks the door it targeted and reports it so the
// caller can queue the IT_IS_OPEN message.
func (l *Lockout) Tick(ls *world.LockState) (opened world.DoorID, ok bool) {
	if l.TicksRemaining == 0 {
		return 0, false
	}
	l.TicksRemaining--
	if l.TicksRemaining == 0 && l.Picking {
		ls.Unlock(l.Door)
		l.Picking = false
		return l.Door, true
	}
	return 0, false
}

// Use-action reach, in map units, for locating the door/guard a use
// action targets.
const (
	lockpickRadius = 3
	keyRadius      = 3
	bribeRadius    = 4
)

// UseEffect is the subset of a use action's result the engine (not
// items) must react to: queuing a message, teleporting the hero, or
// sending them to solitary. Everything items.Use can settle on its own —
// door locks, item positions, poison/pursuit flags — it mutates directly
// on w.
type UseEffect struct {
	Message      string
	TeleportHero bool
	TeleportPos  world.Pos8
	TeleportRoom world.Room
	SendSolitary bool
}

func heroHasUniform(w *world.World) bool {
	return w.ItemsHeld[0] == world.ItemUniform || w.ItemsHeld[1] == world.ItemUniform
}

// nearestLockedDoor finds the locked door (optionally restricted to
// wantRoom, one of its two sides) closest to pos within radius map units.
func nearestLockedDoor(w *world.World, pos world.Pos8, radius int, wantRoom *world.Room) (world.DoorID, bool) {
	best := world.DoorID(0)
	bestDist := radius + 1
	found := false
	for d := world.DoorID(0); int(d) < world.NumDoors; d++ {
		if !w.Locks.IsLocked(d) {
			continue
		}
		door := w.DoorTable[d]
		if wantRoom != nil && door.Room != *wantRoom {
			continue
		}
		du := int(door.Pos.U) - int(pos.U)
		if du < 0 {
			du = -du
		}
		dv := int(door.Pos.V) - int(pos.V)
		if dv < 0 {
			dv = -dv
		}
		dist := du + dv
		if dist <= radius && dist < bestDist {
			bestDist = dist
			best = d
			found = true
		}
	}
	return best, found
}

// mainGatePos is where the hero reappears outside the main gate when
// action_papers succeeds in uniform (see spec's "Solitary via wrong
// papers" scenario for the gate's coordinates).
var mainGatePos = world.Pos8{U: 107, V: 74}

// Use runs slot's held item's use action: cutting wire, picking a lock,
// presenting papers, donning the uniform, clearing a collapsed tunnel,
// poisoning the food, bribing a nearby guard, unlocking a door with a
// matching key, or revealing the red-cross parcel's contents.
func Use(w *world.World, slot int, heroPos world.Pos8, heroRoom world.Room, lockout *Lockout) (UseEffect, error) {
	if slot != 0 && slot != 1 {
		return UseEffect{}, fmt.Errorf("items: invalid held slot %d", slot)
	}
	item := w.ItemsHeld[slot]
	if item == world.NoItemHeld {
		return UseEffect{}, fmt.Errorf("items: slot %d is empty", slot)
	}

	switch item {
	case world.ItemWiresnips:
		lockout.TicksRemaining = WiresnipsLockoutTicks
		lockout.Picking = false
		return UseEffect{Message: "wiresnips_cutting"}, nil

	case world.ItemLockpick:
		d, found := nearestLockedDoor(w, heroPos, lockpickRadius, nil)
		if !found {
			return UseEffect{}, fmt.Errorf("items: no locked door in range to pick")
		}
		lockout.TicksRemaining = LockpickLockoutTicks
		lockout.Picking = true
		lockout.Door = d
		return UseEffect{Message: "lockpicking"}, nil

	case world.ItemPapers:
		if heroHasUniform(w) {
			return UseEffect{TeleportHero: true, TeleportPos: mainGatePos, TeleportRoom: world.RoomOutdoors}, nil
		}
		return UseEffect{SendSolitary: true}, nil

	case world.ItemUniform:
		return UseEffect{Message: "uniform_worn"}, nil

	case world.ItemShovel:
		w.Shadows[heroRoom].TunnelBlocked = false
		return UseEffect{Message: "tunnel_cleared"}, nil

	case world.ItemPoison:
		w.Items[world.ItemFoodTin].Flags |= world.ItemFlagPoisoned
		return UseEffect{Message: "food_poisoned"}, nil

	case world.ItemBribe:
		for i := range w.Vischars {
			v := &w.Vischars[i]
			if v.Empty() || v.Character == world.CharacterHero || !v.Character.IsGuard() {
				continue
			}
			du := int(v.Item.Pos.ToPos8().U) - int(heroPos.U)
			if du < 0 {
				du = -du
			}
			dv := int(v.Item.Pos.ToPos8().V) - int(heroPos.V)
			if dv < 0 {
				dv = -dv
			}
			if du <= bribeRadius && dv <= bribeRadius {
				v.SetPursuitMode(world.PursuitSawBribe)
				return UseEffect{Message: "bribe_offered"}, nil
			}
		}
		return UseEffect{}, fmt.Errorf("items: no guard nearby to bribe")

	case world.ItemKeySuitcase, world.ItemKeyWarden, world.ItemKeyCrate, world.ItemKeyBox:
		wantRoom := world.DefaultItemPositions[item].Room
		d, found := nearestLockedDoor(w, heroPos, keyRadius, &wantRoom)
		if !found {
			return UseEffect{}, fmt.Errorf("items: no matching locked door in range")
		}
		w.Locks.Unlock(d)
		return UseEffect{Message: "IT_IS_OPEN"}, nil

	case world.ItemRedCrossParcel:
		contents := w.RedCrossParcelContents
		cit := &w.Items[contents]
		cit.Flags &^= world.ItemFlagHeld
		cit.Pos = w.Items[item].Pos
		cit.SetRoom(uint8(heroRoom))
		w.Items[item].SetRoom(world.NoRoom)
		return UseEffect{Message: "red_cross_parcel_opened"}, nil

	default:
		return UseEffect{}, fmt.Errorf("items: %v has no use action", item)
	}
}

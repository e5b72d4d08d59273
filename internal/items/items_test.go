package items

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/ai"
	"github.com/dpt/greatescape-core/internal/world"
)

func newTestWorld() *world.World {
	w := &world.World{}
	w.ItemsHeld[0] = world.NoItemHeld
	w.ItemsHeld[1] = world.NoItemHeld
	w.Items[world.ItemShovel] = world.ItemStruct{Item: world.ItemShovel, Pos: world.Pos8{U: 10, V: 10}}
	w.Items[world.ItemShovel].SetRoom(3)
	return w
}

func TestNearbyItemFindsItemInRadius(t *testing.T) {
	w := newTestWorld()
	got, ok := NearbyItem(w, world.Pos8{U: 11, V: 9})
	if !ok || got != world.ItemShovel {
		t.Fatalf("expected to find shovel nearby, got %v %v", got, ok)
	}
}

func TestPickupFillsFirstFreeSlot(t *testing.T) {
	w := newTestWorld()
	if err := Pickup(w, world.ItemShovel); err != nil {
		t.Fatalf("pickup: %v", err)
	}
	if w.ItemsHeld[0] != world.ItemShovel {
		t.Fatalf("expected shovel in slot 0, got %+v", w.ItemsHeld)
	}
	if !w.Items[world.ItemShovel].Held() {
		t.Fatalf("expected HELD flag set")
	}
}

func TestPickupFailsWhenBothSlotsFull(t *testing.T) {
	w := newTestWorld()
	w.ItemsHeld[0] = world.ItemPurse
	w.ItemsHeld[1] = world.ItemBribe
	if err := Pickup(w, world.ItemShovel); err == nil {
		t.Fatalf("expected pickup to fail with both slots full")
	}
}

func TestDropSlot0CompactsSlot1Down(t *testing.T) {
	w := newTestWorld()
	w.ItemsHeld[0] = world.ItemPurse
	w.ItemsHeld[1] = world.ItemBribe
	if err := Drop(w, 0, world.Pos8{}, world.RoomOutdoors); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if w.ItemsHeld[0] != world.ItemBribe {
		t.Fatalf("expected bribe compacted into slot 0, got %+v", w.ItemsHeld)
	}
	if w.ItemsHeld[1] != world.NoItemHeld {
		t.Fatalf("expected slot 1 now empty, got %+v", w.ItemsHeld)
	}
}

func TestReturnToDefaultResetsPosition(t *testing.T) {
	w := newTestWorld()
	w.Items[world.ItemShovel].Flags |= world.ItemFlagHeld
	ReturnToDefault(w, world.ItemShovel)
	want := world.DefaultItemPositions[world.ItemShovel]
	if w.Items[world.ItemShovel].Pos != want.Pos {
		t.Fatalf("got %+v want %+v", w.Items[world.ItemShovel].Pos, want.Pos)
	}
	if w.Items[world.ItemShovel].Held() {
		t.Fatalf("expected HELD cleared")
	}
}

func TestRerollRedCrossParcelPicksACandidate(t *testing.T) {
	w := newTestWorld()
	var p ai.PRNG
	got := RerollRedCrossParcel(w, &p)
	found := false
	for _, c := range world.RedCrossParcelCandidates {
		if c == got {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a candidate item, got %v", got)
	}
}

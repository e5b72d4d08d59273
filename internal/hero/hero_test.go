package hero

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func TestInPermittedAreaInteriorMatchesWholeRoom(t *testing.T) {
	areas := []PermittedArea{{Room: 5}}
	if !InPermittedArea(areas, 5, world.Pos8{U: 255, V: 255}) {
		t.Fatalf("expected any position within a permitted interior room to match")
	}
	if InPermittedArea(areas, 6, world.Pos8{}) {
		t.Fatalf("expected a different room to not match")
	}
}

func TestInPermittedAreaOutdoorsGatesByBounds(t *testing.T) {
	areas := []PermittedArea{{Room: world.RoomOutdoors, Bounds: world.Rect{X0: 10, X1: 20, Y0: 10, Y1: 20}}}
	if !InPermittedArea(areas, world.RoomOutdoors, world.Pos8{U: 15, V: 15}) {
		t.Fatalf("expected position inside bounds to match")
	}
	if InPermittedArea(areas, world.RoomOutdoors, world.Pos8{U: 30, V: 30}) {
		t.Fatalf("expected position outside bounds to not match")
	}
}

func newBoundaryWorld() (*world.World, world.Rect) {
	w := &world.World{}
	w.ItemsHeld[0] = world.NoItemHeld
	w.ItemsHeld[1] = world.NoItemHeld
	hero := w.HeroVischar()
	hero.Room = world.RoomOutdoors
	hero.Item.Pos = world.Pos16{U: 5, V: 5}
	return w, world.Rect{X0: 0, X1: 10, Y0: 0, Y1: 10}
}

func TestCheckEscapeReportsNotEscapedOutsideTheBoundary(t *testing.T) {
	w, boundary := newBoundaryWorld()
	w.HeroVischar().Item.Pos = world.Pos16{U: 500, V: 500}
	if got := CheckEscape(w, boundary); got != NotEscaped {
		t.Fatalf("got %v, want NotEscaped", got)
	}
}

func TestCheckEscapeWinsWithCompassAndPapers(t *testing.T) {
	w, boundary := newBoundaryWorld()
	w.ItemsHeld[0] = world.ItemCompass
	w.ItemsHeld[1] = world.ItemPapers
	if got := CheckEscape(w, boundary); got != EscapeWon {
		t.Fatalf("got %v, want EscapeWon", got)
	}
}

func TestCheckEscapeCrossesBorderWithCompassAndPurse(t *testing.T) {
	w, boundary := newBoundaryWorld()
	w.ItemsHeld[0] = world.ItemCompass
	w.ItemsHeld[1] = world.ItemPurse
	if got := CheckEscape(w, boundary); got != EscapeCrossedBorder {
		t.Fatalf("got %v, want EscapeCrossedBorder", got)
	}
}

func TestCheckEscapeUniformAlwaysLoses(t *testing.T) {
	w, boundary := newBoundaryWorld()
	w.ItemsHeld[0] = world.ItemUniform
	w.ItemsHeld[1] = world.ItemCompass
	if got := CheckEscape(w, boundary); got != EscapeCaughtInUniform {
		t.Fatalf("got %v, want EscapeCaughtInUniform", got)
	}
}

func TestCheckEscapeOtherCombinationsReturnToSolitary(t *testing.T) {
	w, boundary := newBoundaryWorld()
	w.ItemsHeld[0] = world.ItemWiresnips
	if got := CheckEscape(w, boundary); got != EscapeReturnedToSolitary {
		t.Fatalf("got %v, want EscapeReturnedToSolitary", got)
	}
}

func TestSolitaryConfinementCountsDown(t *testing.T) {
	var s SolitaryConfinement
	s.Begin(2)
	if !s.Active() {
		t.Fatalf("expected active confinement after Begin")
	}
	if s.Tick() {
		t.Fatalf("did not expect confinement to end after first tick")
	}
	if !s.Tick() {
		t.Fatalf("expected confinement to end after second tick")
	}
	if s.Active() {
		t.Fatalf("expected confinement inactive once countdown reaches 0")
	}
}

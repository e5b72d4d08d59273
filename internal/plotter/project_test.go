package plotter

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func TestVischarVisibleWithinWindow(t *testing.T) {
	v := &world.Vischar{Width: 2, Height: 3}
	v.Item.Pos = world.Pos16{U: 0x200, V: 0x200, W: 0}
	iso := world.Project16(v.Item.Pos)
	col, row := world.ToUDG(iso)
	_, _, visible := VischarVisible(col-1, row-1, v)
	if !visible {
		t.Fatalf("expected vischar near the window origin to be visible")
	}
}

func TestVischarVisibleFarOffscreen(t *testing.T) {
	v := &world.Vischar{Width: 2, Height: 2}
	v.Item.Pos = world.Pos16{U: 0, V: 0, W: 0}
	_, _, visible := VischarVisible(1000, 1000, v)
	if visible {
		t.Fatalf("expected a far-away vischar to be clipped")
	}
}

func TestItemVisibleOutdoors(t *testing.T) {
	item := &world.ItemStruct{Pos: world.Pos8{U: 40, V: 40, W: 0}}
	iso := world.Project8(item.Pos)
	col, row := world.ToUDG(iso)
	_, _, visible := ItemVisible(col-1, row-1, true, item)
	if !visible {
		t.Fatalf("expected item near its own projected position to be visible")
	}
}

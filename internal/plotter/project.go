package plotter

import "github.com/dpt/greatescape-core/internal/world"

// ScreenWidth/ScreenHeight bound the visible window in pixels.
const (
	ScreenWidth  = Columns * 8
	ScreenHeight = Rows * 8
)

// VischarVisible projects a vischar's map position onto the window and
// reports whether any part of its bounding box would land on screen,
// returning its unclipped top-left position in UDG columns/rows when it
// does.
func VischarVisible(mapPositionX, mapPositionY int, v *world.Vischar) (x, y int, visible bool) {
	iso := world.Project16(v.Item.Pos)
	x = int(iso.X)/8 - mapPositionX
	y = int(iso.Y)/8 - mapPositionY
	widthUDG, heightUDG := (v.Width+7)/8, (v.Height+7)/8
	if x+widthUDG < 0 || x >= Columns || y+heightUDG < 0 || y >= Rows {
		return 0, 0, false
	}
	return x, y, true
}

// ItemVisible projects an item's outdoor or indoor map position and
// reports whether it would land on screen.
func ItemVisible(mapPositionX, mapPositionY int, outdoors bool, item *world.ItemStruct) (x, y int, visible bool) {
	var iso world.IsoPos
	if outdoors {
		iso = world.Project8(item.Pos)
	} else {
		iso = world.Project16(item.Pos.ToPos16())
	}
	x = int(iso.X)/8 - mapPositionX
	y = int(iso.Y)/8 - mapPositionY
	const itemWidthUDG, itemHeightUDG = 2, 2
	if x+itemWidthUDG < 0 || x >= Columns || y+itemHeightUDG < 0 || y >= Rows {
		return 0, 0, false
	}
	return x, y, true
}

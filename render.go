package greatescape

import (
	"github.com/dpt/greatescape-core/internal/plotter"
	"github.com/dpt/greatescape-core/internal/screen"
)

// scanlines is a flat, row-major packed-byte scratch buffer: one byte per
// UDG column, one row per screen pixel row. It exists only to give
// plotter.PlotSprite a contiguous RowPlotTarget to composite sprites into
// once the background tiles have been flattened out of a plotter.Buffers.
type scanlines [plotterWindowPixelHeight][plotter.Columns]byte

func (s *scanlines) Row(y int) []byte {
	if y < 0 || y >= len(s) {
		return nil
	}
	return s[y][:]
}

// flattenTiles copies the packed per-UDG window rows of buf into s, the
// background every sprite is then composited on top of.
func flattenTiles(buf *plotter.Buffers, s *scanlines) {
	for row := 0; row < plotter.Rows; row++ {
		for col := 0; col < plotter.Columns; col++ {
			udg := buf.WindowBuf[row][col]
			for sub := 0; sub < 8; sub++ {
				s[row*8+sub][col] = udg[sub]
			}
		}
	}
}

// RenderFrame composites buf's background tiles and every drawable
// vischar (sprite bitmaps/masks are supplied by the caller via
// World.Vischars[i].Item.Sprite; RenderFrame only sequences the
// compositing and blit) into fb, ready for host.Host.Present.
func (e *Engine) RenderFrame(buf *plotter.Buffers, fb *screen.FrameBuffer) {
	var s scanlines
	flattenTiles(buf, &s)

	hero := e.World.HeroVischar()
	room := e.World.RoomDefs[hero.Room].Masks
	for _, d := range plotter.SelectDrawables(e.World.Vischars[:]) {
		if d.Vischar == nil || d.Vischar.Item.Sprite == nil {
			continue
		}
		x := int(d.Iso.X) - int(hero.Iso.X) + plotter.HeroWindowOffsetX*8
		y := int(d.Iso.Y) - int(hero.Iso.Y) + plotter.HeroWindowOffsetY*8
		if y < 0 || y >= len(s) {
			continue
		}
		flip := d.Vischar.Item.SpriteIndexFlip&0x80 != 0

		widthUDG, heightUDG := (d.Width+7)/8, (d.Height+7)/8
		var env plotter.MaskBuffer
		if e.masks != nil {
			selected := plotter.SelectMasks(room, x/8, y/8, widthUDG, heightUDG, d.Vischar.Item.Pos.ToPos8())
			env = plotter.BuildMaskBuffer(selected, e.masks, x/8, y/8, widthUDG, heightUDG)
		}
		plotter.PlotSprite(&s, d.Vischar.Item.Sprite, flip, x, y, env)
	}

	for row := 0; row < plotterWindowPixelHeight; row++ {
		for col := 0; col < plotter.Columns; col++ {
			fb.BlitWindowRow(col*8, row, s[row][col])
		}
	}
}

// Package plotter implements the isometric sprite plotter, mask
// compositing, and the tile/window/map buffer pipeline that the main loop
// draws through each tick.
//
// A small stateful struct holds the fixed-size buffers (map/tile/window),
// with the render loop filed separately in rowplot.go so buffer state and
// the per-row compositing walk stay easy to read independently. The walk
// proceeds row-at-a-time rather than dot-at-a-time.
package plotter

// Columns/Rows are the window buffer's UDG dimensions.
const (
	Columns = 24
	Rows    = 17

	// MapBufWidth/MapBufHeight are the supertile lookahead window read by
	// GetSupertiles.
	MapBufWidth  = 7
	MapBufHeight = 5

	// SupertileSize is the number of UDGs per side of a supertile.
	SupertileSize = 4
)

// Buffers holds the tile buffer (one byte per UDG: the currently-expanded
// room/exterior tile indices), the window buffer (one row of bytes per
// UDG, ready to blit), and the map buffer (one supertile index per entry).
type Buffers struct {
	MapBuf    [MapBufHeight][MapBufWidth]uint16
	TileBuf   [Rows][Columns]uint8
	WindowBuf [Rows][Columns][8]byte // 8 packed-pixel rows per UDG

	// MapPosition is the top-left UDG of the current map window, in UDG
	// units. The hero sits at (MapPositionX+11, MapPositionY+6), the
	// centre of the game window.
	MapPositionX, MapPositionY int
}

// HeroWindowOffset is the fixed hero-centring offset within the window.
const (
	HeroWindowOffsetX = 11
	HeroWindowOffsetY = 6
)

// SupertileBank selects which of the three exterior-tile banks (or the
// single interior bank) a supertile index belongs to.
func SupertileBank(index uint16) int {
	switch {
	case index <= 44:
		return 0
	case index >= 45 && index <= 138:
		return 1
	case index >= 139 && index <= 203:
		return 2
	case index >= 204 && index <= 218:
		return 1
	default:
		return 0
	}
}

// TileSource supplies tile indices from the static map and supertile
// tables, plus the per-room interior tile bank. The table content itself
// is supplied by the caller, not this package.
type TileSource interface {
	// Supertile returns the supertile index at (col,row) of the
	// compile-time map array.
	Supertile(col, row int) uint16
	// ExpandSupertile returns the 4x4 tile indices a supertile expands to,
	// selecting the exterior bank via SupertileBank or the interior bank
	// when indoors.
	ExpandSupertile(index uint16, indoors bool) [SupertileSize][SupertileSize]uint8
}

// GetSupertiles reads a MapBufWidth x MapBufHeight window of supertile
// indices into b.MapBuf, anchored so MapPosition lands at its usual offset.
func (b *Buffers) GetSupertiles(src TileSource) {
	baseCol := b.MapPositionX / SupertileSize
	baseRow := b.MapPositionY / SupertileSize
	for r := 0; r < MapBufHeight; r++ {
		for c := 0; c < MapBufWidth; c++ {
			b.MapBuf[r][c] = src.Supertile(baseCol+c, baseRow+r)
		}
	}
}

// PlotAllTiles fully expands MapBuf -> TileBuf -> WindowBuf, used on room
// entry and whenever the map is recentred from scratch. A reseed from
// scratch at a given MapPosition must always reproduce the same buffers.
func (b *Buffers) PlotAllTiles(src TileSource, indoors bool, glyphs GlyphSource) {
	offCol := b.MapPositionX % SupertileSize
	offRow := b.MapPositionY % SupertileSize
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			superCol := (col + offCol) / SupertileSize
			superRow := (row + offRow) / SupertileSize
			subCol := (col + offCol) % SupertileSize
			subRow := (row + offRow) % SupertileSize
			if superRow >= MapBufHeight || superCol >= MapBufWidth {
				b.TileBuf[row][col] = 0
				continue
			}
			super := b.MapBuf[superRow][superCol]
			expanded := src.ExpandSupertile(super, indoors)
			tile := expanded[subRow][subCol]
			b.TileBuf[row][col] = tile
			b.WindowBuf[row][col] = glyphs.Glyph(tile)
		}
	}
}

// GlyphSource supplies the 8x8 pixel glyph bitmap for a tile index. Glyph
// bitmap content is supplied by the caller, not this package.
type GlyphSource interface {
	Glyph(tile uint8) [8]byte
}

// ShuntDir is which edge of the window needs repainting after a one-UDG
// scroll: the retained pixels are moved across, then only the freshly
// exposed edge column/row is repainted.
type ShuntDir int

const (
	ShuntLeft ShuntDir = iota
	ShuntRight
	ShuntUp
	ShuntDown
	ShuntUpRight
	ShuntDownLeft
)

// Shunt scrolls the buffers by one UDG in dir, memmove-ing the retained
// pixels and repainting only the freshly exposed edge column/row(s).
func (b *Buffers) Shunt(dir ShuntDir, src TileSource, indoors bool, glyphs GlyphSource) {
	switch dir {
	case ShuntLeft:
		b.MapPositionX--
		b.shiftColumns(1)
		b.repaintEdgeColumn(0, src, indoors, glyphs)
	case ShuntRight:
		b.MapPositionX++
		b.shiftColumns(-1)
		b.repaintEdgeColumn(Columns-1, src, indoors, glyphs)
	case ShuntUp:
		b.MapPositionY--
		b.shiftRows(1)
		b.repaintEdgeRow(0, src, indoors, glyphs)
	case ShuntDown:
		b.MapPositionY++
		b.shiftRows(-1)
		b.repaintEdgeRow(Rows-1, src, indoors, glyphs)
	case ShuntUpRight:
		b.MapPositionX++
		b.MapPositionY--
		b.shiftColumns(-1)
		b.shiftRows(1)
		b.repaintEdgeColumn(Columns-1, src, indoors, glyphs)
		b.repaintEdgeRow(0, src, indoors, glyphs)
	case ShuntDownLeft:
		b.MapPositionX--
		b.MapPositionY++
		b.shiftColumns(1)
		b.shiftRows(-1)
		b.repaintEdgeColumn(0, src, indoors, glyphs)
		b.repaintEdgeRow(Rows-1, src, indoors, glyphs)
	}
}

func (b *Buffers) shiftColumns(delta int) {
	if delta < 0 {
		for row := 0; row < Rows; row++ {
			copy(b.TileBuf[row][:Columns-1], b.TileBuf[row][1:])
			copy(b.WindowBuf[row][:Columns-1], b.WindowBuf[row][1:])
		}
	} else {
		for row := 0; row < Rows; row++ {
			copy(b.TileBuf[row][1:], b.TileBuf[row][:Columns-1])
			copy(b.WindowBuf[row][1:], b.WindowBuf[row][:Columns-1])
		}
	}
}

func (b *Buffers) shiftRows(delta int) {
	if delta < 0 {
		copy(b.TileBuf[:Rows-1], b.TileBuf[1:])
		copy(b.WindowBuf[:Rows-1], b.WindowBuf[1:])
	} else {
		copy(b.TileBuf[1:], b.TileBuf[:Rows-1])
		copy(b.WindowBuf[1:], b.WindowBuf[:Rows-1])
	}
}

func (b *Buffers) repaintEdgeColumn(col int, src TileSource, indoors bool, glyphs GlyphSource) {
	offCol := (b.MapPositionX%SupertileSize + SupertileSize) % SupertileSize
	offRow := (b.MapPositionY%SupertileSize + SupertileSize) % SupertileSize
	for row := 0; row < Rows; row++ {
		superCol := (col + offCol) / SupertileSize
		superRow := (row + offRow) / SupertileSize
		if superRow >= MapBufHeight || superCol >= MapBufWidth {
			continue
		}
		expanded := src.ExpandSupertile(b.MapBuf[superRow][superCol], indoors)
		tile := expanded[(row+offRow)%SupertileSize][(col+offCol)%SupertileSize]
		b.TileBuf[row][col] = tile
		b.WindowBuf[row][col] = glyphs.Glyph(tile)
	}
}

func (b *Buffers) repaintEdgeRow(row int, src TileSource, indoors bool, glyphs GlyphSource) {
	offCol := (b.MapPositionX%SupertileSize + SupertileSize) % SupertileSize
	offRow := (b.MapPositionY%SupertileSize + SupertileSize) % SupertileSize
	for col := 0; col < Columns; col++ {
		superCol := (col + offCol) / SupertileSize
		superRow := (row + offRow) / SupertileSize
		if superRow >= MapBufHeight || superCol >= MapBufWidth {
			continue
		}
		expanded := src.ExpandSupertile(b.MapBuf[superRow][superCol], indoors)
		tile := expanded[(row+offRow)%SupertileSize][(col+offCol)%SupertileSize]
		b.TileBuf[row][col] = tile
		b.WindowBuf[row][col] = glyphs.Glyph(tile)
	}
}

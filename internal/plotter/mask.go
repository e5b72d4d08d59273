package plotter

import "github.com/dpt/greatescape-core/internal/world"

// MaskSource supplies the pixel content of one of the NumInteriorMasks
// shared RLE mask bitmaps, decoded into an 8-row tile. Static mask art
// lives outside this package, the same way TileSource/GlyphSource supply
// map and font art.
type MaskSource interface {
	Mask(index uint8) [8]byte
}

// maskHorizontalSlop/maskVerticalSlop/maskVerticalGrow are the
// render_mask_buffer bounds-overlap tolerances (in UDG units): a mask is
// a selection candidate when its iso bounds are within ±3 columns and
// ±4/+5 rows of the sprite's own iso footprint.
const (
	maskHorizontalSlop = 3
	maskVerticalSlop   = 4
	maskVerticalGrow   = 5
)

// SelectMasks filters room to the MaskPlacements whose bounds overlap a
// sprite's iso footprint (spriteCol, spriteRow, widthUDG, heightUDG) and
// whose map position and height (u/v and w of spritePos) pass the way
// render_mask_buffer's three-part selection test does: bounds overlap,
// then the sprite's stashed map position must be >= the mask's on u and
// > on v, and the sprite's height must be strictly less than the mask's.
func SelectMasks(room []world.MaskPlacement, spriteCol, spriteRow, widthUDG, heightUDG int, spritePos world.Pos8) []world.MaskPlacement {
	selected := make([]world.MaskPlacement, 0, len(room))
	for _, m := range room {
		if int(m.Bounds.X1) < spriteCol-maskHorizontalSlop || int(m.Bounds.X0) > spriteCol+widthUDG+maskHorizontalSlop {
			continue
		}
		if int(m.Bounds.Y1) < spriteRow-maskVerticalSlop || int(m.Bounds.Y0) > spriteRow+heightUDG+maskVerticalGrow {
			continue
		}
		if spritePos.U < m.MapPos.U || spritePos.V <= m.MapPos.V {
			continue
		}
		if spritePos.W >= m.MapPos.W {
			continue
		}
		selected = append(selected, m)
	}
	return selected
}

// BuildMaskBuffer decodes and ORs every selected mask placement via src
// into the single-row-per-byte occlusion buffer ApplyMask consumes,
// positioned relative to the sprite's own origin (originCol, originRow)
// and footprint (widthUDG, heightUDG).
func BuildMaskBuffer(selected []world.MaskPlacement, src MaskSource, originCol, originRow, widthUDG, heightUDG int) MaskBuffer {
	tiles := make([]MaskTile, len(selected))
	for i, m := range selected {
		tiles[i] = MaskTile{Column: int(m.Bounds.X0), Row: int(m.Bounds.Y0), Bits: src.Mask(m.MaskIndex)}
	}
	return RenderMaskBuffer(tiles, originCol, originRow, widthUDG, heightUDG)
}

// MaskTile is one interior-mask tile: a bitmap of which pixels are
// foreground (and so occlude a sprite drawn behind them) at a given
// column/row of a room.
type MaskTile struct {
	Column, Row int
	Bits        [8]byte // one bit per pixel column, set = foreground occludes
}

// MaskBuffer holds the rendered combination of every mask tile overlapping
// the current sprite-plot target, indexed by screen row.
type MaskBuffer struct {
	Rows [8]byte
}

// RenderMaskBuffer composites every tile in tiles whose (Column,Row) falls
// within the plot target's footprint (originCol,originRow)..(+width,+height)
// into a single per-row occlusion mask, OR-ing overlapping tiles together
// so any tile marking a pixel foreground wins.
func RenderMaskBuffer(tiles []MaskTile, originCol, originRow, widthUDG, heightUDG int) MaskBuffer {
	var mb MaskBuffer
	for _, t := range tiles {
		relCol := t.Column - originCol
		relRow := t.Row - originRow
		if relCol < 0 || relCol >= widthUDG || relRow < 0 || relRow >= heightUDG {
			continue
		}
		for row := 0; row < 8; row++ {
			mb.Rows[row] |= t.Bits[row]
		}
	}
	return mb
}

// ApplyMask combines a sprite bitmap byte and its own transparency mask
// with the foreground occlusion mask: a pixel is drawn only when the
// sprite's own mask marks it opaque AND the environment mask does not
// mark that screen pixel as foreground-occluded.
func ApplyMask(bitmap, spriteMask, envMask byte) byte {
	return bitmap & spriteMask &^ envMask
}

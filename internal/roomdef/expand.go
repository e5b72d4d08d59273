// Package roomdef expands an RLE-encoded room-definition object stream
// into tile-buffer placements. The decoder is a tight switch over
// encoded byte ranges rather than a generic parser-combinator, matching
// the hand-rolled bit-packed decoding used elsewhere in this engine.
package roomdef

import "fmt"

// TileWrite is one decoded tile placement into the tile buffer.
type TileWrite struct {
	Column, Row int
	Tile        uint8
}

const (
	escape        uint8 = 0xFF
	runLowStart   uint8 = 0x40
	runLowEnd     uint8 = 0x4F
	runHighStart  uint8 = 0x80
	runHighEnd    uint8 = 0xFE
	transparent   uint8 = 0x00
)

// ExpandObject decodes one object's byte stream starting at (col,row),
// emitting one TileWrite per non-transparent tile laid left-to-right,
// wrapping to column 0 of the next row at tileBufWidth. The encoding:
//
//	<t>                        emit tile t
//	<0xFF> <0x40..0x4F> <t>    emit tiles t, t+1, ... up to 15 times
//	<0xFF> <0x80..0xFE> <t>    emit tile t up to 126 times
//	<0xFF> <0xFF>              emit literal 0xFF
//	tile 0x00 skips (transparent)
func ExpandObject(data []byte, col, row, tileBufWidth int) ([]TileWrite, error) {
	var out []TileWrite
	emit := func(tile uint8) {
		if tile != transparent {
			out = append(out, TileWrite{Column: col, Row: row, Tile: tile})
		}
		col++
		if col >= tileBufWidth {
			col = 0
			row++
		}
	}

	i := 0
	for i < len(data) {
		b := data[i]
		if b != escape {
			emit(b)
			i++
			continue
		}
		// b == escape: look at the next byte to decide the run kind.
		if i+1 >= len(data) {
			return nil, fmt.Errorf("roomdef: truncated escape sequence at byte %d", i)
		}
		marker := data[i+1]
		switch {
		case marker == escape:
			emit(escape)
			i += 2
		case marker >= runLowStart && marker <= runLowEnd:
			if i+2 >= len(data) {
				return nil, fmt.Errorf("roomdef: truncated ascending run at byte %d", i)
			}
			count := int(marker - runLowStart)
			start := data[i+2]
			for n := 0; n < count; n++ {
				emit(start + uint8(n))
			}
			i += 3
		case marker >= runHighStart && marker <= runHighEnd:
			if i+2 >= len(data) {
				return nil, fmt.Errorf("roomdef: truncated repeat run at byte %d", i)
			}
			count := int(marker - runHighStart)
			tile := data[i+2]
			for n := 0; n < count; n++ {
				emit(tile)
			}
			i += 3
		default:
			return nil, fmt.Errorf("roomdef: invalid escape marker 0x%02X at byte %d", marker, i)
		}
	}
	return out, nil
}

package world

// Room identifies a room; 0 is outdoors, 1..58 are interiors.
type Room uint8

const (
	RoomOutdoors Room = 0
	NumRooms          = 59 // room 0 (outdoors) + 58 interiors
)

// Rect is an object-rectangle bound, (x0,x1,y0,y1), used to clip the
// objects placed in a room.
type Rect struct {
	X0, X1, Y0, Y1 uint8
}

// ObjectPlacement places an expandable object at a tile-buffer column/row.
type ObjectPlacement struct {
	ObjectIndex uint8
	Column, Row uint8
}

// NumInteriorMasks is the size of the shared interior mask table: a count
// of interior mask references per room followed by their indices into
// this 47-entry mask table.
const NumInteriorMasks = 47

// ShadowByteCount is the number of roomdef bytes that are backed by live
// game state instead of the static table: beds, benches, and the
// collapsed-tunnel blockage.
const ShadowByteCount = 6

// MaskPlacement is one interior mask reference within a room: which of
// the NumInteriorMasks shared RLE mask bitmaps to draw, the iso-space
// bounds it occupies, and the map position/height render_mask_buffer's
// selection test compares against the sprite being plotted.
type MaskPlacement struct {
	MaskIndex uint8 // index into the NumInteriorMasks-entry table
	Bounds    Rect  // iso-space footprint, in UDG units
	MapPos    Pos8  // map position the selection test compares u/v/w against
}

// RoomDef is the RLE-decoded definition of one room.
type RoomDef struct {
	DimensionsIndex uint8
	Bounds          []Rect
	Masks           []MaskPlacement
	Objects         []ObjectPlacement
	RawObjectBytes  []byte // the encoded object stream, expanded by internal/roomdef

	// ShadowBytes are offsets into RawObjectBytes whose live value is
	// supplied by a ShadowState instead of the static table: a virtual
	// getter (ShadowState.ObjectByte) overrides rather than mutates the
	// static data.
	ShadowBytes [ShadowByteCount]int
}

// ShadowSlot names the six live-state room-def overrides.
type ShadowSlot int

const (
	ShadowBed1 ShadowSlot = iota
	ShadowBed2
	ShadowBed3
	ShadowBench
	ShadowTunnelEntrance
	ShadowTunnelBlockage
)

// ShadowState holds the live values that override the static roomdef bytes.
type ShadowState struct {
	BedOccupied    [3]bool
	BenchOccupied  bool
	TunnelBlocked  bool
}

// ObjectByte returns the live byte at offset i of def's raw object stream,
// substituting the live shadow value when i is one of def's shadow offsets.
func (ss *ShadowState) ObjectByte(def *RoomDef, i int, tileEmptyBed, tileOccupiedBed, tileEmptyBench, tileOccupiedBench, tileBlockage, tileClear uint8) uint8 {
	for slot, off := range def.ShadowBytes {
		if off != i {
			continue
		}
		switch ShadowSlot(slot) {
		case ShadowBed1, ShadowBed2, ShadowBed3:
			if ss.BedOccupied[slot] {
				return tileOccupiedBed
			}
			return tileEmptyBed
		case ShadowBench:
			if ss.BenchOccupied {
				return tileOccupiedBench
			}
			return tileEmptyBench
		case ShadowTunnelEntrance, ShadowTunnelBlockage:
			if ss.TunnelBlocked {
				return tileBlockage
			}
			return tileClear
		}
	}
	return def.RawObjectBytes[i]
}

package plotter

import "testing"

type constTileSource struct {
	super func(col, row int) uint16
	tiles [SupertileSize][SupertileSize]uint8
}

func (s constTileSource) Supertile(col, row int) uint16 { return s.super(col, row) }
func (s constTileSource) ExpandSupertile(index uint16, indoors bool) [SupertileSize][SupertileSize]uint8 {
	return s.tiles
}

type constGlyphs struct{}

func (constGlyphs) Glyph(tile uint8) [8]byte { return [8]byte{tile} }

func TestGetSupertilesAnchorsOnMapPosition(t *testing.T) {
	var b Buffers
	b.MapPositionX = 8
	b.MapPositionY = 4
	src := constTileSource{super: func(col, row int) uint16 { return uint16(col*10 + row) }}
	b.GetSupertiles(src)
	if b.MapBuf[0][0] != uint16(2*10+1) {
		t.Fatalf("expected anchor at supertile (2,1), got %d", b.MapBuf[0][0])
	}
}

func TestPlotAllTilesFillsWindowBuffer(t *testing.T) {
	var b Buffers
	tiles := [SupertileSize][SupertileSize]uint8{}
	for r := range tiles {
		for c := range tiles[r] {
			tiles[r][c] = uint8(r*4 + c + 1)
		}
	}
	src := constTileSource{super: func(col, row int) uint16 { return 0 }, tiles: tiles}
	b.PlotAllTiles(src, true, constGlyphs{})
	if b.TileBuf[0][0] == 0 {
		t.Fatalf("expected a non-zero tile at origin")
	}
	if b.WindowBuf[0][0][0] != b.TileBuf[0][0] {
		t.Fatalf("expected glyph byte to mirror the tile index for this stub source")
	}
}

func TestShuntLeftPreservesRetainedColumns(t *testing.T) {
	var b Buffers
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			b.TileBuf[row][col] = uint8(col + 1)
		}
	}
	src := constTileSource{super: func(col, row int) uint16 { return 0 }}
	b.Shunt(ShuntLeft, src, true, constGlyphs{})
	if b.TileBuf[0][1] != 1 {
		t.Fatalf("expected column 0's old value to shift into column 1, got %d", b.TileBuf[0][1])
	}
	if b.MapPositionX != -1 {
		t.Fatalf("expected MapPositionX to decrement, got %d", b.MapPositionX)
	}
}

func TestSupertileBankRanges(t *testing.T) {
	cases := []struct {
		index uint16
		bank  int
	}{
		{0, 0}, {44, 0}, {45, 1}, {138, 1}, {139, 2}, {203, 2}, {204, 1}, {218, 1}, {9999, 0},
	}
	for _, c := range cases {
		if got := SupertileBank(c.index); got != c.bank {
			t.Fatalf("SupertileBank(%d) = %d, want %d", c.index, got, c.bank)
		}
	}
}

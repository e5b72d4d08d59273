package plotter

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func TestReverseByteMirrorsBits(t *testing.T) {
	if got := ReverseByte(0b1000_0001); got != 0b1000_0001 {
		t.Fatalf("expected palindromic byte to be its own reverse, got %08b", got)
	}
	if got := ReverseByte(0b1111_0000); got != 0b0000_1111 {
		t.Fatalf("got %08b want %08b", got, 0b0000_1111)
	}
}

type fakeTarget struct {
	rows [16][]byte
}

func newFakeTarget(height int) *fakeTarget {
	var f fakeTarget
	for i := 0; i < height; i++ {
		f.rows[i] = make([]byte, 3)
	}
	return &f
}

func (f *fakeTarget) Row(y int) []byte {
	if y < 0 || y >= len(f.rows) {
		return nil
	}
	return f.rows[y]
}

func TestPlotSpriteByteAligned(t *testing.T) {
	sprite := &world.Sprite{
		WidthBytes: 2,
		Height:     1,
		Bitmap:     []byte{0xFF, 0x0F},
		Mask:       []byte{0xFF, 0xFF},
	}
	dst := newFakeTarget(1)
	PlotSprite(dst, sprite, false, 0, 0, MaskBuffer{})
	if dst.rows[0][0] != 0xFF || dst.rows[0][1] != 0x0F {
		t.Fatalf("got %08b %08b", dst.rows[0][0], dst.rows[0][1])
	}
}

func TestPlotSpriteRespectsEnvironmentMask(t *testing.T) {
	sprite := &world.Sprite{
		WidthBytes: 1,
		Height:     1,
		Bitmap:     []byte{0xFF},
		Mask:       []byte{0xFF},
	}
	dst := newFakeTarget(1)
	env := MaskBuffer{Rows: [8]byte{0xF0}}
	PlotSprite(dst, sprite, false, 0, 0, env)
	if dst.rows[0][0] != 0x0F {
		t.Fatalf("expected environment mask to occlude high nibble, got %08b", dst.rows[0][0])
	}
}

func TestPlotSpriteUnalignedSplitsAcrossBytes(t *testing.T) {
	sprite := &world.Sprite{
		WidthBytes: 1,
		Height:     1,
		Bitmap:     []byte{0xFF},
		Mask:       []byte{0xFF},
	}
	dst := newFakeTarget(1)
	PlotSprite(dst, sprite, false, 4, 0, MaskBuffer{})
	if dst.rows[0][0] != 0x0F {
		t.Fatalf("expected low nibble of byte 0 set, got %08b", dst.rows[0][0])
	}
	if dst.rows[0][1] != 0xF0 {
		t.Fatalf("expected high nibble of byte 1 set, got %08b", dst.rows[0][1])
	}
}

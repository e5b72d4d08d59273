package ai

import "testing"

func TestPRNGAdvancesAndWraps(t *testing.T) {
	var p PRNG
	first := p.Next()
	for i := 0; i < 254; i++ {
		p.Next()
	}
	if p.Cursor() != 255 {
		t.Fatalf("expected cursor at 255, got %d", p.Cursor())
	}
	p.Next() // wraps cursor back to 0
	if p.Cursor() != 0 {
		t.Fatalf("expected cursor to wrap to 0, got %d", p.Cursor())
	}
	p.SetCursor(0)
	if got := p.Next(); got != first {
		t.Fatalf("expected restored cursor to reproduce the same sequence, got %d want %d", got, first)
	}
}

func TestRandomNibblesAreInRange(t *testing.T) {
	for _, v := range randomNibbles {
		if v > 0x0F {
			t.Fatalf("nibble out of range: %d", v)
		}
	}
}

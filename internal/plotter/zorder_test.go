package plotter

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func TestSelectDrawablesSkipsNonDrawableAndEmpty(t *testing.T) {
	var vischars [3]world.Vischar
	vischars[0].Reset()
	vischars[1].Reset()
	vischars[1].Flags = 0
	vischars[1].Counter.SetDrawable(true)
	vischars[1].Iso = world.IsoPos{Y: 5}
	vischars[2].Reset()
	vischars[2].Flags = 0
	vischars[2].Counter.SetDrawable(true)
	vischars[2].Iso = world.IsoPos{Y: 1}

	got := SelectDrawables(vischars[:])
	if len(got) != 2 {
		t.Fatalf("expected 2 drawables, got %d", len(got))
	}
	if got[0].Iso.Y != 1 || got[1].Iso.Y != 5 {
		t.Fatalf("expected back-to-front order by Y, got %+v", got)
	}
}

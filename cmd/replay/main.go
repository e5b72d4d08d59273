// Command replay drives the simulation core headless against
// internal/fakehost for a fixed number of ticks, then printing the tick
// count, the score and how many sounds were played. It exists to exercise the engine
// end to end without a real graphical front end.
package main

import (
	"flag"
	"fmt"
	"os"

	greatescape "github.com/dpt/greatescape-core"
	"github.com/dpt/greatescape-core/internal/fakehost"
	"github.com/dpt/greatescape-core/internal/world"
)

func main() {
	ticks := flag.Int("ticks", 500, "number of ticks to simulate")
	flag.Parse()

	w := newDemoWorld()
	engine, err := greatescape.New(w, blankTileSource{}, blankGlyphSource{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: creating engine: %v\n", err)
		os.Exit(1)
	}

	script := [][6]bool{
		{false, false, false, true, false, false}, // right
		{false, false, false, true, false, false},
		{true, false, false, false, false, false}, // up
		{false, false, false, false, true, false}, // fire
	}
	h := fakehost.NewFakeHost(script)

	for i := 0; i < *ticks; i++ {
		if err := engine.Tick(h); err != nil {
			fmt.Fprintf(os.Stderr, "replay: tick %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	fmt.Printf("ran %d ticks\n", *ticks)
	fmt.Printf("score: %d\n", engine.Score.Value())
	fmt.Printf("sounds played: %d\n", len(h.SoundLog))
}

// newDemoWorld builds the minimal populated World the replay tool needs
// to tick: a hero vischar standing outdoors. Every other table is left
// at its zero value; a real front end supplies the full static tables
// (rooms, doors, items, routes, animations) at load time instead.
func newDemoWorld() *world.World {
	w := &world.World{}
	for i := range w.Vischars {
		w.Vischars[i].Reset()
	}
	hv := &w.Vischars[0]
	hv.Flags = 0
	hv.Character = world.CharacterHero
	hv.Room = world.RoomOutdoors
	hv.Item.Pos = world.Pos8{U: 40, V: 40, W: 0}.ToPos16Outdoors()
	hv.Counter.SetDrawable(true)
	hv.Direction = world.DirBottomRight
	hv.Route.Index = world.RouteWander
	w.Characters[world.CharacterHero].SetOnScreen(true)
	w.ItemsHeld[0] = world.NoItemHeld
	w.ItemsHeld[1] = world.NoItemHeld
	return w
}

// blankTileSource/blankGlyphSource are stand-in map/glyph art: every
// supertile expands to tile 0, and every tile's glyph is blank. A real
// front end supplies its own TileSource/GlyphSource backed by the actual
// map and font data.
type blankTileSource struct{}

func (blankTileSource) Supertile(col, row int) uint16 { return 0 }

func (blankTileSource) ExpandSupertile(index uint16, indoors bool) [4][4]uint8 {
	return [4][4]uint8{}
}

type blankGlyphSource struct{}

func (blankGlyphSource) Glyph(tile uint8) [8]byte { return [8]byte{} }

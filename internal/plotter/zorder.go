package plotter

import (
	"sort"

	"github.com/dpt/greatescape-core/internal/world"
)

// Drawable is one plottable entity for a single frame: either a vischar or
// a movable item, reduced to what the z-order selection and the row-plot
// loop both need.
type Drawable struct {
	Iso     world.IsoPos
	Width   int
	Height  int
	Vischar *world.Vischar // nil for an item-only drawable
}

// SelectDrawables gathers every vischar marked Drawable and sorts them
// back-to-front by depth, so nearer sprites are plotted after (and so on
// top of) farther ones. Depth follows the isometric Y coordinate: larger Y
// is nearer the camera.
func SelectDrawables(vischars []world.Vischar) []Drawable {
	var out []Drawable
	for i := range vischars {
		v := &vischars[i]
		if v.Empty() || !v.Counter.Drawable() {
			continue
		}
		out = append(out, Drawable{
			Iso:     v.Iso,
			Width:   v.Width,
			Height:  v.Height,
			Vischar: v,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Iso.Y < out[j].Iso.Y
	})
	return out
}

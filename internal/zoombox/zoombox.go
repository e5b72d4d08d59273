// Package zoombox implements the expanding-rectangle "iris" animation
// played when the hero enters a room, growing from a single tile at the
// centre of the window out to the full window extent.
package zoombox

// Frame is one step of the iris: the rectangle of UDGs, centred on the
// window, that should be revealed this tick.
type Frame struct {
	X0, Y0, X1, Y1 int
}

// Animation steps the iris outward by step UDGs per tick until it covers
// the full windowWidth x windowHeight window.
type Animation struct {
	centerX, centerY int
	width, height    int
	step             int
	radius           int
}

// New starts an iris animation centred in a window of the given size,
// growing by step UDGs per tick (the original plays two tiles per tick
// on each edge).
func New(windowWidth, windowHeight, step int) *Animation {
	return &Animation{
		centerX: windowWidth / 2,
		centerY: windowHeight / 2,
		width:   windowWidth,
		height:  windowHeight,
		step:    step,
	}
}

// Next advances the iris by one tick, returning the frame to reveal and
// whether the animation has now covered the entire window.
func (a *Animation) Next() (Frame, bool) {
	a.radius += a.step
	x0 := a.centerX - a.radius
	y0 := a.centerY - a.radius
	x1 := a.centerX + a.radius
	y1 := a.centerY + a.radius
	done := x0 <= 0 && y0 <= 0 && x1 >= a.width && y1 >= a.height
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > a.width {
		x1 = a.width
	}
	if y1 > a.height {
		y1 = a.height
	}
	return Frame{X0: x0, Y0: y0, X1: x1, Y1: y1}, done
}

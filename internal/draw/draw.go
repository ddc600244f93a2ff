package draw

import (
	"image/color"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a terminal color from the xterm 256-color palette.
// The zero value is Transparent: nothing is drawn.
type Color uint16

// Transparent leaves pixels untouched.
const Transparent Color = 0

// ANSI256 returns the palette entry i.
func ANSI256(i uint8) Color {
	return Color(i) + 1
}

// Index returns the palette entry. Only valid when c is not Transparent.
func (c Color) Index() uint8 {
	return uint8(c - 1)
}

// cubeLevels are the channel values of the 6x6x6 color cube (entries 16-231).
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// FromRGBA maps c to the closest palette entry in the color cube or the
// grayscale ramp. Alpha is ignored unless fully transparent.
func FromRGBA(c color.RGBA) Color {
	if c.A == 0 {
		return Transparent
	}
	r, g, b := int(c.R), int(c.G), int(c.B)

	ri, gi, bi := nearestLevel(r), nearestLevel(g), nearestLevel(b)
	cube := 16 + 36*ri + 6*gi + bi
	cubeDist := sq(r-cubeLevels[ri]) + sq(g-cubeLevels[gi]) + sq(b-cubeLevels[bi])

	// Gray ramp 232-255 covers 8, 18, ..., 238.
	avg := (r + g + b) / 3
	gi2 := min(23, max(0, (avg-3)/10))
	gv := 8 + 10*gi2
	grayDist := sq(r-gv) + sq(g-gv) + sq(b-gv)

	if grayDist < cubeDist {
		return ANSI256(uint8(232 + gi2))
	}
	return ANSI256(uint8(cube))
}

func nearestLevel(v int) int {
	best, bestDist := 0, 1<<30
	for i, l := range cubeLevels {
		if d := sq(v - l); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func sq(x int) int { return x * x }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

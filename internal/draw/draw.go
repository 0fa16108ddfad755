// Package draw renders to a terminal with half-block characters and
// truecolor escape sequences.
package draw

import (
	"fmt"
	"io"
	"strconv"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is a 24-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// Common colours.
var (
	White  = Color{R: 255, G: 255, B: 255}
	Red    = Color{R: 220, G: 50, B: 47}
	Green  = Color{R: 60, G: 200, B: 90}
	Gray   = Color{R: 90, G: 90, B: 90}
	Orange = Color{R: 246, G: 153, B: 87}
)

// Scale darkens the colour toward black by f in [0, 1].
func (c Color) Scale(f float64) Color {
	f = min(max(f, 0), 1)
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ColorReset restores the default terminal colours.
const ColorReset = "\033[0m"

// appendFG appends the escape sequence selecting c as the foreground colour.
func appendFG(dst []byte, c Color) []byte {
	return appendRGB(append(dst, "\033[38;2;"...), c)
}

// appendBG appends the escape sequence selecting c as the background colour.
func appendBG(dst []byte, c Color) []byte {
	return appendRGB(append(dst, "\033[48;2;"...), c)
}

func appendRGB(dst []byte, c Color) []byte {
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	return append(dst, 'm')
}

// FG returns the escape sequence selecting c as the foreground colour.
func FG(c Color) string {
	return string(appendFG(nil, c))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

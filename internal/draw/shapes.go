package draw

import "math"

// FillCircle fills a circle given in logical coordinates. Circles smaller
// than a pixel still set the pixel under their centre.
func (c *Canvas) FillCircle(center Point, radius float64) {
	cx, cy := center.X*c.scaleX, center.Y*c.scaleY
	rx, ry := radius*c.scaleX, radius*c.scaleY

	c.SetFloat(center.X, center.Y)
	if rx <= 0 || ry <= 0 {
		return
	}

	yStart := max(int(math.Floor(cy-ry)), 0)
	yEnd := min(int(math.Ceil(cy+ry)), c.subPixelHeight-1)
	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for x := int(math.Ceil(cx - half - 0.5)); x <= int(math.Floor(cx+half-0.5)); x++ {
			c.setPixel(x, y)
		}
	}
}

// FillRect fills an axis-aligned rectangle given by its top-left corner and
// size in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+w)*c.scaleX))-1, x0)
	y1 := max(int(math.Ceil((y+h)*c.scaleY))-1, y0)
	for py := max(y0, 0); py <= min(y1, c.subPixelHeight-1); py++ {
		for px := max(x0, 0); px <= min(x1, c.termWidth-1); px++ {
			c.setPixel(px, py)
		}
	}
}

// DrawHealthBar draws a bar of width w at (x, y) whose filled part covers
// fraction of it. The fraction is clamped to [0, 1].
func (c *Canvas) DrawHealthBar(x, y, w, h, fraction float64, fill, empty Color) {
	fraction = min(max(fraction, 0), 1)
	pen := c.pen
	defer c.SetColor(pen)

	c.SetColor(empty)
	c.FillRect(x, y, w, h)
	if fraction > 0 {
		c.SetColor(fill)
		c.FillRect(x, y, w*fraction, h)
	}
}

// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package ssd1306

// Drawing primitives. These mutate the framebuffer only; nothing reaches
// the device until Render. Coordinates outside the display are silently
// dropped, so callers are free to draw shapes that hang off the edges.

// SetPixel turns on the pixel at (x, y).
func (d *Dev) SetPixel(x, y int) {
	d.fb.setPixel(x, y)
}

// ClearPixel turns off the pixel at (x, y).
func (d *Dev) ClearPixel(x, y int) {
	d.fb.clearPixel(x, y)
}

// Pixel reports whether the pixel at (x, y) is on. Out-of-range coordinates
// read as off.
func (d *Dev) Pixel(x, y int) bool {
	return d.fb.pixel(x, y)
}

// plot turns the pixel at (x, y) on or off per set.
func (d *Dev) plot(x, y int, set bool) {
	if set {
		d.fb.setPixel(x, y)
	} else {
		d.fb.clearPixel(x, y)
	}
}

// DrawLine draws a straight line between two points; both endpoints are
// included. With set false the line is cleared instead of drawn.
func (d *Dev) DrawLine(x1, y1, x2, y2 int, set bool) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)

	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}

	err := dx + dy
	x, y := x1, y1
	for {
		d.plot(x, y, set)
		if x == x2 && y == y2 {
			return
		}
		e2 := err * 2
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawBox draws a box with opposite corners (x, y) and (x+width, y+height).
//
// With filled false only the outline is drawn, respecting set. A filled box
// always turns pixels on and ignores set.
func (d *Dev) DrawBox(x, y, width, height int, filled, set bool) {
	if filled {
		// One horizontal line per row, bottom to top.
		for row := y + height; row >= y; row-- {
			d.DrawLine(x, row, x+width, row, true)
		}
		return
	}
	d.DrawLine(x, y, x+width, y, set)
	d.DrawLine(x, y+height, x+width, y+height, set)
	d.DrawLine(x, y, x, y+height, set)
	d.DrawLine(x+width, y, x+width, y+height, set)
}

// DrawChar draws a single character with its top-left corner at (x, y),
// using the built-in 5x7 font. Characters outside the printable ASCII range
// render as the replacement glyph.
func (d *Dev) DrawChar(x, y int, c byte, set bool) {
	g := glyphFor(c)
	for gx := 0; gx < glyphWidth; gx++ {
		for gy := 0; gy < glyphHeight; gy++ {
			if g[gx]&(1<<(glyphHeight-1-gy)) != 0 {
				d.plot(x+gx, y+gy, set)
			}
		}
	}
}

// DrawText draws a string with its top-left corner at (x, y). Each
// character advances 6 pixels (5 glyph columns plus one blank). Text does
// not wrap; anything past the display edge is dropped.
func (d *Dev) DrawText(x, y int, text string, set bool) {
	for i := 0; i < len(text); i++ {
		d.DrawChar(x+i*(glyphWidth+1), y, text[i], set)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

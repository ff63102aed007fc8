// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package ssd1306

// frameBuffer is the host-side copy of the display's pixel memory.
//
// The layout matches the controller's GDDRAM page structure: each page is a
// horizontal band of 8 pixel rows, stored one byte per column with the least
// significant bit at the top of the band. Byte 0 of buf is reserved for the
// I²C control byte that prefixes a frame transmission and is never part of
// the pixel state; keeping it in the same allocation lets Render push the
// whole frame in a single bus transaction.
type frameBuffer struct {
	width int
	pages int
	buf   []byte
}

func newFrameBuffer(width, height int) *frameBuffer {
	pages := height / 8
	return &frameBuffer{
		width: width,
		pages: pages,
		buf:   make([]byte, width*pages+1),
	}
}

// pix returns the pixel region of the buffer, without the control byte.
func (f *frameBuffer) pix() []byte {
	return f.buf[1:]
}

// inBounds reports whether (x, y) addresses a real pixel. Out-of-range
// coordinates are not errors; callers silently drop them.
func (f *frameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.pages*8
}

func (f *frameBuffer) setPixel(x, y int) {
	if !f.inBounds(x, y) {
		return
	}
	f.pix()[f.width*(y>>3)+x] |= 1 << (y & 7)
}

func (f *frameBuffer) clearPixel(x, y int) {
	if !f.inBounds(x, y) {
		return
	}
	f.pix()[f.width*(y>>3)+x] &^= 1 << (y & 7)
}

func (f *frameBuffer) pixel(x, y int) bool {
	if !f.inBounds(x, y) {
		return false
	}
	return f.pix()[f.width*(y>>3)+x]&(1<<(y&7)) != 0
}

// clearAll zeroes the whole buffer, control byte included.
func (f *frameBuffer) clearAll() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

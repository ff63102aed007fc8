// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package ssd1306

import "testing"

func TestFont(t *testing.T) {
	// Verify our glyphs look OK: one per printable character plus the
	// replacement, and no column using more than 7 rows.
	if len(font) != 0x7F-0x20+1 {
		t.Errorf("font not expected length. Got: %d", len(font))
	}
	for i, g := range font {
		for col, bits := range g {
			if bits&0x80 != 0 {
				t.Errorf("glyph 0x%02x column %d uses bit 7", i+0x20, col)
			}
		}
	}
}

func TestGlyphFor(t *testing.T) {
	if glyphFor(' ') != font[0] {
		t.Error("space maps to the wrong glyph")
	}
	if glyphFor('~') != font[0x7E-0x20] {
		t.Error("~ maps to the wrong glyph")
	}
	repl := font[len(font)-1]
	for _, c := range []byte{0x00, 0x1F, 0x7F, 0xFF} {
		if glyphFor(c) != repl {
			t.Errorf("0x%02x does not map to the replacement glyph", c)
		}
	}
}

// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package ssd1306

// Built-in fixed-width font. Each glyph is 5 columns of 7 rows; a column is
// one byte with bit 6 at the top row. The table covers printable ASCII
// (0x20-0x7E) followed by a replacement glyph for everything else.
//
// The table is read-only and shared by every Dev.

const (
	glyphWidth  = 5
	glyphHeight = 7
)

// glyphFor returns the glyph for a character, falling back to the
// replacement glyph for codes outside the printable range.
func glyphFor(c byte) [glyphWidth]byte {
	if c < 0x20 || c > 0x7E {
		return font[len(font)-1]
	}
	return font[c-0x20]
}

var font = [96][glyphWidth]byte{
	{0b0000000, 0b0000000, 0b0000000, 0b0000000, 0b0000000}, // space
	{0b0000000, 0b0000000, 0b1111101, 0b0000000, 0b0000000}, // !
	{0b0000000, 0b1110000, 0b0000000, 0b1110000, 0b0000000}, // "
	{0b0010100, 0b1111111, 0b0010100, 0b1111111, 0b0010100}, // #
	{0b0010010, 0b0101010, 0b1111111, 0b0101010, 0b0100100}, // $
	{0b1100010, 0b1100100, 0b0001000, 0b0010011, 0b0100011}, // %
	{0b0110110, 0b1001001, 0b1010101, 0b0100010, 0b0000101}, // &
	{0b0000000, 0b0000000, 0b1100000, 0b0000000, 0b0000000}, // '
	{0b0000000, 0b0011100, 0b0100010, 0b1000001, 0b0000000}, // (
	{0b0000000, 0b1000001, 0b0100010, 0b0011100, 0b0000000}, // )
	{0b0010100, 0b0001000, 0b0111110, 0b0001000, 0b0010100}, // *
	{0b0001000, 0b0001000, 0b0111110, 0b0001000, 0b0001000}, // +
	{0b0000000, 0b0000101, 0b0000110, 0b0000000, 0b0000000}, // ,
	{0b0001000, 0b0001000, 0b0001000, 0b0001000, 0b0001000}, // -
	{0b0000000, 0b0000011, 0b0000011, 0b0000000, 0b0000000}, // .
	{0b0000010, 0b0000100, 0b0001000, 0b0010000, 0b0100000}, // /
	{0b0111110, 0b1000101, 0b1001001, 0b1010001, 0b0111110}, // 0
	{0b0000000, 0b0100001, 0b1111111, 0b0000001, 0b0000000}, // 1
	{0b0100011, 0b1000101, 0b1001001, 0b1001001, 0b0110001}, // 2
	{0b0100010, 0b1000001, 0b1001001, 0b1001001, 0b0110110}, // 3
	{0b0001100, 0b0010100, 0b0100100, 0b1111111, 0b0000100}, // 4
	{0b1110010, 0b1010001, 0b1010001, 0b1010001, 0b1001110}, // 5
	{0b0011110, 0b0101001, 0b1001001, 0b1001001, 0b0000110}, // 6
	{0b1000000, 0b1000111, 0b1001000, 0b1010000, 0b1100000}, // 7
	{0b0110110, 0b1001001, 0b1001001, 0b1001001, 0b0110110}, // 8
	{0b0110000, 0b1001001, 0b1001001, 0b1001010, 0b0111100}, // 9
	{0b0000000, 0b0110110, 0b0110110, 0b0000000, 0b0000000}, // :
	{0b0000000, 0b0110101, 0b0110110, 0b0000000, 0b0000000}, // ;
	{0b0001000, 0b0010100, 0b0100010, 0b1000001, 0b0000000}, // <
	{0b0010100, 0b0010100, 0b0010100, 0b0010100, 0b0010100}, // =
	{0b0000000, 0b1000001, 0b0100010, 0b0010100, 0b0001000}, // >
	{0b0100000, 0b1000000, 0b1000101, 0b1001000, 0b0110000}, // ?
	{0b0100110, 0b1001001, 0b1001111, 0b1000001, 0b0111110}, // @
	{0b0011111, 0b0100100, 0b1000100, 0b0100100, 0b0011111}, // A
	{0b1000001, 0b1111111, 0b1001001, 0b1001001, 0b0110110}, // B
	{0b0111110, 0b1000001, 0b1000001, 0b1000001, 0b0100010}, // C
	{0b1000001, 0b1111111, 0b1000001, 0b1000001, 0b0111110}, // D
	{0b1111111, 0b1001001, 0b1001001, 0b1001001, 0b1000001}, // E
	{0b1111111, 0b1001000, 0b1001000, 0b1001000, 0b1000000}, // F
	{0b0111110, 0b1000001, 0b1000001, 0b1001001, 0b0101111}, // G
	{0b1111111, 0b0001000, 0b0001000, 0b0001000, 0b1111111}, // H
	{0b0000000, 0b1000001, 0b1111111, 0b1000001, 0b0000000}, // I
	{0b0000010, 0b0000001, 0b1000001, 0b1111110, 0b1000000}, // J
	{0b1111111, 0b0001000, 0b0010100, 0b0100010, 0b1000001}, // K
	{0b1111111, 0b0000001, 0b0000001, 0b0000001, 0b0000001}, // L
	{0b1111111, 0b0100000, 0b0011000, 0b0100000, 0b1111111}, // M
	{0b1111111, 0b0010000, 0b0001000, 0b0000100, 0b1111111}, // N
	{0b0111110, 0b1000001, 0b1000001, 0b1000001, 0b0111110}, // O
	{0b1111111, 0b1001000, 0b1001000, 0b1001000, 0b0110000}, // P
	{0b0111110, 0b1000001, 0b1000101, 0b1000010, 0b0111101}, // Q
	{0b1111111, 0b1001000, 0b1001100, 0b1001010, 0b0110001}, // R
	{0b0110010, 0b1001001, 0b1001001, 0b1001001, 0b0100110}, // S
	{0b1000000, 0b1000000, 0b1111111, 0b1000000, 0b1000000}, // T
	{0b1111110, 0b0000001, 0b0000001, 0b0000001, 0b1111110}, // U
	{0b1111100, 0b0000010, 0b0000001, 0b0000010, 0b1111100}, // V
	{0b1111110, 0b0000001, 0b0001110, 0b0000001, 0b1111110}, // W
	{0b1100011, 0b0010100, 0b0001000, 0b0010100, 0b1100011}, // X
	{0b1110000, 0b0001000, 0b0000111, 0b0001000, 0b1110000}, // Y
	{0b1000011, 0b1000101, 0b1001001, 0b1010001, 0b1100001}, // Z
	{0b0000000, 0b1111111, 0b1000001, 0b1000001, 0b0000000}, // [
	{0b0100000, 0b0010000, 0b0001000, 0b0000100, 0b0000010}, // backslash
	{0b0000000, 0b1000001, 0b1000001, 0b1111111, 0b0000000}, // ]
	{0b0010000, 0b0100000, 0b1000000, 0b0100000, 0b0010000}, // ^
	{0b0000001, 0b0000001, 0b0000001, 0b0000001, 0b0000001}, // _
	{0b0000000, 0b1000000, 0b0100000, 0b0010000, 0b0000000}, // `
	{0b0000010, 0b0010101, 0b0010101, 0b0010101, 0b0001111}, // a
	{0b1111111, 0b0001001, 0b0010001, 0b0010001, 0b0001110}, // b
	{0b0001110, 0b0010001, 0b0010001, 0b0010001, 0b0000010}, // c
	{0b0001110, 0b0010001, 0b0010001, 0b0001001, 0b1111111}, // d
	{0b0001110, 0b0010101, 0b0010101, 0b0010101, 0b0001100}, // e
	{0b0001000, 0b0111111, 0b1001000, 0b1000000, 0b0100000}, // f
	{0b0001000, 0b0010101, 0b0010101, 0b0010101, 0b0011110}, // g
	{0b1111111, 0b0001000, 0b0010000, 0b0010000, 0b0001111}, // h
	{0b0000000, 0b0001001, 0b1011111, 0b0000001, 0b0000000}, // i
	{0b0000010, 0b0000001, 0b0010001, 0b1011110, 0b0000000}, // j
	{0b1111111, 0b0000100, 0b0001010, 0b0010001, 0b0000000}, // k
	{0b0000000, 0b1000001, 0b1111111, 0b0000001, 0b0000000}, // l
	{0b0011111, 0b0010000, 0b0001111, 0b0010000, 0b0001111}, // m
	{0b0011111, 0b0001000, 0b0010000, 0b0010000, 0b0001111}, // n
	{0b0001110, 0b0010001, 0b0010001, 0b0010001, 0b0001110}, // o
	{0b0011111, 0b0010100, 0b0010100, 0b0010100, 0b0001000}, // p
	{0b0001000, 0b0010100, 0b0010100, 0b0001100, 0b0011111}, // q
	{0b0011111, 0b0001000, 0b0010000, 0b0010000, 0b0001000}, // r
	{0b0001001, 0b0010101, 0b0010101, 0b0010101, 0b0000010}, // s
	{0b0010000, 0b1111110, 0b0010001, 0b0000001, 0b0000010}, // t
	{0b0011110, 0b0000001, 0b0000001, 0b0000010, 0b0011111}, // u
	{0b0011100, 0b0000010, 0b0000001, 0b0000010, 0b0011100}, // v
	{0b0011110, 0b0000001, 0b0000110, 0b0000001, 0b0011110}, // w
	{0b0010001, 0b0001010, 0b0000100, 0b0001010, 0b0010001}, // x
	{0b0011000, 0b0000101, 0b0000101, 0b0000101, 0b0011110}, // y
	{0b0010001, 0b0010011, 0b0010101, 0b0011001, 0b0010001}, // z
	{0b0000000, 0b0001000, 0b0110110, 0b1000001, 0b0000000}, // {
	{0b0000000, 0b0000000, 0b1111111, 0b0000000, 0b0000000}, // |
	{0b0000000, 0b1000001, 0b0110110, 0b0001000, 0b0000000}, // }
	{0b0000100, 0b0001000, 0b0001000, 0b0000100, 0b0001000}, // ~
	{0b0000110, 0b0001001, 0b1010001, 0b0000001, 0b0000010}, // replacement
}

// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package screen2d implements an i2c.Bus that emulates a SSD1306 OLED
// display and renders it to the terminal (stdout) using ANSI color codes.
//
// Useful while you are waiting for your super nice OLED display to come by
// mail: point the ssd1306 driver at a screen2d bus and everything the
// driver would push over I²C shows up in the terminal instead. It decodes
// the control-byte framing, the addressing windows and the handful of
// display-state commands, so it doubles as a protocol-level check in tests.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Command opcodes understood by the emulation, from the datasheet.
const (
	_MEMORYMODE         = 0x20
	_COLUMNADDR         = 0x21
	_PAGEADDR           = 0x22
	_SETCONTRAST        = 0x81
	_CHARGEPUMP         = 0x8D
	_SEGREMAP           = 0xA1
	_DISPLAYALLON       = 0xA4
	_NORMALDISPLAY      = 0xA6
	_INVERTDISPLAY      = 0xA7
	_SETMULTIPLEX       = 0xA8
	_DISPLAYOFF         = 0xAE
	_DISPLAYON          = 0xAF
	_COMSCANDEC         = 0xC8
	_SETDISPLAYOFFSET   = 0xD3
	_SETDISPLAYCLOCKDIV = 0xD5
	_SETPRECHARGE       = 0xD9
	_SETCOMPINS         = 0xDA
	_SETVCOMDETECT      = 0xDB
)

// Control bytes prefixing every transaction.
const (
	ctrlCmd  = 0x00
	ctrlData = 0x40
)

// argCount is the number of argument bytes each command consumes. Commands
// not listed here are single-byte.
var argCount = map[byte]int{
	_MEMORYMODE:         1,
	_COLUMNADDR:         2,
	_PAGEADDR:           2,
	_SETCONTRAST:        1,
	_CHARGEPUMP:         1,
	_SETMULTIPLEX:       1,
	_SETDISPLAYOFFSET:   1,
	_SETDISPLAYCLOCKDIV: 1,
	_SETPRECHARGE:       1,
	_SETCOMPINS:         1,
	_SETVCOMDETECT:      1,
}

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the emulated panel dimensions in pixels. H must be a
	// multiple of 8, like the real panel.
	W int
	H int
	// Palette selects the ANSI palette; nil means ansi256.Default.
	Palette *ansi256.Palette
}

// New returns a Dev that renders at the console.
//
// Permits local testing of display output with no hardware attached.
func New(opts *Opts) (*Dev, error) {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that renders to an arbitrary writer. This is the
// constructor to use in tests.
func NewWriter(w io.Writer, opts *Opts) (*Dev, error) {
	if opts.W < 1 || opts.H < 8 || opts.H&7 != 0 {
		return nil, fmt.Errorf("screen2d: invalid dimensions %dx%d", opts.W, opts.H)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	pages := opts.H / 8
	d := &Dev{
		w:        w,
		width:    opts.W,
		height:   opts.H,
		pages:    pages,
		palette:  *p,
		pix:      make([]byte, opts.W*pages),
		pageEnd:  pages - 1,
		colEnd:   opts.W - 1,
		contrast: 0xFF,
		on:       true,
	}
	return d, nil
}

// Dev is a 2D OLED emulator that decodes the SSD1306 I²C protocol and
// outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	pages   int
	palette ansi256.Palette

	// pix mirrors the device GDDRAM: page-major, one byte per column, LSB
	// at the top of the page.
	pix []byte

	// Addressing window and the write pointer within it.
	pageStart, pageEnd, page int
	colStart, colEnd, col    int

	// Command decode state: a command byte whose arguments have not all
	// arrived yet.
	pending     byte
	pendingArgs []byte
	wanted      int

	contrast byte
	inverted bool
	on       bool

	freq physic.Frequency
	buf  bytes.Buffer
}

// String implements i2c.Bus.
func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d}", d.width, d.height)
}

// SetSpeed implements i2c.Bus. The emulated bus accepts any speed.
func (d *Dev) SetSpeed(f physic.Frequency) error {
	d.freq = f
	return nil
}

// Tx implements i2c.Bus.
//
// Writes are decoded per the SSD1306 framing: the first byte selects
// between a command stream (0x00) and a data stream (0x40). The emulated
// display is write-only, so reads fail.
func (d *Dev) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return fmt.Errorf("screen2d: reading from the display is not supported")
	}
	if len(w) == 0 {
		return nil
	}
	switch w[0] {
	case ctrlCmd:
		for _, b := range w[1:] {
			if err := d.command(b); err != nil {
				return err
			}
		}
		return nil
	case ctrlData:
		return d.data(w[1:])
	default:
		return fmt.Errorf("screen2d: unknown control byte 0x%02x", w[0])
	}
}

// command consumes one byte of the command stream, either an opcode or an
// argument of the command before it.
func (d *Dev) command(b byte) error {
	if d.wanted > 0 {
		d.pendingArgs = append(d.pendingArgs, b)
		d.wanted--
		if d.wanted == 0 {
			return d.apply(d.pending, d.pendingArgs)
		}
		return nil
	}
	// SETSTARTLINE encodes the line in the opcode's low bits.
	if b >= 0x40 && b <= 0x7F {
		return nil
	}
	if n := argCount[b]; n > 0 {
		d.pending = b
		d.pendingArgs = d.pendingArgs[:0]
		d.wanted = n
		return nil
	}
	return d.apply(b, nil)
}

// apply executes a fully-assembled command.
func (d *Dev) apply(cmd byte, args []byte) error {
	switch cmd {
	case _PAGEADDR:
		d.pageStart, d.pageEnd = int(args[0]), int(args[1])
		d.page = d.pageStart
	case _COLUMNADDR:
		d.colStart, d.colEnd = int(args[0]), int(args[1])
		d.col = d.colStart
	case _SETCONTRAST:
		d.contrast = args[0]
	case _INVERTDISPLAY:
		d.inverted = true
	case _NORMALDISPLAY:
		d.inverted = false
	case _DISPLAYON:
		d.on = true
	case _DISPLAYOFF:
		d.on = false
	case _MEMORYMODE, _CHARGEPUMP, _SETMULTIPLEX, _SETDISPLAYOFFSET,
		_SETDISPLAYCLOCKDIV, _SETPRECHARGE, _SETCOMPINS, _SETVCOMDETECT,
		_SEGREMAP, _DISPLAYALLON, _COMSCANDEC:
		// Panel configuration; nothing to emulate.
	default:
		return fmt.Errorf("screen2d: unknown command 0x%02x", cmd)
	}
	return nil
}

// data writes pixel bytes at the current addressing window, advancing the
// column pointer and wrapping to the next page as the hardware does in
// horizontal addressing mode. Bytes past the end of the window are dropped.
func (d *Dev) data(p []byte) error {
	for _, b := range p {
		if d.page <= d.pageEnd && d.page < d.pages && d.col < d.width {
			d.pix[d.page*d.width+d.col] = b
		}
		d.col++
		if d.col > d.colEnd {
			d.col = d.colStart
			d.page++
		}
	}
	return d.refresh()
}

// Bounds returns the emulated panel dimensions.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Pixel reports whether the pixel at (x, y) is lit, accounting for the
// display-wide invert and on/off state.
func (d *Dev) Pixel(x, y int) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height || !d.on {
		return false
	}
	lit := d.pix[(y>>3)*d.width+x]&(1<<(y&7)) != 0
	return lit != d.inverted
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the console is not left corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// refresh redraws the whole panel, one terminal row per pixel row. The
// cursor is homed first so successive frames overwrite in place.
func (d *Dev) refresh() error {
	lit := color.NRGBA{d.contrast, d.contrast, d.contrast, 255}
	dark := color.NRGBA{0, 0, 0, 255}

	d.buf.Reset()
	_, _ = d.buf.WriteString("\033[H")
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			c := dark
			if d.Pixel(x, y) {
				c = lit
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ i2c.Bus = &Dev{}

// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

// Command opcodes, from the datasheet. The values are protocol-fixed.
const (
	_MEMORYMODE         = 0x20
	_COLUMNADDR         = 0x21
	_PAGEADDR           = 0x22
	_SETSTARTLINE       = 0x40
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

// Control bytes prefixing every I²C transaction.
const (
	i2cCmd  = 0x00 // the next byte is a command
	i2cData = 0x40 // the remaining bytes are pixel data
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:    128,
	H:    64,
	Addr: 0x3C,
}

// Opts defines the options for the device.
type Opts struct {
	// W and H are the display dimensions in pixels. H must be a multiple of
	// 8; both must fit in a byte.
	W int
	H int
	// Addr is the I²C address of the display, almost always 0x3C.
	Addr uint16
	// ExternalVCC must be set when the panel is powered externally instead
	// of by the controller's internal charge pump. This changes the charge
	// pump and pre-charge settings during initialization.
	ExternalVCC bool
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306
// display controller.
//
// The display is initialized as part of construction; if any command of the
// init sequence fails on the bus, construction fails.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	addr := opts.Addr
	if addr == 0x00 {
		addr = DefaultOpts.Addr
	}
	if opts.W < 1 || opts.W > 255 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", opts.W)
	}
	if opts.H < 8 || opts.H > 255 || opts.H&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid height %d", opts.H)
	}

	d := &Dev{
		c:      &i2c.Dev{Bus: b, Addr: addr},
		rect:   image.Rect(0, 0, opts.W, opts.H),
		extVCC: opts.ExternalVCC,
		fb:     newFrameBuffer(opts.W, opts.H),
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Dev is an open handle to the display controller.
type Dev struct {
	// c carries the bus and device address; it is owned by the caller and
	// must outlive the device.
	c conn.Conn

	rect   image.Rectangle
	extVCC bool

	// fb is the only copy of the pixel state; the device is write-only.
	fb *frameBuffer
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %s}", d.c, d.rect.Max)
}

// init sends the power-up command sequence. It is mostly derived from
// Adafruit's SSD1306 driver; the order matters.
func (d *Dev) init() error {
	chargePump := byte(0x14)
	preCharge := byte(0xF1)
	if d.extVCC {
		chargePump = 0x10
		preCharge = 0x22
	}
	comPins := byte(0x02)
	if d.rect.Dy() == 64 {
		comPins = 0x12
	}

	seq := []struct {
		cmd  byte
		args []byte
	}{
		{_DISPLAYOFF, nil},
		{_SETDISPLAYCLOCKDIV, []byte{0x80}},
		{_SETMULTIPLEX, []byte{byte(d.rect.Dy() - 1)}},
		{_SETDISPLAYOFFSET, []byte{0x00}},
		{_SETSTARTLINE, nil},
		{_CHARGEPUMP, []byte{chargePump}},
		{_MEMORYMODE, []byte{0x00}},
		{_SEGREMAP, nil},
		{_COMSCANDEC, nil},
		{_SETCOMPINS, []byte{comPins}},
		{_SETCONTRAST, []byte{0xFF}},
		{_SETPRECHARGE, []byte{preCharge}},
		{_SETVCOMDETECT, []byte{0x40}},
		{_DISPLAYALLON, nil},
		{_NORMALDISPLAY, nil},
		{_DISPLAYON, nil},
	}
	for _, s := range seq {
		if err := d.sendCommand(s.cmd, s.args...); err != nil {
			return err
		}
	}
	return nil
}

// sendCommand sends one command to the controller, with up to two argument
// bytes. The controller wants each byte in its own transaction, prefixed by
// a command control byte: opcode first, then the arguments in order.
func (d *Dev) sendCommand(cmd byte, args ...byte) error {
	if len(args) > 2 {
		return fmt.Errorf("ssd1306: command 0x%02x takes at most 2 arguments, got %d", cmd, len(args))
	}
	for _, b := range append([]byte{cmd}, args...) {
		if err := d.c.Tx([]byte{i2cCmd, b}, nil); err != nil {
			return fmt.Errorf("ssd1306: command 0x%02x failed: %w", cmd, err)
		}
	}
	return nil
}

// Clear blanks the framebuffer. Like all drawing operations it only touches
// the host-side buffer; the device keeps showing the old frame until the
// next Render.
func (d *Dev) Clear() {
	d.fb.clearAll()
}

// Render pushes the framebuffer to the display.
//
// It sets the addressing window to the full screen, then transmits the
// whole frame as a single data transaction. Cost is always one full frame,
// regardless of how little changed.
func (d *Dev) Render() error {
	if err := d.sendCommand(_PAGEADDR, 0, byte(d.fb.pages-1)); err != nil {
		return err
	}
	if err := d.sendCommand(_COLUMNADDR, 0, byte(d.rect.Dx()-1)); err != nil {
		return err
	}
	d.fb.buf[0] = i2cData
	if err := d.c.Tx(d.fb.buf, nil); err != nil {
		return fmt.Errorf("ssd1306: frame transfer failed: %w", err)
	}
	return nil
}

// SetContrast changes the screen contrast. This is a display-wide setting.
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommand(_SETCONTRAST, level)
}

// SetInvert sets the display to inverted (true) or normal (false) mode.
// This happens on the device and does not modify the framebuffer.
func (d *Dev) SetInvert(invert bool) error {
	if invert {
		return d.sendCommand(_INVERTDISPLAY)
	}
	return d.sendCommand(_NORMALDISPLAY)
}

// Halt implements conn.Resource. It turns the display panel off; the
// framebuffer and the device RAM are left untouched.
func (d *Dev) Halt() error {
	return d.sendCommand(_DISPLAYOFF)
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// The source image is thresholded at mid-gray through the framebuffer's
// pixel operations. Like the other drawing primitives it does not touch the
// device; call Render afterwards.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
			if color.GrayModel.Convert(c).(color.Gray).Y >= 0x80 {
				d.fb.setPixel(x, y)
			} else {
				d.fb.clearPixel(x, y)
			}
		}
	}
	return nil
}

var _ conn.Resource = &Dev{}
var _ display.Drawer = &Dev{}

// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package ssd1306_test

import (
	"image"
	"log"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/ahnlak/pico-pal/ssd1306"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ssd1306.NewI2C(b, &ssd1306.Opts{W: 128, H: 32, Addr: 0x3C})
	if err != nil {
		log.Fatalf("failed to initialize display: %s", err)
	}

	// Exercise the built-in primitives and font.
	dev.Clear()
	dev.DrawBox(0, 0, 64, 31, true, true)
	dev.DrawText(0, 0, "ABCDEFGHIJKLMNOPQRSTU", true)
	dev.DrawText(0, 8, "VWXYZ:0123456789; <=>", false)
	dev.DrawText(0, 16, "abcdefghijklmnopqrstu", true)
	dev.DrawText(0, 24, "vwxyz~({@}) !#$%^&*\"'", true)
	if err := dev.Render(); err != nil {
		log.Fatal(err)
	}
	time.Sleep(time.Second)

	// A closing-then-opening pair of vertical bars with cross lines.
	mid := 63
	_ = dev.SetContrast(255)
	_ = dev.SetInvert(false)
	for x := 0; x < mid; x++ {
		dev.Clear()
		dev.DrawLine(mid-x, 0, mid-x, 31, true)
		dev.DrawLine(mid+x, 0, mid+x, 31, true)
		dev.DrawLine(mid-x, 0, mid+x, 31, true)
		dev.DrawLine(mid-x, 31, mid+x, 0, true)
		dev.DrawText(0, 0, "SSD1306 Driver", true)
		if err := dev.Render(); err != nil {
			log.Fatal(err)
		}
	}
	_ = dev.Halt()
}

// ExampleDev_Draw renders proportional text through the display.Drawer
// interface instead of the built-in fixed-width font.
func ExampleDev_Draw() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ssd1306.NewI2C(b, &ssd1306.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}

	img := image.NewGray(dev.Bounds())
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(0, img.Bounds().Dy()-1-f.Descent),
	}
	drawer.DrawString("Hello from pico-pal!")

	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
	if err := dev.Render(); err != nil {
		log.Fatal(err)
	}
	_ = dev.Halt()
}

// ExampleDev_Draw_gg rasterizes richer vector graphics with gg and a
// truetype face, then blits the result to the display.
func ExampleDev_Draw_gg() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ssd1306.NewI2C(b, &ssd1306.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}

	dc := gg.NewContext(dev.Bounds().Dx(), dev.Bounds().Dy())
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 13}))
	dc.DrawStringAnchored("pico-pal", 64, 16, 0.5, 0.5)
	dc.DrawCircle(64, 48, 12)
	dc.Stroke()

	if err := dev.Draw(dev.Bounds(), dc.Image(), image.Point{}); err != nil {
		log.Fatal(err)
	}
	if err := dev.Render(); err != nil {
		log.Fatal(err)
	}
	_ = dev.Halt()
}

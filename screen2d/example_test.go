// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package screen2d_test

import (
	"log"

	"github.com/ahnlak/pico-pal/screen2d"
	"github.com/ahnlak/pico-pal/ssd1306"
)

func Example() {
	// A screen2d bus stands in for the real display; everything the driver
	// pushes over I²C is rendered to the terminal instead.
	bus, err := screen2d.New(&screen2d.Opts{W: 128, H: 32})
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Halt()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{W: 128, H: 32})
	if err != nil {
		log.Fatal(err)
	}

	dev.Clear()
	dev.DrawText(0, 0, "No hardware needed", true)
	dev.DrawBox(0, 10, 127, 21, false, true)
	if err := dev.Render(); err != nil {
		log.Fatal(err)
	}
}

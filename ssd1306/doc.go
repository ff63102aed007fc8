// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package ssd1306 controls a monochrome OLED display via a SSD1306
// controller over I²C. These displays are cheap and common, most often in
// 128x64 and 128x32 dimensions.
//
// The display is write-only: the driver keeps the only copy of the pixel
// state in a host-side framebuffer and pushes the whole frame to the device
// on Render. There is no differential update; a full frame on a 400kHz bus
// takes a handful of milliseconds, which is plenty for the status-display
// style of use this driver targets.
//
// Drawing primitives (pixels, lines, boxes, a built-in 5x7 font) operate on
// the framebuffer only and never touch the bus. The package also implements
// display.Drawer so arbitrary image.Image content can be blitted.
//
// The driver is not safe for concurrent use; serialize access externally if
// several goroutines share one display.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306

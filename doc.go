// Copyright 2021 Pete Favelle. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package picopal is a container for the Pico PAL device drivers.
//
// The drivers live in their own packages; start with ssd1306 for the OLED
// display driver and screen2d for a hardware-free terminal rendition of it.
package picopal

// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftlcd_test

import (
	"image"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/tftlcd"
	"github.com/GermanBionicSystems/tftlcd/imagergb565"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI bus registry to find the first available SPI bus.
	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dc := gpioreg.ByName("GPIO25")
	rst := gpioreg.ByName("GPIO27")

	dev, err := tftlcd.New(b, dc, rst, &tftlcd.ST7789V2) // Display config and size
	if err != nil {
		log.Fatalf("Failed to initialize driver: %v", err)
	}

	if err := dev.Init(); err != nil {
		log.Fatalf("Failed to initialize display: %v", err)
	}

	// Draw on it. White text on a black background.
	dev.ClearScreen(0x0000)
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  dev.Buffer(),
		Src:  &image.Uniform{imagergb565.RGB565(0xFFFF)},
		Face: f,
		Dot:  fixed.P(0, dev.Bounds().Dy()-1-f.Descent),
	}
	drawer.DrawString("Hello from periph!")

	if err := dev.Flush(); err != nil {
		log.Fatal(err)
	}
}

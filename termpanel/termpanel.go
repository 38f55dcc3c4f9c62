// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termpanel implements a 2D display.Drawer that renders an RGB565
// panel to the terminal (stdout) using ANSI color codes.
//
// Useful to preview tftlcd output on a workstation without the panel wired
// up.
package termpanel

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"

	"github.com/GermanBionicSystems/tftlcd/imagergb565"
)

// Opts represents the options available for this display.
type Opts struct {
	Width   int
	Height  int
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	bounds  image.Rectangle
	palette ansi256.Palette

	pixels *imagergb565.Image
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits local testing of panel drawing code.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	bounds := image.Rect(0, 0, opts.Width, opts.Height)
	d := &Dev{
		w:       colorable.NewColorableStdout(),
		bounds:  bounds,
		palette: *p,
		pixels:  imagergb565.New(bounds),
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("TermPanel{%dx%d}", d.bounds.Dx(), d.bounds.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Show renders the panel area of img to the console.
func (d *Dev) Show(img *imagergb565.Image) error {
	return d.Draw(d.bounds, img, image.Point{})
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return imagergb565.RGB565Model
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.bounds
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.bounds)
	if r.Empty() {
		return nil
	}
	draw.Src.Draw(d.pixels, r, src, sp)
	return d.refresh()
}

// refresh repaints the whole panel. Every other pixel row is sampled so the
// output keeps roughly square proportions in a character cell.
func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\033[H\033[0m")
	for y := 0; y < d.bounds.Dy(); y += 2 {
		for x := 0; x < d.bounds.Dx(); x++ {
			r16, g16, b16, _ := d.pixels.RGB565At(x, y).RGBA()
			c := color.NRGBA{byte(r16 >> 8), byte(g16 >> 8), byte(b16 >> 8), 255}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}

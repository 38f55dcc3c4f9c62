// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftlcd

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/GermanBionicSystems/tftlcd/imagergb565"
)

// Errors returned before any byte is sent to the panel.
var (
	// ErrOutOfBounds is returned when a coordinate or region exceeds the
	// panel or buffer geometry. Coordinates are never silently clamped to
	// hide caller bugs.
	ErrOutOfBounds = errors.New("tftlcd: coordinates out of bounds")
	// ErrInvalidRegion is returned for degenerate regions with inverted
	// corners.
	ErrInvalidRegion = errors.New("tftlcd: invalid region")
)

// Dev is a handle to an initialized display.
type Dev struct {
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinOut

	opts   *Opts
	orient Orientation

	buffer  *imagergb565.Image
	regions []image.Rectangle
}

// New opens a handle to the panel described by opts.
//
// The data/command and reset pins must be configured as outputs. The SPI
// port is configured for 40MHz Mode0 8 bit transfers; the port owns the chip
// select line. Call Init before drawing.
func New(p spi.Port, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	w, h := opts.size(opts.Orientation)
	d := &Dev{
		c:      c,
		dc:     dc,
		rst:    rst,
		opts:   opts,
		orient: opts.Orientation,
		buffer: imagergb565.New(image.Rect(0, 0, w, h)),
	}
	return d, nil
}

// Init resets the panel and runs the controller initialization sequence.
//
// It always starts with a hardware reset, so a failed Init can be retried
// from the top; there is no partial state to resume from. The sequence
// blocks for the hardware mandated settle times.
func (d *Dev) Init() error {
	if err := d.reset(); err != nil {
		return err
	}
	eh := &errorHandler{d: d}
	initPanel(eh, d.opts, d.orient)
	return eh.err
}

// reset toggles the hardware reset line with the fixed hold and settle
// times.
func (d *Dev) reset() error {
	eh := &errorHandler{d: d}

	eh.rstOut(gpio.High)
	time.Sleep(resetHold)
	eh.rstOut(gpio.Low)
	time.Sleep(resetHold)
	eh.rstOut(gpio.High)
	time.Sleep(resetSettle)

	return eh.err
}

// SetOrientation changes the panel scan direction without a full re-init.
//
// When the new orientation swaps the panel aspect, the internal frame buffer
// is replaced by a fresh one with the new geometry; its previous content is
// dropped.
func (d *Dev) SetOrientation(o Orientation) error {
	switch o {
	case Portrait, Landscape, PortraitInverted, LandscapeInverted:
	default:
		return fmt.Errorf("tftlcd: unknown orientation %d", o)
	}

	eh := &errorHandler{d: d}
	eh.sendCommand(madCtl)
	eh.sendData([]byte{d.opts.Madctl[o]})
	if eh.err != nil {
		return eh.err
	}

	d.orient = o
	w, h := d.opts.size(o)
	if r := image.Rect(0, 0, w, h); !d.buffer.Bounds().Eq(r) {
		d.buffer = imagergb565.New(r)
	}
	return nil
}

// Orientation returns the current panel orientation.
func (d *Dev) Orientation() Orientation {
	return d.orient
}

// Buffer returns the internal frame buffer. The buffer is owned by the
// device; drawing into it has no hardware effect until Flush or Show.
func (d *Dev) Buffer() *imagergb565.Image {
	return d.buffer
}

// ClearScreen overwrites every pixel of the internal frame buffer with c.
// No hardware access takes place.
func (d *Dev) ClearScreen(c imagergb565.RGB565) {
	d.buffer.Clear(c)
}

// WritePixel sets one pixel of the internal frame buffer. Out of bounds
// coordinates are rejected with ErrOutOfBounds and leave the buffer
// unchanged. No hardware access takes place.
func (d *Dev) WritePixel(x, y int, c imagergb565.RGB565) error {
	if !(image.Point{X: x, Y: y}.In(d.buffer.Bounds())) {
		return ErrOutOfBounds
	}
	d.buffer.SetRGB565(x, y, c)
	return nil
}

// Flush sends the whole internal frame buffer to the panel.
func (d *Dev) Flush() error {
	return d.Show(d.buffer)
}

// Show sends the whole panel area of img to the display.
func (d *Dev) Show(img *imagergb565.Image) error {
	return d.ShowRegion(d.Bounds(), img)
}

// ShowRegion sends the pixels of img covered by r to the matching panel
// region.
//
// The region is clamped to the panel bounds. A zero-area region is a no-op.
// A region with inverted corners returns ErrInvalidRegion; a region entirely
// off-panel, or one that is not covered by img after clamping, returns
// ErrOutOfBounds. In every error case zero bytes are sent.
func (d *Dev) ShowRegion(r image.Rectangle, img *imagergb565.Image) error {
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return ErrInvalidRegion
	}
	if r.Dx() == 0 || r.Dy() == 0 {
		return nil
	}
	clipped := r.Intersect(d.Bounds())
	if clipped.Empty() {
		return ErrOutOfBounds
	}
	if !clipped.In(img.Bounds()) {
		return ErrOutOfBounds
	}

	eh := &errorHandler{d: d}
	updateRegion(eh, d.opts, d.orient, clipped, img)
	return eh.err
}

// DrawRGB565 sends raw RGB565 pixel data, most significant byte first, to
// the panel region r. The data length must be exactly two bytes per region
// pixel.
func (d *Dev) DrawRGB565(data []byte, r image.Rectangle) error {
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return ErrInvalidRegion
	}
	if r.Dx() == 0 || r.Dy() == 0 {
		return nil
	}
	if len(data) != r.Dx()*r.Dy()*2 {
		return errors.New("tftlcd: data length does not match region size")
	}
	img := &imagergb565.Image{
		Pix:    data,
		Stride: r.Dx() * 2,
		Rect:   r,
	}
	return d.ShowRegion(r, img)
}

// Invert enables or disables display color inversion.
func (d *Dev) Invert(invert bool) error {
	eh := &errorHandler{d: d}
	if invert {
		eh.sendCommand(invOn)
	} else {
		eh.sendCommand(invOff)
	}
	return eh.err
}

// Sleep enters or leaves the panel's low power sleep mode. RAM content is
// kept while sleeping.
func (d *Dev) Sleep(enter bool) error {
	eh := &errorHandler{d: d}
	if enter {
		eh.sendCommand(slpIn)
		eh.delay(sleepInSettle)
	} else {
		eh.sendCommand(slpOut)
		eh.delay(wakeSettle)
	}
	return eh.err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return imagergb565.RGB565Model
}

// Bounds implements display.Drawer. It reflects the current orientation.
func (d *Dev) Bounds() image.Rectangle {
	return d.buffer.Bounds()
}

// Draw implements display.Drawer. The source image is converted into the
// internal frame buffer and the affected panel region is flushed.
func (d *Dev) Draw(dstRect image.Rectangle, src image.Image, srcPts image.Point) error {
	dstRect = dstRect.Intersect(d.Bounds())
	if dstRect.Empty() {
		return nil
	}
	draw.Src.Draw(d.buffer, dstRect, src, srcPts)
	return d.ShowRegion(dstRect, d.buffer)
}

// Halt implements conn.Resource. It turns the display off; Init brings it
// back.
func (d *Dev) Halt() error {
	eh := &errorHandler{d: d}
	eh.sendCommand(dispOff)
	return eh.err
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("tftlcd.Dev{%s, %s, Width: %d, Height: %d}", d.c, d.dc, d.Bounds().Dx(), d.Bounds().Dy())
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}

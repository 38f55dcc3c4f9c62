// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package imagergb565 implements a 16 bits per pixel RGB565 image.
//
// Pixels are stored two bytes each, most significant byte first, which is the
// wire format expected by MIPI-DCS style TFT controllers. The Pix slice of an
// Image can therefore be streamed to a display without conversion.
package imagergb565

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
)

// Errors returned when a region does not fit the buffer it is applied to.
var (
	ErrOutOfBounds   = errors.New("imagergb565: region out of bounds")
	ErrInvalidRegion = errors.New("imagergb565: invalid region")
	ErrSizeMismatch  = errors.New("imagergb565: image sizes do not match")
)

// RGB565 is a 16 bit color with 5 bits red, 6 bits green and 5 bits blue.
type RGB565 uint16

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	// Replicate the high bits into the low bits so 0x1F maps to a full
	// channel, then widen to 16 bits.
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB565(r>>11<<11 | g>>10<<5 | b>>11)
}

// RGB565Model converts any color.Color to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// Image is an in-memory RGB565 frame buffer.
type Image struct {
	// Pix holds the pixel data, two bytes per pixel, most significant byte
	// first. The pixel at (x, y) starts at Pix[(y-Rect.Min.Y)*Stride +
	// (x-Rect.Min.X)*2].
	Pix []byte
	// Stride is the Pix distance in bytes between two vertically adjacent
	// pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// New returns an initialized Image with all pixels set to black.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := w * 2
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model {
	return RGB565Model
}

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y). Pixels outside
// the bounds are black.
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	o := p.PixOffset(x, y)
	return RGB565(binary.BigEndian.Uint16(p.Pix[o:]))
}

// Set implements draw.Image. Pixels outside the bounds are silently dropped,
// as the interface requires.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, RGB565Model.Convert(c).(RGB565))
}

// SetRGB565 sets the pixel at (x, y) without a color model conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	o := p.PixOffset(x, y)
	binary.BigEndian.PutUint16(p.Pix[o:], uint16(c))
}

// PixOffset returns the index into Pix of the first byte of the pixel at
// (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

// Clear overwrites every pixel with c.
func (p *Image) Clear(c RGB565) {
	var px [2]byte
	binary.BigEndian.PutUint16(px[:], uint16(c))
	w := p.Rect.Dx() * 2
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		row := p.Pix[p.PixOffset(p.Rect.Min.X, y):]
		for x := 0; x < w; x += 2 {
			row[x] = px[0]
			row[x+1] = px[1]
		}
	}
}

// SubImage returns an image representing the portion of p visible through r.
// The returned value shares pixels with the original image.
func (p *Image) SubImage(r image.Rectangle) *Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Image{}
	}
	o := p.PixOffset(r.Min.X, r.Min.Y)
	return &Image{
		Pix:    p.Pix[o:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// CopyRegion copies the pixels of src covered by srcRect to this image, with
// the top-left corner of the copied block placed at dstPt. A region that
// would read or write outside either image is rejected wholesale; no partial
// copy takes place.
func (p *Image) CopyRegion(src *Image, srcRect image.Rectangle, dstPt image.Point) error {
	if srcRect.Min.X > srcRect.Max.X || srcRect.Min.Y > srcRect.Max.Y {
		return ErrInvalidRegion
	}
	if srcRect.Empty() {
		return nil
	}
	if !srcRect.In(src.Rect) {
		return ErrOutOfBounds
	}
	dstRect := image.Rectangle{Min: dstPt, Max: dstPt.Add(srcRect.Size())}
	if !dstRect.In(p.Rect) {
		return ErrOutOfBounds
	}
	n := srcRect.Dx() * 2
	for row := 0; row < srcRect.Dy(); row++ {
		so := src.PixOffset(srcRect.Min.X, srcRect.Min.Y+row)
		do := p.PixOffset(dstPt.X, dstPt.Y+row)
		copy(p.Pix[do:do+n], src.Pix[so:so+n])
	}
	return nil
}

// CopyRegions copies each region from src into the same position of this
// image. The first region that does not fit aborts the operation.
func (p *Image) CopyRegions(src *Image, regions []image.Rectangle) error {
	for _, r := range regions {
		if err := p.CopyRegion(src, r, r.Min); err != nil {
			return err
		}
	}
	return nil
}

// DiffBounds returns the minimal rectangle covering every pixel that differs
// between p and other. The zero rectangle is returned when the images are
// identical. Both images must have the same bounds.
func (p *Image) DiffBounds(other *Image) (image.Rectangle, error) {
	if p.Rect != other.Rect {
		return image.Rectangle{}, ErrSizeMismatch
	}
	w := p.Rect.Dx() * 2
	minX, maxX := p.Rect.Max.X, p.Rect.Min.X-1
	minY, maxY := p.Rect.Max.Y, p.Rect.Min.Y-1
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		po := p.PixOffset(p.Rect.Min.X, y)
		oo := other.PixOffset(p.Rect.Min.X, y)
		if bytes.Equal(p.Pix[po:po+w], other.Pix[oo:oo+w]) {
			continue
		}
		if y < minY {
			minY = y
		}
		maxY = y
		for i := 0; i < w; i += 2 {
			if p.Pix[po+i] != other.Pix[oo+i] || p.Pix[po+i+1] != other.Pix[oo+i+1] {
				x := p.Rect.Min.X + i/2
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	if maxY < minY {
		return image.Rectangle{}, nil
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), nil
}

var _ image.Image = &Image{}

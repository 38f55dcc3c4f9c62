// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package imagergb565

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestRGB565RGBA(t *testing.T) {
	for _, tc := range []struct {
		name    string
		c       RGB565
		r, g, b uint32
	}{
		{"black", 0x0000, 0x0000, 0x0000, 0x0000},
		{"white", 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", 0xF800, 0xFFFF, 0x0000, 0x0000},
		{"green", 0x07E0, 0x0000, 0xFFFF, 0x0000},
		{"blue", 0x001F, 0x0000, 0x0000, 0xFFFF},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, a := tc.c.RGBA()
			if r != tc.r || g != tc.g || b != tc.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, 0xffff)", r, g, b, a, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestRGB565Model(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   color.Color
		want RGB565
	}{
		{"red", color.RGBA{0xFF, 0x00, 0x00, 0xFF}, 0xF800},
		{"green", color.RGBA{0x00, 0xFF, 0x00, 0xFF}, 0x07E0},
		{"blue", color.RGBA{0x00, 0x00, 0xFF, 0xFF}, 0x001F},
		{"white", color.White, 0xFFFF},
		{"black", color.Black, 0x0000},
		{"identity", RGB565(0x1234), 0x1234},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := RGB565Model.Convert(tc.in).(RGB565); got != tc.want {
				t.Errorf("Convert(%v) = %#04x, want %#04x", tc.in, uint16(got), uint16(tc.want))
			}
		})
	}
}

func TestSetRoundTrip(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 3))
	img.SetRGB565(2, 1, 0xF800)
	if got := img.RGB565At(2, 1); got != 0xF800 {
		t.Errorf("RGB565At(2, 1) = %#04x, want 0xf800", uint16(got))
	}
	// Big-endian in memory.
	o := img.PixOffset(2, 1)
	if img.Pix[o] != 0xF8 || img.Pix[o+1] != 0x00 {
		t.Errorf("Pix[%d:%d] = % x, want f8 00", o, o+2, img.Pix[o:o+2])
	}
	// Neighbours untouched.
	for _, pt := range []image.Point{{1, 1}, {3, 1}, {2, 0}, {2, 2}} {
		if got := img.RGB565At(pt.X, pt.Y); got != 0 {
			t.Errorf("RGB565At(%v) = %#04x, want 0", pt, uint16(got))
		}
	}
}

func TestSetOutOfBounds(t *testing.T) {
	img := New(image.Rect(0, 0, 2, 2))
	want := make([]byte, len(img.Pix))
	copy(want, img.Pix)
	img.SetRGB565(2, 0, 0xFFFF)
	img.SetRGB565(0, 2, 0xFFFF)
	img.SetRGB565(-1, 0, 0xFFFF)
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("out of bounds Set modified the buffer: % x", img.Pix)
	}
	if got := img.RGB565At(2, 0); got != 0 {
		t.Errorf("RGB565At(2, 0) = %#04x, want 0", uint16(got))
	}
}

func TestClear(t *testing.T) {
	img := New(image.Rect(0, 0, 3, 3))
	img.Clear(0x07E0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := img.RGB565At(x, y); got != 0x07E0 {
				t.Fatalf("RGB565At(%d, %d) = %#04x, want 0x07e0", x, y, uint16(got))
			}
		}
	}
	// Clearing twice is indistinguishable from clearing once.
	before := make([]byte, len(img.Pix))
	copy(before, img.Pix)
	img.Clear(0x07E0)
	if !bytes.Equal(img.Pix, before) {
		t.Error("second Clear changed the buffer")
	}
}

func TestSubImage(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 4))
	sub := img.SubImage(image.Rect(1, 1, 3, 3))
	if got := sub.Bounds(); got != image.Rect(1, 1, 3, 3) {
		t.Fatalf("Bounds() = %v, want (1,1)-(3,3)", got)
	}
	// The view aliases the parent pixels.
	img.SetRGB565(1, 1, 0xBEEF)
	if got := sub.RGB565At(1, 1); got != 0xBEEF {
		t.Errorf("RGB565At(1, 1) through view = %#04x, want 0xbeef", uint16(got))
	}
	sub.SetRGB565(2, 2, 0x1234)
	if got := img.RGB565At(2, 2); got != 0x1234 {
		t.Errorf("RGB565At(2, 2) through parent = %#04x, want 0x1234", uint16(got))
	}
	if got := img.SubImage(image.Rect(10, 10, 12, 12)); !got.Bounds().Empty() {
		t.Errorf("disjoint SubImage bounds = %v, want empty", got.Bounds())
	}
}

func TestCopyRegion(t *testing.T) {
	src := New(image.Rect(0, 0, 4, 4))
	src.SetRGB565(0, 0, 0x1111)
	src.SetRGB565(1, 0, 0x2222)
	src.SetRGB565(0, 1, 0x3333)
	src.SetRGB565(1, 1, 0x4444)

	dst := New(image.Rect(0, 0, 8, 8))
	dst.Clear(0xAAAA)
	if err := dst.CopyRegion(src, image.Rect(0, 0, 2, 2), image.Pt(3, 4)); err != nil {
		t.Fatalf("CopyRegion() failed: %v", err)
	}

	want := map[image.Point]RGB565{
		{3, 4}: 0x1111,
		{4, 4}: 0x2222,
		{3, 5}: 0x3333,
		{4, 5}: 0x4444,
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			expected := RGB565(0xAAAA)
			if c, ok := want[image.Pt(x, y)]; ok {
				expected = c
			}
			if got := dst.RGB565At(x, y); got != expected {
				t.Errorf("RGB565At(%d, %d) = %#04x, want %#04x", x, y, uint16(got), uint16(expected))
			}
		}
	}
}

func TestCopyRegionRejected(t *testing.T) {
	src := New(image.Rect(0, 0, 4, 4))
	src.Clear(0x5555)
	dst := New(image.Rect(0, 0, 4, 4))
	pristine := make([]byte, len(dst.Pix))
	copy(pristine, dst.Pix)

	for _, tc := range []struct {
		name    string
		srcRect image.Rectangle
		dstPt   image.Point
		want    error
	}{
		{"src out of bounds", image.Rect(2, 2, 6, 6), image.Pt(0, 0), ErrOutOfBounds},
		{"dst out of bounds", image.Rect(0, 0, 2, 2), image.Pt(3, 3), ErrOutOfBounds},
		{"inverted", image.Rectangle{Min: image.Pt(3, 3), Max: image.Pt(1, 1)}, image.Pt(0, 0), ErrInvalidRegion},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := dst.CopyRegion(src, tc.srcRect, tc.dstPt); err != tc.want {
				t.Errorf("CopyRegion() = %v, want %v", err, tc.want)
			}
			if !bytes.Equal(dst.Pix, pristine) {
				t.Error("rejected CopyRegion modified the destination")
			}
		})
	}
}

func TestCopyRegionEmpty(t *testing.T) {
	src := New(image.Rect(0, 0, 2, 2))
	dst := New(image.Rect(0, 0, 2, 2))
	if err := dst.CopyRegion(src, image.Rect(1, 1, 1, 1), image.Pt(0, 0)); err != nil {
		t.Errorf("empty region CopyRegion() = %v, want nil", err)
	}
}

func TestCopyRegions(t *testing.T) {
	src := New(image.Rect(0, 0, 4, 4))
	src.Clear(0x00FF)
	dst := New(image.Rect(0, 0, 4, 4))
	regions := []image.Rectangle{
		image.Rect(0, 0, 1, 1),
		image.Rect(2, 2, 4, 4),
	}
	if err := dst.CopyRegions(src, regions); err != nil {
		t.Fatalf("CopyRegions() failed: %v", err)
	}
	if got := dst.RGB565At(0, 0); got != 0x00FF {
		t.Errorf("RGB565At(0, 0) = %#04x, want 0x00ff", uint16(got))
	}
	if got := dst.RGB565At(1, 1); got != 0 {
		t.Errorf("RGB565At(1, 1) = %#04x, want 0", uint16(got))
	}
	if got := dst.RGB565At(3, 3); got != 0x00FF {
		t.Errorf("RGB565At(3, 3) = %#04x, want 0x00ff", uint16(got))
	}
}

func TestDiffBounds(t *testing.T) {
	a := New(image.Rect(0, 0, 8, 8))
	b := New(image.Rect(0, 0, 8, 8))

	r, err := a.DiffBounds(b)
	if err != nil {
		t.Fatalf("DiffBounds() failed: %v", err)
	}
	if !r.Empty() {
		t.Errorf("identical images DiffBounds() = %v, want empty", r)
	}

	b.SetRGB565(2, 3, 0xFFFF)
	b.SetRGB565(5, 6, 0xFFFF)
	r, err = a.DiffBounds(b)
	if err != nil {
		t.Fatalf("DiffBounds() failed: %v", err)
	}
	if want := image.Rect(2, 3, 6, 7); r != want {
		t.Errorf("DiffBounds() = %v, want %v", r, want)
	}

	c := New(image.Rect(0, 0, 4, 4))
	if _, err := a.DiffBounds(c); err != ErrSizeMismatch {
		t.Errorf("DiffBounds() with mismatched sizes = %v, want %v", err, ErrSizeMismatch)
	}
}

func TestNewNegative(t *testing.T) {
	img := New(image.Rectangle{Min: image.Pt(2, 2), Max: image.Pt(0, 0)})
	if len(img.Pix) != 0 {
		t.Errorf("negative bounds allocated %d bytes", len(img.Pix))
	}
}

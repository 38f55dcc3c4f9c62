// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftlcd

import (
	"encoding/binary"
	"image"
	"time"

	"github.com/GermanBionicSystems/tftlcd/imagergb565"
)

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	delay(time.Duration)
}

// Fixed settle times required by both controllers. Undershooting them leaves
// the panel in a state where commands are silently ignored.
const (
	resetHold       = 10 * time.Millisecond
	resetSettle     = 120 * time.Millisecond
	wakeSettle      = 120 * time.Millisecond
	displayOnSettle = 20 * time.Millisecond
	sleepInSettle   = 5 * time.Millisecond
)

// initPanel drives the controller from its post-reset state to ready. The
// sequence is linear: wake, pixel format, scan direction, panel tuning,
// display on. The controller ignores commands issued too early after wake,
// hence the settle delay directly after slpOut.
func initPanel(ctrl controller, opts *Opts, orient Orientation) {
	ctrl.sendCommand(slpOut)
	ctrl.delay(wakeSettle)

	ctrl.sendCommand(colMod)
	ctrl.sendData([]byte{colMod16bpp})

	ctrl.sendCommand(madCtl)
	ctrl.sendData([]byte{opts.Madctl[orient]})

	for _, c := range opts.PanelSetup {
		ctrl.sendCommand(c.Cmd)
		if len(c.Data) != 0 {
			ctrl.sendData(c.Data)
		}
	}

	ctrl.sendCommand(dispOn)
	ctrl.delay(displayOnSettle)
}

// setAddressWindow programs the RAM window that subsequent pixel writes
// fill. Coordinates are sent big-endian, two bytes each, shifted by the
// panel's RAM offsets. The window is inclusive on both ends.
func setAddressWindow(ctrl controller, opts *Opts, orient Orientation, r image.Rectangle) {
	colOff, rowOff := opts.offsets(orient)
	var cols, rows [4]byte

	binary.BigEndian.PutUint16(cols[0:], uint16(r.Min.X+colOff))
	binary.BigEndian.PutUint16(cols[2:], uint16(r.Max.X-1+colOff))
	ctrl.sendCommand(caSet)
	ctrl.sendData(cols[:])

	binary.BigEndian.PutUint16(rows[0:], uint16(r.Min.Y+rowOff))
	binary.BigEndian.PutUint16(rows[2:], uint16(r.Max.Y-1+rowOff))
	ctrl.sendCommand(raSet)
	ctrl.sendData(rows[:])
}

// updateRegion streams the pixels of img covered by r to the panel in
// row-major order. The address window is reprogrammed on every call: the
// controller has no notion of resuming a previous window, so re-asserting it
// keeps the protocol stateless and always correct.
func updateRegion(ctrl controller, opts *Opts, orient Orientation, r image.Rectangle, img *imagergb565.Image) {
	setAddressWindow(ctrl, opts, orient, r)
	ctrl.sendCommand(ramWr)

	n := r.Dx() * 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		o := img.PixOffset(r.Min.X, y)
		ctrl.sendData(img.Pix[o : o+n])
	}
}

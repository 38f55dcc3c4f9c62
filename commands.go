// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftlcd

// MIPI-DCS commands shared by the ST7789V2 and GC9A01A controllers.
const (
	nop      byte = 0x00
	swReset  byte = 0x01
	slpIn    byte = 0x10
	slpOut   byte = 0x11
	ptlOn    byte = 0x12
	norOn    byte = 0x13
	invOff   byte = 0x20
	invOn    byte = 0x21
	gamSet   byte = 0x26
	dispOff  byte = 0x28
	dispOn   byte = 0x29
	caSet    byte = 0x2A
	raSet    byte = 0x2B
	ramWr    byte = 0x2C
	ptlAr    byte = 0x30
	vScrDef  byte = 0x33
	teOff    byte = 0x34
	teOn     byte = 0x35
	madCtl   byte = 0x36
	vScrSAdd byte = 0x37
	colMod   byte = 0x3A
	wrMemC   byte = 0x3C
	wrDisBV  byte = 0x51
	wrCtrlD  byte = 0x53
)

// Memory access control (MADCTL) bits.
const (
	madctlMH  byte = 0x04 // Display data latch order
	madctlBGR byte = 0x08 // BGR color filter panel
	madctlML  byte = 0x10 // Line address order
	madctlMV  byte = 0x20 // Page/column order exchange
	madctlMX  byte = 0x40 // Column address order
	madctlMY  byte = 0x80 // Page address order
)

// Interface pixel format (COLMOD) value for 16 bits per pixel RGB565.
const colMod16bpp byte = 0x05

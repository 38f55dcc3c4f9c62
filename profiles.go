// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftlcd

// Orientation selects the memory scan direction of the panel.
type Orientation int

// Supported orientations.
const (
	Portrait Orientation = iota
	Landscape
	PortraitInverted
	LandscapeInverted
)

// PanelCommand is one entry of a panel specific tuning sequence.
type PanelCommand struct {
	Cmd  byte
	Data []byte
}

// Opts describes a panel wired to one of the supported controllers.
type Opts struct {
	// Panel dimensions in pixels, in portrait orientation.
	Width  int
	Height int

	// ColumnOffset and RowOffset locate the visible panel inside the
	// controller RAM, in portrait orientation. Panels smaller than the
	// controller RAM are usually centered.
	ColumnOffset int
	RowOffset    int

	// Orientation used at construction time.
	Orientation Orientation

	// Madctl holds the memory access control register value for each
	// orientation, indexed by Orientation.
	Madctl [4]byte

	// PanelSetup is the panel specific tuning sequence (porch timing,
	// voltage, gamma) issued during initialization. The bytes are opaque
	// vendor values from the panel datasheets.
	PanelSetup []PanelCommand
}

// size returns the logical panel dimensions for the given orientation.
func (o *Opts) size(orient Orientation) (int, int) {
	if orient == Landscape || orient == LandscapeInverted {
		return o.Height, o.Width
	}
	return o.Width, o.Height
}

// offsets returns the RAM offsets for the given orientation.
func (o *Opts) offsets(orient Orientation) (int, int) {
	if orient == Landscape || orient == LandscapeInverted {
		return o.RowOffset, o.ColumnOffset
	}
	return o.ColumnOffset, o.RowOffset
}

// ST7789V2 contains the configuration for a 240x280 panel driven by the
// Sitronix ST7789V2. The visible area sits 20 rows into the 240x320
// controller RAM.
var ST7789V2 = Opts{
	Width:     240,
	Height:    280,
	RowOffset: 20,
	Madctl:    [4]byte{0x00, 0x78, 0xC0, 0xB8},
	PanelSetup: []PanelCommand{
		{0xB2, []byte{0x0B, 0x0B, 0x00, 0x33, 0x35}}, // Porch control
		{0xB7, []byte{0x11}},                         // Gate control
		{0xBB, []byte{0x35}},                         // VCOM
		{0xC0, []byte{0x2C}},                         // LCM control
		{0xC2, []byte{0x01}},                         // VDV/VRH enable
		{0xC3, []byte{0x0D}},                         // VRH
		{0xC4, []byte{0x20}},                         // VDV
		{0xC6, []byte{0x13}},                         // Frame rate
		{0xD0, []byte{0xA4, 0xA1}},                   // Power control
		{0xD6, []byte{0xA1}},
		{0xE0, []byte{0xF0, 0x06, 0x0B, 0x0A, 0x09, 0x26, 0x29, 0x33, 0x41, 0x18, 0x16, 0x15, 0x29, 0x2D}}, // Positive gamma
		{0xE1, []byte{0xF0, 0x04, 0x08, 0x08, 0x07, 0x03, 0x28, 0x32, 0x40, 0x3B, 0x19, 0x18, 0x2A, 0x2E}}, // Negative gamma
		{0xE4, []byte{0x25, 0x00, 0x00}}, // Gate control
		{invOn, nil},                     // IPS panels want inversion on
	},
}

// GC9A01A contains the configuration for the 240x240 round panels driven by
// the Galaxycore GC9A01A.
var GC9A01A = Opts{
	Width:  240,
	Height: 240,
	Madctl: [4]byte{0x08, 0x68, 0xC8, 0xA8},
	PanelSetup: []PanelCommand{
		{0xEF, nil},
		{0xEB, []byte{0x14}},
		{0xFE, nil}, // Inter register enable 1
		{0xEF, nil}, // Inter register enable 2
		{0xEB, []byte{0x14}},
		{0x84, []byte{0x40}},
		{0x85, []byte{0xFF}},
		{0x86, []byte{0xFF}},
		{0x87, []byte{0xFF}},
		{0x88, []byte{0x0A}},
		{0x89, []byte{0x21}},
		{0x8A, []byte{0x00}},
		{0x8B, []byte{0x80}},
		{0x8C, []byte{0x01}},
		{0x8D, []byte{0x01}},
		{0x8E, []byte{0xFF}},
		{0x8F, []byte{0xFF}},
		{0xB6, []byte{0x00, 0x00}},
		{0x90, []byte{0x08, 0x08, 0x08, 0x08}},
		{0xBD, []byte{0x06}},
		{0xBC, []byte{0x00}},
		{0xFF, []byte{0x60, 0x01, 0x04}},
		{0xC3, []byte{0x13}}, // VREG1A
		{0xC4, []byte{0x13}}, // VREG1B
		{0xC9, []byte{0x22}}, // VREG2A
		{0xBE, []byte{0x11}},
		{0xE1, []byte{0x10, 0x0E}},
		{0xDF, []byte{0x21, 0x0C, 0x02}},
		{0xF0, []byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}}, // Gamma 1
		{0xF1, []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}}, // Gamma 2
		{0xF2, []byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}}, // Gamma 3
		{0xF3, []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}}, // Gamma 4
		{0xED, []byte{0x1B, 0x0B}},
		{0xAE, []byte{0x77}},
		{0xCD, []byte{0x63}},
		{0x70, []byte{0x07, 0x07, 0x04, 0x0E, 0x0F, 0x09, 0x07, 0x08, 0x03}},
		{0xE8, []byte{0x34}}, // Frame rate
		{0x62, []byte{0x18, 0x0D, 0x71, 0xED, 0x70, 0x70, 0x18, 0x0F, 0x71, 0xEF, 0x70, 0x70}},
		{0x63, []byte{0x18, 0x11, 0x71, 0xF1, 0x70, 0x70, 0x18, 0x13, 0x71, 0xF3, 0x70, 0x70}},
		{0x64, []byte{0x28, 0x29, 0xF1, 0x01, 0xF1, 0x00, 0x07}},
		{0x66, []byte{0x3C, 0x00, 0xCD, 0x67, 0x45, 0x45, 0x10, 0x00, 0x00, 0x00}},
		{0x67, []byte{0x00, 0x3C, 0x00, 0x00, 0x00, 0x01, 0x54, 0x10, 0x32, 0x98}},
		{0x74, []byte{0x10, 0x85, 0x80, 0x00, 0x00, 0x4E, 0x00}},
		{0x98, []byte{0x3E, 0x07}},
		{teOn, nil},
		{invOn, nil},
	},
}

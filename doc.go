// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tftlcd controls SPI TFT LCD panels driven by the Sitronix ST7789V2
// or the Galaxycore GC9A01A controller.
//
// Both controllers speak the same MIPI-DCS style command set and differ only
// in their panel tuning tables and geometry, selected through the ST7789V2
// and GC9A01A profiles. Pixels are 16 bit RGB565, managed in a local frame
// buffer (see the imagergb565 subpackage) and flushed to the panel as a
// whole or per region.
//
// Datasheets
//
// https://www.buydisplay.com/download/ic/ST7789V2.pdf
//
// https://www.buydisplay.com/download/ic/GC9A01A.pdf
package tftlcd

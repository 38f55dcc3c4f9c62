// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftlcd

import (
	"errors"
	"image"

	"github.com/GermanBionicSystems/tftlcd/imagergb565"
)

// maxStoredRegions bounds the pending region list, matching the fixed region
// slots of the panel firmware examples.
const maxStoredRegions = 10

// ErrTooManyRegions is returned by StoreRegion once the pending region list
// is full.
var ErrTooManyRegions = errors.New("tftlcd: too many stored regions")

// StoreRegion appends r to the list of pending regions flushed by
// ShowRegions.
func (d *Dev) StoreRegion(r image.Rectangle) error {
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return ErrInvalidRegion
	}
	if len(d.regions) >= maxStoredRegions {
		return ErrTooManyRegions
	}
	d.regions = append(d.regions, r)
	return nil
}

// Regions returns a copy of the pending region list.
func (d *Dev) Regions() []image.Rectangle {
	return append([]image.Rectangle(nil), d.regions...)
}

// ClearRegions drops all pending regions without sending anything.
func (d *Dev) ClearRegions() {
	d.regions = d.regions[:0]
}

// ShowRegions sends every pending region of img to the panel, in store
// order. The first failing region aborts the operation; the pending list is
// kept so the caller can retry.
func (d *Dev) ShowRegions(img *imagergb565.Image) error {
	for _, r := range d.regions {
		if err := d.ShowRegion(r, img); err != nil {
			return err
		}
	}
	return nil
}

// ShowRegionsAndClear sends every pending region of img and, on success,
// clears the pending list.
func (d *Dev) ShowRegionsAndClear(img *imagergb565.Image) error {
	if err := d.ShowRegions(img); err != nil {
		return err
	}
	d.ClearRegions()
	return nil
}

// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package protunits

import (
	"fmt"

	"github.com/usbarmory/GoTEE-psoc6/mem"
	"github.com/usbarmory/GoTEE-psoc6/prot"
)

// SMPU structs holding the region descriptors, a higher index has priority
// over lower ones on overlapping regions.
const (
	SlotCM0PFlash  = 13
	SlotCM0PSRAM   = 12
	SlotCM4Flash   = 11
	SlotSharedSRAM = 10
	SlotCM4SRAM    = 9
)

// FlashClass holds the region size classes used to partition flash.
type FlashClass struct {
	// CM0P is the class of the CM0+ region, matching one sub-region of
	// the CM4 region.
	CM0P prot.RegionSize
	// CM4 is the class of the CM4 region, covering the whole flash.
	CM4 prot.RegionSize
}

// SRAMClass holds the region size classes used to partition SRAM.
type SRAMClass struct {
	CM0P   prot.RegionSize
	Shared prot.RegionSize
	CM4    prot.RegionSize
}

var flashClasses = map[uint32]FlashClass{
	2 * mem.MB:   {CM0P: prot.Size256KB, CM4: prot.Size2MB},
	1 * mem.MB:   {CM0P: prot.Size128KB, CM4: prot.Size1MB},
	512 * mem.KB: {CM0P: prot.Size64KB, CM4: prot.Size512KB},
	256 * mem.KB: {CM0P: prot.Size32KB, CM4: prot.Size256KB},
}

var sramClasses = map[uint32]SRAMClass{
	1 * mem.MB:   {CM0P: prot.Size128KB, Shared: prot.Size128KB, CM4: prot.Size1MB},
	512 * mem.KB: {CM0P: prot.Size64KB, Shared: prot.Size64KB, CM4: prot.Size512KB},
	288 * mem.KB: {CM0P: prot.Size32KB, Shared: prot.Size32KB, CM4: prot.Size256KB},
	256 * mem.KB: {CM0P: prot.Size32KB, Shared: prot.Size32KB, CM4: prot.Size256KB},
	128 * mem.KB: {CM0P: prot.Size16KB, Shared: prot.Size16KB, CM4: prot.Size128KB},
}

// FlashClasses returns the region size classes for the argument flash
// capacity.
func FlashClasses(size uint32) (FlashClass, error) {
	c, ok := flashClasses[size]

	if !ok {
		return c, fmt.Errorf("unsupported flash size %#x", size)
	}

	return c, nil
}

// SRAMClasses returns the region size classes for the argument SRAM
// capacity.
func SRAMClasses(size uint32) (SRAMClass, error) {
	c, ok := sramClasses[size]

	if !ok {
		return c, fmt.Errorf("unsupported SRAM size %#x", size)
	}

	return c, nil
}

// Region represents a protection region descriptor and the SMPU struct it
// is installed in.
type Region struct {
	Name   string
	Slot   int
	Config prot.SMPUConfig
}

// Regions returns the region descriptors for the argument target and
// layout, in installation order.
func Regions(t *mem.Target, l *mem.Layout) (regions []Region, err error) {
	flash, err := FlashClasses(t.FlashSize)

	if err != nil {
		return
	}

	sram, err := SRAMClasses(t.SRAMSize)

	if err != nil {
		return
	}

	regions = []Region{
		{
			Name: "CM0+ flash",
			Slot: SlotCM0PFlash,
			Config: prot.SMPUConfig{
				Address:        t.FlashBase,
				RegionSize:     flash.CM0P,
				Subregions:     0x00, // all sub-regions
				UserPermission: prot.PermRWX,
				PrivPermission: prot.PermRWX,
				Secure:         true,
				PCMask:         prot.PCMask1,
			},
		},
		{
			Name: "CM0+ SRAM",
			Slot: SlotCM0PSRAM,
			Config: prot.SMPUConfig{
				Address:        t.SRAMBase,
				RegionSize:     sram.CM0P,
				Subregions:     0x00, // all sub-regions
				UserPermission: prot.PermRW,
				PrivPermission: prot.PermRW,
				Secure:         true,
				PCMask:         prot.PCMask1,
			},
		},
		{
			Name: "CM4 flash",
			Slot: SlotCM4Flash,
			Config: prot.SMPUConfig{
				Address:        t.FlashBase,
				RegionSize:     flash.CM4,
				Subregions:     0x01, // CM0+ flash excluded
				UserPermission: prot.PermRWX,
				PrivPermission: prot.PermRWX,
				Secure:         false,
				PCMask:         prot.PCMask4,
			},
		},
		{
			Name: "shared SRAM",
			Slot: SlotSharedSRAM,
			Config: prot.SMPUConfig{
				Address:        l.SharedSRAM.Start,
				RegionSize:     sram.Shared,
				Subregions:     0x00, // all sub-regions
				UserPermission: prot.PermRW,
				PrivPermission: prot.PermRW,
				Secure:         false,
				PCMask:         prot.PCMask1 | prot.PCMask4,
			},
		},
		{
			Name: "CM4 SRAM",
			Slot: SlotCM4SRAM,
			Config: prot.SMPUConfig{
				Address:        t.SRAMBase,
				RegionSize:     sram.CM4,
				Subregions:     0x03, // CM0+ and shared SRAM excluded
				UserPermission: prot.PermRW,
				PrivPermission: prot.PermRW,
				Secure:         false,
				PCMask:         prot.PCMask4,
			},
		},
	}

	return
}

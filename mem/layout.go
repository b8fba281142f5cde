// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"fmt"

	"github.com/usbarmory/GoTEE-psoc6/prot"
)

// Device memory map
const (
	FlashBase = 0x10000000
	SRAMBase  = 0x08000000
)

// Capacities
const (
	KB = 1024
	MB = 1024 * KB
)

// Target describes the memory resources of a PSoC 6 part.
type Target struct {
	// Name is the board or part designation
	Name string

	FlashBase uint32
	FlashSize uint32
	SRAMBase  uint32
	SRAMSize  uint32

	// Peri is the peripheral interconnect IP version, which selects the
	// PPU programming model.
	Peri prot.PeriVersion
}

// Region represents a linker-exported memory range.
type Region struct {
	Start  uint32
	Length uint32
}

// End returns the first address past the region.
func (r Region) End() uint32 {
	return r.Start + r.Length
}

func (r Region) String() string {
	return fmt.Sprintf("%#.8x-%#.8x", r.Start, r.End())
}

// Layout holds the region bounds exported by the linker script for the
// CM0+ (secure) and CM4 (application) images.
type Layout struct {
	CM0PFlash  Region
	CM0PSRAM   Region
	CM4Flash   Region
	CM4SRAM    Region
	SharedSRAM Region
}

// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo
// +build tinygo

package main

import (
	"unsafe"

	"github.com/usbarmory/GoTEE-psoc6/mem"
)

// Region bounds exported by the linker script, as absolute symbols.

//go:extern __cm0p_flash_start
var cm0pFlashStart [0]byte

//go:extern __cm0p_flash_length
var cm0pFlashLength [0]byte

//go:extern __cm0p_sram_start
var cm0pSRAMStart [0]byte

//go:extern __cm0p_sram_length
var cm0pSRAMLength [0]byte

//go:extern __cm4_flash_start
var cm4FlashStart [0]byte

//go:extern __cm4_flash_length
var cm4FlashLength [0]byte

//go:extern __cm4_sram_start
var cm4SRAMStart [0]byte

//go:extern __cm4_sram_length
var cm4SRAMLength [0]byte

//go:extern __shared_sram_start
var sharedSRAMStart [0]byte

//go:extern __shared_sram_length
var sharedSRAMLength [0]byte

func symbol(p *[0]byte) uint32 {
	return uint32(uintptr(unsafe.Pointer(p)))
}

func region(start *[0]byte, length *[0]byte) mem.Region {
	return mem.Region{
		Start:  symbol(start),
		Length: symbol(length),
	}
}

// linkerLayout returns the layout of the running images.
func linkerLayout() *mem.Layout {
	return &mem.Layout{
		CM0PFlash:  region(&cm0pFlashStart, &cm0pFlashLength),
		CM0PSRAM:   region(&cm0pSRAMStart, &cm0pSRAMLength),
		CM4Flash:   region(&cm4FlashStart, &cm4FlashLength),
		CM4SRAM:    region(&cm4SRAMStart, &cm4SRAMLength),
		SharedSRAM: region(&sharedSRAMStart, &sharedSRAMLength),
	}
}

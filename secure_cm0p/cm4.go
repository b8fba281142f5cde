// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo
// +build tinygo

package main

import (
	"runtime/volatile"
	"unsafe"

	"github.com/usbarmory/tamago/bits"
)

// CPUSS registers
const (
	CPUSS_BASE = 0x40210000

	CPUSS_CM4_PWR_CTRL          = CPUSS_BASE + 0x080
	CM4_PWR_CTRL_PWR_MODE       = 0
	CM4_PWR_CTRL_VECTKEYSTAT    = 16
	CM4_PWR_CTRL_VECTKEY        = 0x05fa
	CM4_PWR_MODE_ENABLED        = 3
	CPUSS_CM4_STATUS            = CPUSS_BASE + 0x084
	CM4_STATUS_PWR_DONE         = 4
	CPUSS_CM4_VECTOR_TABLE_BASE = CPUSS_BASE + 0x200
)

func reg(addr uint32) *uint32 {
	return (*uint32)(unsafe.Pointer(uintptr(addr)))
}

// bootCM4 releases the CM4 from reset, executing the application image
// whose vector table is at the argument address.
func bootCM4(vectorTable uint32) {
	volatile.StoreUint32(reg(CPUSS_CM4_VECTOR_TABLE_BASE), vectorTable)

	var ctl uint32

	bits.SetN(&ctl, CM4_PWR_CTRL_VECTKEYSTAT, 0xffff, CM4_PWR_CTRL_VECTKEY)
	bits.SetN(&ctl, CM4_PWR_CTRL_PWR_MODE, 0b11, CM4_PWR_MODE_ENABLED)

	volatile.StoreUint32(reg(CPUSS_CM4_PWR_CTRL), ctl)

	for {
		status := volatile.LoadUint32(reg(CPUSS_CM4_STATUS))

		if bits.Get(&status, CM4_STATUS_PWR_DONE, 1) == 1 {
			break
		}
	}
}

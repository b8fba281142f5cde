// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo
// +build tinygo

package prot

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO implements Bus on the memory mapped protection unit registers.
//
// Accesses denied by the protection units raise a bus fault rather than
// returning an error, the readback performed by Unit detects writes which
// are silently ignored.
type MMIO struct{}

func (MMIO) Read(addr uint32) (uint32, error) {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr)))), nil
}

func (MMIO) Write(addr uint32, val uint32) error {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(uintptr(addr))), val)
	return nil
}

// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package prot implements support for the PSoC 6 protection units: the Smart
// Memory Protection Unit (SMPU), the Peripheral Protection Units (PPU) and
// the bus master process context (PC) controls.
//
// The Driver interface describes the operations used to bring up a
// protection domain, Unit implements it on the protection unit registers
// accessed through a Bus.
package prot

import (
	"errors"
	"fmt"
	"strings"
)

// Permission represents a read/write/execute access permission set.
type Permission uint8

// Access permissions
const (
	PermDisabled Permission = 0
	PermR        Permission = 1 << 0
	PermW        Permission = 1 << 1
	PermRW       Permission = PermR | PermW
	PermX        Permission = 1 << 2
	PermRX       Permission = PermR | PermX
	PermWX       Permission = PermW | PermX
	PermRWX      Permission = PermR | PermW | PermX

	permMask = 0b111
)

// Valid reports whether p is a known permission set.
func (p Permission) Valid() bool {
	return p&^permMask == 0
}

// Read reports whether p grants read access.
func (p Permission) Read() bool {
	return p&PermR != 0
}

// Write reports whether p grants write access.
func (p Permission) Write() bool {
	return p&PermW != 0
}

// Exec reports whether p grants execute access.
func (p Permission) Exec() bool {
	return p&PermX != 0
}

func (p Permission) String() string {
	if p == PermDisabled {
		return "---"
	}

	b := []byte("---")

	if p.Read() {
		b[0] = 'r'
	}

	if p.Write() {
		b[1] = 'w'
	}

	if p.Exec() {
		b[2] = 'x'
	}

	return string(b)
}

// ParsePermission converts the textual representation of a permission set
// (e.g. "rw", "rwx", "-") to its value.
func ParsePermission(s string) (p Permission, err error) {
	for _, c := range s {
		switch c {
		case 'r':
			p |= PermR
		case 'w':
			p |= PermW
		case 'x':
			p |= PermX
		case '-':
		default:
			return 0, fmt.Errorf("invalid permission %q", s)
		}
	}

	return
}

// RegionSize represents an SMPU region size class, encoded as in the
// hardware REGION_SIZE field (size = 2^(n+1) bytes).
type RegionSize uint8

// Region size classes
const (
	Size256B RegionSize = 7 + iota
	Size512B
	Size1KB
	Size2KB
	Size4KB
	Size8KB
	Size16KB
	Size32KB
	Size64KB
	Size128KB
	Size256KB
	Size512KB
	Size1MB
	Size2MB
	Size4MB
	Size8MB
	Size16MB
	Size32MB
	Size64MB
	Size128MB
	Size256MB
	Size512MB
	Size1GB
	Size2GB
	Size4GB
)

// Subregions is the number of equally sized sub-regions of an SMPU region.
const Subregions = 8

// ErrRegionSize is returned for sizes which do not correspond to a
// supported region size class.
var ErrRegionSize = errors.New("unsupported region size")

// SizeOf returns the region size class which covers exactly size bytes, an
// error is returned for sizes which are not a supported power of two.
func SizeOf(size uint64) (RegionSize, error) {
	for n := Size256B; n <= Size4GB; n++ {
		if n.Bytes() == size {
			return n, nil
		}
	}

	return 0, fmt.Errorf("%w: %#x", ErrRegionSize, size)
}

// Valid reports whether n is a supported region size class.
func (n RegionSize) Valid() bool {
	return n >= Size256B && n <= Size4GB
}

// Bytes returns the region size in bytes.
func (n RegionSize) Bytes() uint64 {
	return 1 << (uint64(n) + 1)
}

// SubregionBytes returns the size in bytes of each of the eight
// sub-regions.
func (n RegionSize) SubregionBytes() uint64 {
	return n.Bytes() / Subregions
}

func (n RegionSize) String() string {
	if !n.Valid() {
		return fmt.Sprintf("invalid(%d)", uint8(n))
	}

	switch b := n.Bytes(); {
	case b >= 1<<30:
		return fmt.Sprintf("%dGB", b>>30)
	case b >= 1<<20:
		return fmt.Sprintf("%dMB", b>>20)
	case b >= 1<<10:
		return fmt.Sprintf("%dKB", b>>10)
	default:
		return fmt.Sprintf("%dB", b)
	}
}

// PC represents a bus master process context.
type PC uint8

// PCMax is the number of process contexts implemented by the SMPU.
const PCMax = 8

// PCMask selects a set of process contexts, bit n represents PC n+1 as PC
// 0 is always granted access.
type PCMask uint16

// Process context masks
const (
	PCMask1 PCMask = 1 << iota
	PCMask2
	PCMask3
	PCMask4
	PCMask5
	PCMask6
	PCMask7
	PCMask8
	PCMask9
	PCMask10
	PCMask11
	PCMask12
	PCMask13
	PCMask14
	PCMask15

	// AllPCMask selects all supported PC values.
	AllPCMask PCMask = 0x7fff
	// PCLimitMask selects PC values beyond those implemented.
	PCLimitMask PCMask = AllPCMask &^ (1<<(PCMax-1) - 1)
	// DevicePCMask selects all PC values implemented by the device.
	DevicePCMask PCMask = AllPCMask &^ PCLimitMask
)

// MaskOf returns the mask selecting pc, PC 0 has no mask bit.
func MaskOf(pc PC) PCMask {
	if pc == 0 {
		return 0
	}

	return 1 << (pc - 1)
}

// Has reports whether m selects pc, PC 0 is always selected.
func (m PCMask) Has(pc PC) bool {
	return pc == 0 || m&MaskOf(pc) != 0
}

// Master identifies a bus master.
type Master uint8

// Bus masters
const (
	CM0    Master = 0
	Crypto Master = 1
	DW0    Master = 2
	DW1    Master = 3
	CM4    Master = 14
	TC     Master = 15

	// Masters is the number of bus master slots.
	Masters = 16
)

var masterNames = map[Master]string{
	CM0:    "CM0+",
	Crypto: "CRYPTO",
	DW0:    "DW0",
	DW1:    "DW1",
	CM4:    "CM4",
	TC:     "TC",
}

func (m Master) String() string {
	if name, ok := masterNames[m]; ok {
		return name
	}

	return fmt.Sprintf("MS%d", uint8(m))
}

// ParseMaster converts a bus master name (e.g. "cm4") or index to its value.
func ParseMaster(s string) (Master, error) {
	for m, name := range masterNames {
		if strings.EqualFold(s, name) || (m == CM0 && strings.EqualFold(s, "cm0")) {
			return m, nil
		}
	}

	var id uint

	if _, err := fmt.Sscanf(s, "%d", &id); err != nil || id >= Masters {
		return 0, fmt.Errorf("invalid bus master %q", s)
	}

	return Master(id), nil
}

// PeriVersion is the peripheral interconnect IP version, it determines the
// PPU programming model.
type PeriVersion int

// Peripheral interconnect versions
const (
	// PERI1 PPUs are configured through slave/master structs which must
	// be explicitly enabled.
	PERI1 PeriVersion = 1
	// PERI2 PPUs are configured through attribute registers which are
	// always in effect.
	PERI2 PeriVersion = 2
)

// Protection structs
const (
	// SMPUStructs is the number of SMPU structs.
	SMPUStructs = 16
	// PPUProgStructs is the number of programmable PPU structs.
	PPUProgStructs = 16
	// PPUFixedStructs is the number of fixed PPU structs.
	PPUFixedStructs = 32

	// PPUFixedRGSMPU is the fixed region PPU struct (PERI1) covering the
	// SMPU and MPU control registers.
	PPUFixedRGSMPU = 2
	// PPUFixedSMPUMain is the fixed PPU struct (PERI2) covering the SMPU
	// and MPU control registers.
	PPUFixedSMPUMain = 6
)

// SMPUConfig represents an SMPU struct configuration. Address, RegionSize
// and Subregions apply to slave (region) structs only.
type SMPUConfig struct {
	// Address is the region base address, aligned to RegionSize
	Address uint32
	// RegionSize is the region size class
	RegionSize RegionSize
	// Subregions has bit n set for each disabled sub-region n
	Subregions uint8

	// UserPermission applies to unprivileged accesses
	UserPermission Permission
	// PrivPermission applies to privileged accesses
	PrivPermission Permission
	// Secure restricts access to secure transactions
	Secure bool
	// PCMatch selects exact PC matching instead of mask matching
	PCMatch bool
	// PCMask selects the process contexts granted access
	PCMask PCMask
}

// PPUConfig represents a PPU struct configuration.
type PPUConfig struct {
	UserPermission Permission
	PrivPermission Permission
	Secure         bool
	PCMatch        bool
	PCMask         PCMask
}

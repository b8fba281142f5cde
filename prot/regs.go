// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package prot

import (
	"github.com/usbarmory/tamago/bits"
)

// PROT registers
const (
	PROT_BASE = 0x40230000

	SMPU_MS_CTL  = PROT_BASE + 0x4000
	SMPU_STRUCT  = PROT_BASE + 0x6000
	MPU_MS_CTL   = PROT_BASE + 0x8000
	SMPU_STRIDE  = 0x40
	MPU_STRIDE   = 0x400
	MS_CTL_WIDTH = 4

	// SMPU struct register offsets
	SMPU_ADDR0 = 0x00
	SMPU_ATT0  = 0x04
	SMPU_ADDR1 = 0x20
	SMPU_ATT1  = 0x24

	// SMPU_MS_CTL fields
	MS_CTL_P               = 0
	MS_CTL_NS              = 1
	MS_CTL_PC_MASK_15_TO_1 = 17

	// MPU_MS_CTL fields
	MPU_MS_CTL_PC       = 0
	MPU_MS_CTL_PC_SAVED = 16

	// ADDR0 fields
	ADDR_SUBREGION_DISABLE = 0
	ADDR_ADDR24            = 8

	// ATT0/ATT1 fields
	ATT_UR              = 0
	ATT_PR              = 3
	ATT_NS              = 6
	ATT_PC_MASK_15_TO_1 = 9
	ATT_REGION_SIZE     = 24
	ATT_PC_MATCH        = 30
	ATT_ENABLED         = 31
)

// PERI PPU registers
const (
	PERI_BASE = 0x40010000

	PPU_PR     = PERI_BASE + 0x1000
	PPU_FX     = PERI_BASE + 0x4000
	PPU_STRIDE = 0x40

	// PPU struct register offsets
	PPU_SL_SIZE = 0x04
	PPU_SL_ATT0 = 0x10
	PPU_MS_SIZE = 0x24
	PPU_MS_ATT0 = 0x30

	// PPU_SL_SIZE/PPU_MS_SIZE fields
	PPU_SIZE_VALID = 31

	// PPU attribute byte fields, one byte per PC, four PCs per register
	PPU_ATT_UR       = 0
	PPU_ATT_PR       = 3
	PPU_ATT_NS       = 6
	PPU_ATT_PC_MATCH = 7

	PPU_ATT_REGS = 4
)

// SMPUMasterControl returns the address of the SMPU_MS_CTL register of bus
// master m.
func SMPUMasterControl(m Master) uint32 {
	return SMPU_MS_CTL + uint32(m)*MS_CTL_WIDTH
}

// MPUMasterControl returns the address of the MPU_MS_CTL register of bus
// master m.
func MPUMasterControl(m Master) uint32 {
	return MPU_MS_CTL + uint32(m)*MPU_STRIDE
}

// SMPUStruct returns the base address of SMPU struct n.
func SMPUStruct(n int) uint32 {
	return SMPU_STRUCT + uint32(n)*SMPU_STRIDE
}

// PPUProgStruct returns the base address of programmable PPU struct n.
func PPUProgStruct(n int) uint32 {
	return PPU_PR + uint32(n)*PPU_STRIDE
}

// PPUFixedStruct returns the base address of fixed PPU struct n.
func PPUFixedStruct(n int) uint32 {
	return PPU_FX + uint32(n)*PPU_STRIDE
}

// Attributes represents the decoded SMPU ATT0/ATT1 register fields.
type Attributes struct {
	UserPermission Permission
	PrivPermission Permission
	Secure         bool
	PCMatch        bool
	PCMask         PCMask
	RegionSize     RegionSize
	Enabled        bool
}

// Permission returns the permission set applicable to an access of the
// given privilege level.
func (a Attributes) Permission(privileged bool) Permission {
	if privileged {
		return a.PrivPermission
	}

	return a.UserPermission
}

// Permits reports whether a write by a master in process context pc, with
// the given privilege, is allowed by the attributes.
func (a Attributes) Permits(pc PC, privileged bool) bool {
	if pc == 0 {
		return true
	}

	if a.PCMatch {
		if a.PCMask != MaskOf(pc) {
			return false
		}
	} else if !a.PCMask.Has(pc) {
		return false
	}

	return a.Permission(privileged).Write()
}

// DecodeAttributes decodes an SMPU ATT0/ATT1 register value.
func DecodeAttributes(att uint32) Attributes {
	return Attributes{
		UserPermission: Permission(bits.Get(&att, ATT_UR, permMask)),
		PrivPermission: Permission(bits.Get(&att, ATT_PR, permMask)),
		Secure:         bits.Get(&att, ATT_NS, 1) == 0,
		PCMatch:        bits.Get(&att, ATT_PC_MATCH, 1) == 1,
		PCMask:         PCMask(bits.Get(&att, ATT_PC_MASK_15_TO_1, int(AllPCMask))),
		RegionSize:     RegionSize(bits.Get(&att, ATT_REGION_SIZE, 0x1f)),
		Enabled:        bits.Get(&att, ATT_ENABLED, 1) == 1,
	}
}

func encodeAttributes(user Permission, priv Permission, secure bool, pcMatch bool, pcMask PCMask) (att uint32) {
	bits.SetN(&att, ATT_UR, permMask, uint32(user))
	bits.SetN(&att, ATT_PR, permMask, uint32(priv))
	bits.SetN(&att, ATT_NS, 1, boolBit(!secure))
	bits.SetN(&att, ATT_PC_MATCH, 1, boolBit(pcMatch))
	bits.SetN(&att, ATT_PC_MASK_15_TO_1, int(AllPCMask), uint32(pcMask))

	return
}

// PPUAttributes decodes the PPU attribute byte of process context pc from
// the four SL_ATT or MS_ATT registers of a PPU struct.
func PPUAttributes(att [PPU_ATT_REGS]uint32, pc PC) Attributes {
	b := bits.Get(&att[pc/4], 8*int(pc%4), 0xff)

	a := Attributes{
		UserPermission: Permission(bits.Get(&b, PPU_ATT_UR, permMask)),
		PrivPermission: Permission(bits.Get(&b, PPU_ATT_PR, permMask)),
		Secure:         bits.Get(&b, PPU_ATT_NS, 1) == 0,
		PCMatch:        bits.Get(&b, PPU_ATT_PC_MATCH, 1) == 1,
	}

	if b != 0 {
		a.PCMask = MaskOf(pc)
	}

	return a
}

// encodePPUAttributes replicates the attribute byte of a PPU configuration
// for each process context selected by its mask.
func encodePPUAttributes(cfg *PPUConfig) (att [PPU_ATT_REGS]uint32) {
	var b uint32

	bits.SetN(&b, PPU_ATT_UR, permMask, uint32(cfg.UserPermission))
	bits.SetN(&b, PPU_ATT_PR, permMask, uint32(cfg.PrivPermission))
	bits.SetN(&b, PPU_ATT_NS, 1, boolBit(!cfg.Secure))
	bits.SetN(&b, PPU_ATT_PC_MATCH, 1, boolBit(cfg.PCMatch))

	for pc := PC(1); pc < 16; pc++ {
		if cfg.PCMask&MaskOf(pc) == 0 {
			continue
		}

		bits.SetN(&att[pc/4], 8*int(pc%4), 0xff, b)
	}

	return
}

// boolBit returns 1 if b is true, 0 otherwise, for single-bit bits.SetN writes.
func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

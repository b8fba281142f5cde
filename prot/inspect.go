// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package prot

import (
	"github.com/usbarmory/tamago/bits"
)

// PPUState represents the attributes of one side (slave or master) of a PPU
// struct.
type PPUState struct {
	Att   [PPU_ATT_REGS]uint32
	Valid bool
}

// Attributes returns the decoded attributes for process context pc.
func (s PPUState) Attributes(pc PC) Attributes {
	return PPUAttributes(s.Att, pc)
}

// SMPUSlave returns the region descriptor of SMPU struct n.
func (u *Unit) SMPUSlave(n int) (cfg SMPUConfig, enabled bool, err error) {
	if n < 0 || n >= SMPUStructs {
		return cfg, false, StatusBadParam
	}

	base := SMPUStruct(n)

	addr, err := u.read(base + SMPU_ADDR0)

	if err != nil {
		return
	}

	att, err := u.read(base + SMPU_ATT0)

	if err != nil {
		return
	}

	a := DecodeAttributes(att)

	cfg = SMPUConfig{
		Address:        bits.Get(&addr, ADDR_ADDR24, 0xffffff) << ADDR_ADDR24,
		RegionSize:     a.RegionSize,
		Subregions:     uint8(bits.Get(&addr, ADDR_SUBREGION_DISABLE, 0xff)),
		UserPermission: a.UserPermission,
		PrivPermission: a.PrivPermission,
		Secure:         a.Secure,
		PCMatch:        a.PCMatch,
		PCMask:         a.PCMask,
	}

	return cfg, a.Enabled, nil
}

// SMPUMaster returns the master descriptor of SMPU struct n.
func (u *Unit) SMPUMaster(n int) (cfg SMPUConfig, enabled bool, err error) {
	if n < 0 || n >= SMPUStructs {
		return cfg, false, StatusBadParam
	}

	att, err := u.read(SMPUStruct(n) + SMPU_ATT1)

	if err != nil {
		return
	}

	a := DecodeAttributes(att)

	cfg = SMPUConfig{
		UserPermission: a.UserPermission,
		PrivPermission: a.PrivPermission,
		Secure:         a.Secure,
		PCMatch:        a.PCMatch,
		PCMask:         a.PCMask,
	}

	return cfg, a.Enabled, nil
}

// BusMaster returns the SMPU master control settings of bus master m.
func (u *Unit) BusMaster(m Master) (privileged bool, secure bool, pcMask PCMask, err error) {
	if !validMaster(m) {
		return false, false, 0, StatusBadParam
	}

	ctl, err := u.read(SMPUMasterControl(m))

	if err != nil {
		return
	}

	privileged = bits.Get(&ctl, MS_CTL_P, 1) == 1
	secure = bits.Get(&ctl, MS_CTL_NS, 1) == 0
	pcMask = PCMask(bits.Get(&ctl, MS_CTL_PC_MASK_15_TO_1, int(AllPCMask)))

	return
}

// ActivePC returns the active process context of bus master m.
func (u *Unit) ActivePC(m Master) (pc PC, err error) {
	if !validMaster(m) {
		return 0, StatusBadParam
	}

	ctl, err := u.read(MPUMasterControl(m))

	if err != nil {
		return
	}

	return PC(bits.Get(&ctl, MPU_MS_CTL_PC, 0xf)), nil
}

func (u *Unit) ppuState(att0 uint32, size uint32) (s PPUState, err error) {
	for i := range s.Att {
		if s.Att[i], err = u.read(att0 + uint32(i)*4); err != nil {
			return
		}
	}

	val, err := u.read(size)

	if err != nil {
		return
	}

	s.Valid = bits.Get(&val, PPU_SIZE_VALID, 1) == 1

	return
}

// PPUFixedSlave returns the slave attributes of fixed PPU struct n.
func (u *Unit) PPUFixedSlave(n int) (PPUState, error) {
	if n < 0 || n >= PPUFixedStructs {
		return PPUState{}, StatusBadParam
	}

	base := PPUFixedStruct(n)

	return u.ppuState(base+PPU_SL_ATT0, base+PPU_SL_SIZE)
}

// PPUFixedMaster returns the master attributes of fixed PPU struct n.
func (u *Unit) PPUFixedMaster(n int) (PPUState, error) {
	if n < 0 || n >= PPUFixedStructs {
		return PPUState{}, StatusBadParam
	}

	base := PPUFixedStruct(n)

	return u.ppuState(base+PPU_MS_ATT0, base+PPU_MS_SIZE)
}

// PPUProgMaster returns the master attributes of programmable PPU struct n.
func (u *Unit) PPUProgMaster(n int) (PPUState, error) {
	if n < 0 || n >= PPUProgStructs {
		return PPUState{}, StatusBadParam
	}

	base := PPUProgStruct(n)

	return u.ppuState(base+PPU_MS_ATT0, base+PPU_MS_SIZE)
}

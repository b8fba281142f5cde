// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package prot

import (
	"github.com/usbarmory/tamago/bits"
)

// Unit implements Driver on the PROT and PERI protection unit registers.
// Every write is verified by reading back the register.
type Unit struct {
	bus Bus
}

// NewUnit returns a protection unit driver using the argument bus for
// register access.
func NewUnit(bus Bus) *Unit {
	return &Unit{bus: bus}
}

// busStatus passes through bus errors carrying a Status.
func busStatus(err error) error {
	return result(StatusOf(err))
}

func (u *Unit) read(addr uint32) (uint32, error) {
	val, err := u.bus.Read(addr)

	if err != nil {
		return 0, busStatus(err)
	}

	return val, nil
}

// write stores a register value and verifies it.
func (u *Unit) write(addr uint32, val uint32) (err error) {
	if err = u.bus.Write(addr, val); err != nil {
		return busStatus(err)
	}

	res, err := u.read(addr)

	if err != nil {
		return
	}

	if res != val {
		return StatusFailure
	}

	return
}

// setBit sets a single register bit and verifies it.
func (u *Unit) setBit(addr uint32, pos int) (err error) {
	val, err := u.read(addr)

	if err != nil {
		return
	}

	bits.Set(&val, pos)

	return u.write(addr, val)
}

func validMaster(m Master) bool {
	return m < Masters
}

func validPCMask(pcMask PCMask) bool {
	return pcMask&^AllPCMask == 0 && pcMask&PCLimitMask == 0
}

func validPerm(user Permission, priv Permission) bool {
	return user.Valid() && priv.Valid()
}

func validSMPU(n int, cfg *SMPUConfig) bool {
	return n >= 0 && n < SMPUStructs && cfg != nil &&
		validPerm(cfg.UserPermission, cfg.PrivPermission) &&
		validPCMask(cfg.PCMask)
}

// PPU attributes are held for every PC value, unlike SMPU masks.
func validPPU(n int, max int, cfg *PPUConfig) bool {
	return n >= 0 && n < max && cfg != nil &&
		validPerm(cfg.UserPermission, cfg.PrivPermission) &&
		cfg.PCMask&^AllPCMask == 0
}

// ConfigBusMaster implements Driver.ConfigBusMaster.
func (u *Unit) ConfigBusMaster(m Master, privileged bool, secure bool, pcMask PCMask) error {
	if !validMaster(m) || !validPCMask(pcMask) {
		return StatusBadParam
	}

	var ctl uint32

	bits.SetN(&ctl, MS_CTL_P, 1, boolBit(privileged))
	bits.SetN(&ctl, MS_CTL_NS, 1, boolBit(!secure))
	bits.SetN(&ctl, MS_CTL_PC_MASK_15_TO_1, int(AllPCMask), uint32(pcMask))

	return u.write(SMPUMasterControl(m), ctl)
}

// ConfigSMPUSlave implements Driver.ConfigSMPUSlave.
func (u *Unit) ConfigSMPUSlave(n int, cfg *SMPUConfig) (err error) {
	if !validSMPU(n, cfg) || !cfg.RegionSize.Valid() {
		return StatusBadParam
	}

	// the region base must be aligned to its size
	if uint64(cfg.Address)%cfg.RegionSize.Bytes() != 0 {
		return StatusBadParam
	}

	var addr uint32

	bits.SetN(&addr, ADDR_SUBREGION_DISABLE, 0xff, uint32(cfg.Subregions))
	bits.SetN(&addr, ADDR_ADDR24, 0xffffff, cfg.Address>>ADDR_ADDR24)

	att := encodeAttributes(cfg.UserPermission, cfg.PrivPermission, cfg.Secure, cfg.PCMatch, cfg.PCMask)
	bits.SetN(&att, ATT_REGION_SIZE, 0x1f, uint32(cfg.RegionSize))

	base := SMPUStruct(n)

	if err = u.write(base+SMPU_ADDR0, addr); err != nil {
		return
	}

	return u.write(base+SMPU_ATT0, att)
}

// EnableSMPUSlave implements Driver.EnableSMPUSlave.
func (u *Unit) EnableSMPUSlave(n int) error {
	if n < 0 || n >= SMPUStructs {
		return StatusBadParam
	}

	return u.setBit(SMPUStruct(n)+SMPU_ATT0, ATT_ENABLED)
}

// ConfigSMPUMaster implements Driver.ConfigSMPUMaster.
func (u *Unit) ConfigSMPUMaster(n int, cfg *SMPUConfig) error {
	if !validSMPU(n, cfg) {
		return StatusBadParam
	}

	att := encodeAttributes(cfg.UserPermission, cfg.PrivPermission, cfg.Secure, cfg.PCMatch, cfg.PCMask)

	return u.write(SMPUStruct(n)+SMPU_ATT1, att)
}

// EnableSMPUMaster implements Driver.EnableSMPUMaster.
func (u *Unit) EnableSMPUMaster(n int) error {
	if n < 0 || n >= SMPUStructs {
		return StatusBadParam
	}

	return u.setBit(SMPUStruct(n)+SMPU_ATT1, ATT_ENABLED)
}

func (u *Unit) writePPUAttributes(addr uint32, cfg *PPUConfig) (err error) {
	att := encodePPUAttributes(cfg)

	for i, val := range att {
		if err = u.write(addr+uint32(i)*4, val); err != nil {
			return
		}
	}

	return
}

// ConfigPPUFixedRGSlave implements Driver.ConfigPPUFixedRGSlave.
func (u *Unit) ConfigPPUFixedRGSlave(n int, cfg *PPUConfig) error {
	if !validPPU(n, PPUFixedStructs, cfg) {
		return StatusBadParam
	}

	return u.writePPUAttributes(PPUFixedStruct(n)+PPU_SL_ATT0, cfg)
}

// ConfigPPUFixedRGMaster implements Driver.ConfigPPUFixedRGMaster.
func (u *Unit) ConfigPPUFixedRGMaster(n int, cfg *PPUConfig) error {
	if !validPPU(n, PPUFixedStructs, cfg) {
		return StatusBadParam
	}

	return u.writePPUAttributes(PPUFixedStruct(n)+PPU_MS_ATT0, cfg)
}

// EnablePPUFixedRGSlave implements Driver.EnablePPUFixedRGSlave.
func (u *Unit) EnablePPUFixedRGSlave(n int) error {
	if n < 0 || n >= PPUFixedStructs {
		return StatusBadParam
	}

	return u.setBit(PPUFixedStruct(n)+PPU_SL_SIZE, PPU_SIZE_VALID)
}

// EnablePPUFixedRGMaster implements Driver.EnablePPUFixedRGMaster.
func (u *Unit) EnablePPUFixedRGMaster(n int) error {
	if n < 0 || n >= PPUFixedStructs {
		return StatusBadParam
	}

	return u.setBit(PPUFixedStruct(n)+PPU_MS_SIZE, PPU_SIZE_VALID)
}

// ConfigPPUFixedSlaveAtt implements Driver.ConfigPPUFixedSlaveAtt.
func (u *Unit) ConfigPPUFixedSlaveAtt(n int, pcMask PCMask, user Permission, priv Permission, secure bool) error {
	cfg := &PPUConfig{
		UserPermission: user,
		PrivPermission: priv,
		Secure:         secure,
		PCMask:         pcMask,
	}

	if !validPPU(n, PPUFixedStructs, cfg) {
		return StatusBadParam
	}

	return u.writePPUAttributes(PPUFixedStruct(n)+PPU_SL_ATT0, cfg)
}

// ConfigPPUProgMaster implements Driver.ConfigPPUProgMaster.
func (u *Unit) ConfigPPUProgMaster(n int, cfg *PPUConfig) error {
	if !validPPU(n, PPUProgStructs, cfg) {
		return StatusBadParam
	}

	return u.writePPUAttributes(PPUProgStruct(n)+PPU_MS_ATT0, cfg)
}

// EnablePPUProgMaster implements Driver.EnablePPUProgMaster.
func (u *Unit) EnablePPUProgMaster(n int) error {
	if n < 0 || n >= PPUProgStructs {
		return StatusBadParam
	}

	return u.setBit(PPUProgStruct(n)+PPU_MS_SIZE, PPU_SIZE_VALID)
}

// ConfigPPUProgMasterAtt implements Driver.ConfigPPUProgMasterAtt.
func (u *Unit) ConfigPPUProgMasterAtt(n int, pcMask PCMask, user Permission, priv Permission, secure bool) error {
	cfg := &PPUConfig{
		UserPermission: user,
		PrivPermission: priv,
		Secure:         secure,
		PCMask:         pcMask,
	}

	if !validPPU(n, PPUProgStructs, cfg) {
		return StatusBadParam
	}

	return u.writePPUAttributes(PPUProgStruct(n)+PPU_MS_ATT0, cfg)
}

// SetActivePC implements Driver.SetActivePC.
func (u *Unit) SetActivePC(m Master, pc PC) (err error) {
	if !validMaster(m) || pc >= PCMax {
		return StatusBadParam
	}

	addr := MPUMasterControl(m)
	ctl, err := u.read(addr)

	if err != nil {
		return
	}

	bits.SetN(&ctl, MPU_MS_CTL_PC, 0xf, uint32(pc))

	return u.write(addr, ctl)
}

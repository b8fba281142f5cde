// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package sim provides a software model of the PSoC 6 protection unit
// registers, to exercise protection domain configuration away from silicon.
//
// The model enforces the write access rules of the protection units on
// their own control registers: a write is performed on behalf of the
// initiator bus master, with its active process context and privilege
// level, and is denied with prot.StatusNotPermitted when a guarding struct
// does not grant it.
package sim

import (
	"sync"

	"github.com/usbarmory/tamago/bits"

	"github.com/usbarmory/GoTEE-psoc6/prot"
)

type kind int

const (
	none kind = iota
	smpuMasterControl
	mpuMasterControl
	smpuStruct
	ppuProg
	ppuFixed
)

// Machine represents the protection unit register file of a PSoC 6.
type Machine struct {
	sync.Mutex

	peri      prot.PeriVersion
	initiator prot.Master

	regs   map[uint32]uint32
	writes int
	denied int
}

// New returns a machine in its power-on state, with the argument PPU
// programming model, whose registers are accessed by the initiator bus
// master.
func New(peri prot.PeriVersion, initiator prot.Master) *Machine {
	return &Machine{
		peri:      peri,
		initiator: initiator,
		regs:      make(map[uint32]uint32),
	}
}

// Reset restores the power-on state.
func (m *Machine) Reset() {
	m.Lock()
	defer m.Unlock()

	m.regs = make(map[uint32]uint32)
	m.writes = 0
	m.denied = 0
}

// Peri returns the PPU programming model.
func (m *Machine) Peri() prot.PeriVersion {
	return m.peri
}

// Initiator returns the bus master performing register accesses.
func (m *Machine) Initiator() prot.Master {
	m.Lock()
	defer m.Unlock()

	return m.initiator
}

// SetInitiator changes the bus master performing register accesses.
func (m *Machine) SetInitiator(ms prot.Master) {
	m.Lock()
	defer m.Unlock()

	m.initiator = ms
}

// Writes returns the number of accepted register writes.
func (m *Machine) Writes() int {
	m.Lock()
	defer m.Unlock()

	return m.writes
}

// Denied returns the number of register writes denied by the protection
// units.
func (m *Machine) Denied() int {
	m.Lock()
	defer m.Unlock()

	return m.denied
}

// Read implements prot.Bus.
func (m *Machine) Read(addr uint32) (uint32, error) {
	m.Lock()
	defer m.Unlock()

	if k, _, _ := decode(addr); k == none {
		return 0, prot.StatusUnavailable
	}

	return m.regs[addr], nil
}

// Write implements prot.Bus.
func (m *Machine) Write(addr uint32, val uint32) error {
	m.Lock()
	defer m.Unlock()

	k, n, off := decode(addr)

	if k == none {
		return prot.StatusUnavailable
	}

	if !m.permitted(k, n, off) {
		m.denied++
		return prot.StatusNotPermitted
	}

	if k == mpuMasterControl {
		// PC_SAVED is read-only
		saved := m.regs[addr]
		bits.SetN(&val, prot.MPU_MS_CTL_PC_SAVED, 0xf, bits.Get(&saved, prot.MPU_MS_CTL_PC_SAVED, 0xf))
	}

	m.regs[addr] = val
	m.writes++

	return nil
}

// context returns the active process context and privilege level of the
// initiator.
func (m *Machine) context() (pc prot.PC, privileged bool) {
	mpu := m.regs[prot.MPUMasterControl(m.initiator)]
	ctl := m.regs[prot.SMPUMasterControl(m.initiator)]

	pc = prot.PC(bits.Get(&mpu, prot.MPU_MS_CTL_PC, 0xf))
	privileged = bits.Get(&ctl, prot.MS_CTL_P, 1) == 1

	return
}

func (m *Machine) ppuAtt(base uint32) (att [prot.PPU_ATT_REGS]uint32) {
	for i := range att {
		att[i] = m.regs[base+uint32(i)*4]
	}

	return
}

// ppuGuard returns whether one side of a PPU struct is in effect and its
// attributes for pc.
func (m *Machine) ppuGuard(base uint32, att0 uint32, size uint32, pc prot.PC) (bool, prot.Attributes) {
	valid := m.regs[base+size]

	if m.peri == prot.PERI1 && bits.Get(&valid, prot.PPU_SIZE_VALID, 1) == 0 {
		return false, prot.Attributes{}
	}

	return true, prot.PPUAttributes(m.ppuAtt(base+att0), pc)
}

func (m *Machine) permitted(k kind, n int, off uint32) bool {
	pc, privileged := m.context()

	if pc == 0 {
		return true
	}

	var active bool
	var a prot.Attributes

	switch k {
	case smpuMasterControl, mpuMasterControl:
		fx := prot.PPUFixedRGSMPU

		if m.peri == prot.PERI2 {
			fx = prot.PPUFixedSMPUMain
		}

		active, a = m.ppuGuard(prot.PPUFixedStruct(fx), prot.PPU_SL_ATT0, prot.PPU_SL_SIZE, pc)
	case smpuStruct:
		att := m.regs[prot.SMPUStruct(n)+prot.SMPU_ATT1]
		a = prot.DecodeAttributes(att)
		active = a.Enabled
	case ppuProg:
		active, a = m.ppuGuard(prot.PPUProgStruct(n), prot.PPU_MS_ATT0, prot.PPU_MS_SIZE, pc)
	case ppuFixed:
		active, a = m.ppuGuard(prot.PPUFixedStruct(n), prot.PPU_MS_ATT0, prot.PPU_MS_SIZE, pc)
	}

	if !active {
		return true
	}

	return a.Permits(pc, privileged)
}

// decode maps a register address to its struct kind, index and offset.
func decode(addr uint32) (k kind, n int, off uint32) {
	in := func(base uint32, count int, stride uint32) bool {
		if addr < base || addr >= base+uint32(count)*stride {
			return false
		}

		n = int((addr - base) / stride)
		off = (addr - base) % stride

		return true
	}

	switch {
	case in(prot.SMPU_MS_CTL, prot.Masters, prot.MS_CTL_WIDTH):
		return smpuMasterControl, n, off
	case in(prot.MPU_MS_CTL, prot.Masters, prot.MPU_STRIDE) && off == 0:
		return mpuMasterControl, n, off
	case in(prot.SMPU_STRUCT, prot.SMPUStructs, prot.SMPU_STRIDE):
		switch off {
		case prot.SMPU_ADDR0, prot.SMPU_ATT0, prot.SMPU_ADDR1, prot.SMPU_ATT1:
			return smpuStruct, n, off
		}
	case in(prot.PPU_PR, prot.PPUProgStructs, prot.PPU_STRIDE) && off%4 == 0:
		return ppuProg, n, off
	case in(prot.PPU_FX, prot.PPUFixedStructs, prot.PPU_STRIDE) && off%4 == 0:
		return ppuFixed, n, off
	}

	return none, 0, 0
}

// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package protunits configures the PSoC 6 protection units to isolate the
// CM0+ secure image from the CM4 application image.
package protunits

import (
	"github.com/usbarmory/GoTEE-psoc6/mem"
	"github.com/usbarmory/GoTEE-psoc6/prot"
)

// Final process context values
const (
	PCSecure      prot.PC = 1
	PCApplication prot.PC = 4
)

// State represents the progress of a protection domain configuration.
type State int

// Configuration states
const (
	Uninitialized State = iota
	Configuring
	Locked
	Faulted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configuring:
		return "configuring"
	case Locked:
		return "locked"
	case Faulted:
		return "faulted"
	}

	return "unknown"
}

// masterConfig guards every SMPU struct against reconfiguration, all PCs
// are granted read access while only PC=0 can write.
var masterConfig = prot.SMPUConfig{
	UserPermission: prot.PermR,
	PrivPermission: prot.PermR,
	Secure:         false,
	PCMatch:        false,
	PCMask:         prot.DevicePCMask,
}

// metaSlaveConfig denies access to the SMPU/MPU control registers to all
// PCs other than PC=0.
var metaSlaveConfig = prot.PPUConfig{
	UserPermission: prot.PermDisabled,
	PrivPermission: prot.PermDisabled,
	Secure:         true,
	PCMatch:        false,
	PCMask:         0,
}

// ppuMasterConfig guards PPU structs against reconfiguration, all PCs are
// granted read access while only PC=0 can write.
var ppuMasterConfig = prot.PPUConfig{
	UserPermission: prot.PermR,
	PrivPermission: prot.PermR,
	Secure:         false,
	PCMatch:        false,
	PCMask:         prot.DevicePCMask,
}

// Sequence represents a protection domain configuration.
type Sequence struct {
	// Driver performs the protection unit operations
	Driver prot.Driver
	// Peri selects the PPU programming model
	Peri prot.PeriVersion
	// Regions holds the region descriptors in installation order
	Regions []Region

	state State
}

// NewSequence returns the protection domain configuration for the argument
// target and linker layout.
func NewSequence(d prot.Driver, t *mem.Target, l *mem.Layout) (s *Sequence, err error) {
	regions, err := Regions(t, l)

	if err != nil {
		return
	}

	s = &Sequence{
		Driver:  d,
		Peri:    t.Peri,
		Regions: regions,
	}

	return
}

// State returns the configuration state.
func (s *Sequence) State() State {
	return s.state
}

// Run configures the protection units, it stops at the first failed
// operation and returns its error unchanged. On success the protection
// unit configuration cannot be altered anymore.
//
// A sequence runs only once, later invocations return
// prot.StatusInvalidState without accessing the hardware.
func (s *Sequence) Run() (err error) {
	if s.state != Uninitialized {
		return prot.StatusInvalidState
	}

	s.state = Configuring

	defer func() {
		if err != nil {
			s.state = Faulted
		} else {
			s.state = Locked
		}
	}()

	if err = s.configureBusMasters(); err != nil {
		return
	}

	if err = s.configureRegions(); err != nil {
		return
	}

	if err = s.lockMetaRegion(); err != nil {
		return
	}

	if err = s.lockMasterStructs(); err != nil {
		return
	}

	return s.setActivePC()
}

func (s *Sequence) configureBusMasters() (err error) {
	d := s.Driver

	// CM0+: only PC=0
	if err = d.ConfigBusMaster(prot.CM0, true, true, 0); err != nil {
		return
	}

	// CM4: all device PCs
	return d.ConfigBusMaster(prot.CM4, true, false, prot.DevicePCMask)
}

func (s *Sequence) configureRegions() (err error) {
	d := s.Driver

	for i := range s.Regions {
		r := &s.Regions[i]

		if err = d.ConfigSMPUSlave(r.Slot, &r.Config); err != nil {
			return
		}

		if err = d.EnableSMPUSlave(r.Slot); err != nil {
			return
		}
	}

	return
}

// lockMetaRegion restricts the bus master control registers of the SMPU,
// which would otherwise allow a master to change its own PC.
func (s *Sequence) lockMetaRegion() (err error) {
	d := s.Driver

	if s.Peri == prot.PERI2 {
		// every implemented PC above 0, PC 0 keeps full access
		return d.ConfigPPUFixedSlaveAtt(prot.PPUFixedSMPUMain, prot.AllPCMask, prot.PermDisabled, prot.PermDisabled, true)
	}

	if err = d.ConfigPPUFixedRGSlave(prot.PPUFixedRGSMPU, &metaSlaveConfig); err != nil {
		return
	}

	if err = d.ConfigPPUFixedRGMaster(prot.PPUFixedRGSMPU, &ppuMasterConfig); err != nil {
		return
	}

	if err = d.EnablePPUFixedRGSlave(prot.PPUFixedRGSMPU); err != nil {
		return
	}

	return d.EnablePPUFixedRGMaster(prot.PPUFixedRGSMPU)
}

// lockMasterStructs takes control of the master structs of all SMPU and
// programmable PPU structs, including unused ones, as any of them could be
// used to override the protection settings.
func (s *Sequence) lockMasterStructs() (err error) {
	d := s.Driver

	for i := 0; i < prot.SMPUStructs; i++ {
		if err = d.ConfigSMPUMaster(i, &masterConfig); err != nil {
			return
		}

		if err = d.EnableSMPUMaster(i); err != nil {
			return
		}

		if i >= prot.PPUProgStructs {
			continue
		}

		if s.Peri == prot.PERI2 {
			if err = d.ConfigPPUProgMasterAtt(i, prot.DevicePCMask, prot.PermR, prot.PermR, true); err != nil {
				return
			}

			continue
		}

		if err = d.ConfigPPUProgMaster(i, &ppuMasterConfig); err != nil {
			return
		}

		if err = d.EnablePPUProgMaster(i); err != nil {
			return
		}
	}

	return
}

// setActivePC moves each bus master to its final PC, the CM0+ goes last as
// it performs the transitions.
func (s *Sequence) setActivePC() (err error) {
	d := s.Driver

	if err = d.SetActivePC(prot.CM4, PCApplication); err != nil {
		return
	}

	if err = d.SetActivePC(prot.TC, PCSecure); err != nil {
		return
	}

	return d.SetActivePC(prot.CM0, PCSecure)
}

// Init configures and locks the protection units for the argument target
// and linker layout. Any error leaves the protection units in an
// indeterminate state and the caller must not proceed with booting the
// application core.
func Init(d prot.Driver, t *mem.Target, l *mem.Layout) (err error) {
	s, err := NewSequence(d, t, l)

	if err != nil {
		return
	}

	return s.Run()
}

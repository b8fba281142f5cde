// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package prot

//go:generate mockgen -destination=mock_prot/mock_driver.go github.com/usbarmory/GoTEE-psoc6/prot Driver

// Driver represents the protection unit operations required to set up a
// protection domain. Each method returns nil on success or the Status of
// the failed operation, no method is idempotent.
type Driver interface {
	// ConfigBusMaster sets the privilege, security state and allowed
	// process contexts of a bus master.
	ConfigBusMaster(m Master, privileged bool, secure bool, pcMask PCMask) error

	// ConfigSMPUSlave writes the region descriptor of SMPU struct n,
	// leaving it disabled.
	ConfigSMPUSlave(n int, cfg *SMPUConfig) error
	// EnableSMPUSlave enables the region descriptor of SMPU struct n.
	EnableSMPUSlave(n int) error
	// ConfigSMPUMaster writes the master descriptor of SMPU struct n,
	// which guards reconfiguration of the struct itself.
	ConfigSMPUMaster(n int, cfg *SMPUConfig) error
	// EnableSMPUMaster enables the master descriptor of SMPU struct n.
	EnableSMPUMaster(n int) error

	// ConfigPPUFixedRGSlave configures the slave struct of fixed region
	// PPU n (PERI1).
	ConfigPPUFixedRGSlave(n int, cfg *PPUConfig) error
	// ConfigPPUFixedRGMaster configures the master struct of fixed region
	// PPU n (PERI1).
	ConfigPPUFixedRGMaster(n int, cfg *PPUConfig) error
	// EnablePPUFixedRGSlave enables the slave struct of fixed region PPU n
	// (PERI1).
	EnablePPUFixedRGSlave(n int) error
	// EnablePPUFixedRGMaster enables the master struct of fixed region PPU
	// n (PERI1).
	EnablePPUFixedRGMaster(n int) error
	// ConfigPPUFixedSlaveAtt sets the slave attributes of fixed PPU n for
	// the selected process contexts (PERI2).
	ConfigPPUFixedSlaveAtt(n int, pcMask PCMask, user Permission, priv Permission, secure bool) error

	// ConfigPPUProgMaster configures the master struct of programmable
	// PPU n (PERI1).
	ConfigPPUProgMaster(n int, cfg *PPUConfig) error
	// EnablePPUProgMaster enables the master struct of programmable PPU n
	// (PERI1).
	EnablePPUProgMaster(n int) error
	// ConfigPPUProgMasterAtt sets the master attributes of programmable
	// PPU n for the selected process contexts (PERI2).
	ConfigPPUProgMasterAtt(n int, pcMask PCMask, user Permission, priv Permission, secure bool) error

	// SetActivePC sets the active process context of a bus master.
	SetActivePC(m Master, pc PC) error
}

// Bus represents access to the protection unit registers.
type Bus interface {
	Read(addr uint32) (val uint32, err error)
	Write(addr uint32, val uint32) (err error)
}

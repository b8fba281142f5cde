// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usbarmory/GoTEE-psoc6/prot"
)

func TestUnknownAddress(t *testing.T) {
	m := New(prot.PERI1, prot.CM0)

	for _, addr := range []uint32{
		0,
		prot.PROT_BASE,
		prot.SMPUStruct(0) + 0x08,
		prot.MPUMasterControl(prot.CM4) + 4,
		prot.SMPUStruct(prot.SMPUStructs),
	} {
		_, err := m.Read(addr)
		assert.Equal(t, prot.StatusUnavailable, err, "%#x", addr)
		assert.Equal(t, prot.StatusUnavailable, m.Write(addr, 1), "%#x", addr)
	}

	assert.Zero(t, m.Writes())
	assert.Zero(t, m.Denied())
}

func TestPC0Writes(t *testing.T) {
	m := New(prot.PERI1, prot.CM4)
	u := prot.NewUnit(m)

	guard := &prot.SMPUConfig{
		UserPermission: prot.PermDisabled,
		PrivPermission: prot.PermDisabled,
		PCMask:         0,
	}

	// PC=0 writes are never denied
	require.NoError(t, u.ConfigSMPUMaster(2, guard))
	require.NoError(t, u.EnableSMPUMaster(2))
	require.NoError(t, u.EnableSMPUSlave(2))

	assert.Equal(t, 3, m.Writes())
	assert.Zero(t, m.Denied())
}

func TestMasterStructGuard(t *testing.T) {
	m := New(prot.PERI1, prot.CM4)
	u := prot.NewUnit(m)

	guard := &prot.SMPUConfig{
		UserPermission: prot.PermR,
		PrivPermission: prot.PermRW,
		PCMask:         prot.PCMask2,
	}

	require.NoError(t, u.ConfigBusMaster(prot.CM4, true, false, prot.DevicePCMask))
	require.NoError(t, u.ConfigSMPUMaster(5, guard))
	require.NoError(t, u.EnableSMPUMaster(5))

	require.NoError(t, u.SetActivePC(prot.CM4, 2))
	require.NoError(t, u.EnableSMPUSlave(5))

	require.NoError(t, u.SetActivePC(prot.CM4, 3))

	// struct 6 is unguarded
	require.NoError(t, u.EnableSMPUSlave(6))
	assert.Zero(t, m.Denied())

	assert.Equal(t, prot.StatusNotPermitted, u.EnableSMPUMaster(5))
	assert.Equal(t, 1, m.Denied())

	// the master control registers are unguarded until the PPU is set,
	// unprivileged accesses get the user permission
	require.NoError(t, u.SetActivePC(prot.CM4, 2))
	require.NoError(t, u.ConfigBusMaster(prot.CM4, false, false, prot.DevicePCMask))
	assert.Equal(t, prot.StatusNotPermitted, u.EnableSMPUMaster(5))
	assert.Equal(t, 2, m.Denied())
}

func TestPPUGuard(t *testing.T) {
	for _, peri := range []prot.PeriVersion{prot.PERI1, prot.PERI2} {
		m := New(peri, prot.CM0)
		u := prot.NewUnit(m)

		fx := prot.PPUFixedRGSMPU

		if peri == prot.PERI2 {
			fx = prot.PPUFixedSMPUMain
		}

		require.NoError(t, u.ConfigBusMaster(prot.CM0, true, true, prot.DevicePCMask))
		require.NoError(t, u.ConfigPPUFixedSlaveAtt(fx, prot.AllPCMask, prot.PermDisabled, prot.PermDisabled, true))
		require.NoError(t, u.SetActivePC(prot.CM0, 1))

		if peri == prot.PERI1 {
			// PERI1 attributes apply once the struct is valid
			require.NoError(t, u.EnablePPUFixedRGSlave(fx))
		}

		assert.Equal(t, prot.StatusNotPermitted, u.SetActivePC(prot.CM0, 0), "PERI%d", peri)
		assert.Equal(t, 1, m.Denied(), "PERI%d", peri)
	}
}

func TestReset(t *testing.T) {
	m := New(prot.PERI2, prot.CM0)
	u := prot.NewUnit(m)

	require.NoError(t, u.SetActivePC(prot.CM0, 1))
	require.NoError(t, u.ConfigSMPUMaster(0, &prot.SMPUConfig{PCMask: prot.PCMask2}))
	require.NoError(t, u.EnableSMPUMaster(0))
	assert.Equal(t, prot.StatusNotPermitted, u.EnableSMPUSlave(0))

	m.Reset()

	assert.Zero(t, m.Writes())
	assert.Zero(t, m.Denied())
	assert.Equal(t, prot.PERI2, m.Peri())
	assert.Equal(t, prot.CM0, m.Initiator())

	pc, err := u.ActivePC(prot.CM0)
	require.NoError(t, err)
	assert.Zero(t, pc)

	require.NoError(t, u.EnableSMPUSlave(0))
}

func TestPCSavedReadOnly(t *testing.T) {
	m := New(prot.PERI1, prot.CM0)
	addr := prot.MPUMasterControl(prot.CM4)

	require.NoError(t, m.Write(addr, 3<<prot.MPU_MS_CTL_PC_SAVED|2))

	val, err := m.Read(addr)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), val)

	u := prot.NewUnit(m)
	require.NoError(t, u.SetActivePC(prot.CM4, 4))

	pc, err := u.ActivePC(prot.CM4)
	require.NoError(t, err)
	assert.Equal(t, prot.PC(4), pc)
}

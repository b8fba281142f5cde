// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package protunits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usbarmory/GoTEE-psoc6/prot"
	"github.com/usbarmory/GoTEE-psoc6/sim"
)

func lockedMachine(t *testing.T, peri prot.PeriVersion) (*sim.Machine, *prot.Unit) {
	m := sim.New(peri, prot.CM0)
	u := prot.NewUnit(m)

	require.NoError(t, Init(u, target(peri), layout))

	return m, u
}

func TestInitLocksDomain(t *testing.T) {
	for _, peri := range []prot.PeriVersion{prot.PERI1, prot.PERI2} {
		t.Run(fmt.Sprintf("PERI%d", peri), func(t *testing.T) {
			_, u := lockedMachine(t, peri)

			regions, err := Regions(target(peri), layout)
			require.NoError(t, err)

			for _, r := range regions {
				cfg, enabled, err := u.SMPUSlave(r.Slot)
				require.NoError(t, err)

				assert.True(t, enabled, r.Name)
				assert.Equal(t, r.Config, cfg, r.Name)
			}

			for i := 0; i < prot.SMPUStructs; i++ {
				cfg, enabled, err := u.SMPUMaster(i)
				require.NoError(t, err)

				assert.True(t, enabled, "SMPU master %d", i)
				assert.Equal(t, masterConfig, cfg, "SMPU master %d", i)
			}

			for i := 0; i < prot.PPUProgStructs; i++ {
				s, err := u.PPUProgMaster(i)
				require.NoError(t, err)

				a := s.Attributes(PCApplication)
				assert.Equal(t, prot.PermR, a.PrivPermission, "PPU master %d", i)
				assert.False(t, a.PrivPermission.Write(), "PPU master %d", i)

				if peri == prot.PERI1 {
					assert.True(t, s.Valid, "PPU master %d", i)
				}
			}

			for m, want := range map[prot.Master]prot.PC{
				prot.CM0: PCSecure,
				prot.TC:  PCSecure,
				prot.CM4: PCApplication,
			} {
				pc, err := u.ActivePC(m)
				require.NoError(t, err)
				assert.Equal(t, want, pc, m.String())
			}

			privileged, secure, pcMask, err := u.BusMaster(prot.CM4)
			require.NoError(t, err)
			assert.True(t, privileged)
			assert.False(t, secure)
			assert.Equal(t, prot.DevicePCMask, pcMask)
		})
	}
}

func TestInitTwice(t *testing.T) {
	for _, peri := range []prot.PeriVersion{prot.PERI1, prot.PERI2} {
		m, u := lockedMachine(t, peri)
		writes := m.Writes()

		err := Init(u, target(peri), layout)

		require.Equal(t, prot.StatusNotPermitted, prot.StatusOf(err), "PERI%d", peri)
		assert.Equal(t, writes, m.Writes(), "PERI%d", peri)
		assert.Equal(t, 1, m.Denied(), "PERI%d", peri)
		assert.Equal(t, "SM protection unit initialization failed, not permitted (0x00c20004)",
			fmt.Sprintf("SM protection unit initialization failed, %v", err))
	}
}

func TestLockedDomainTamper(t *testing.T) {
	m, u := lockedMachine(t, prot.PERI1)

	region := &prot.SMPUConfig{
		Address:        0x08000000,
		RegionSize:     prot.Size1MB,
		UserPermission: prot.PermRWX,
		PrivPermission: prot.PermRWX,
		PCMask:         prot.DevicePCMask,
	}

	for _, ms := range []prot.Master{prot.CM0, prot.CM4} {
		m.SetInitiator(ms)

		// unused slot
		assert.Equal(t, prot.StatusNotPermitted, u.ConfigSMPUSlave(0, region), ms.String())
		// installed region
		assert.Equal(t, prot.StatusNotPermitted, u.EnableSMPUSlave(SlotCM4SRAM), ms.String())
		// master struct override
		assert.Equal(t, prot.StatusNotPermitted, u.ConfigSMPUMaster(SlotCM0PFlash, &masterConfig), ms.String())
		// PC escalation
		assert.Equal(t, prot.StatusNotPermitted, u.SetActivePC(ms, 0), ms.String())
		// bus master reconfiguration
		assert.Equal(t, prot.StatusNotPermitted, u.ConfigBusMaster(ms, true, true, prot.AllPCMask&^prot.PCLimitMask), ms.String())
		// meta region unlock
		assert.Equal(t, prot.StatusNotPermitted, u.ConfigPPUFixedRGSlave(prot.PPUFixedRGSMPU, &ppuMasterConfig), ms.String())
		// PPU master struct override
		assert.Equal(t, prot.StatusNotPermitted, u.ConfigPPUProgMaster(3, &metaSlaveConfig), ms.String())
	}

	pc, err := u.ActivePC(prot.CM4)
	require.NoError(t, err)
	assert.Equal(t, PCApplication, pc)

	cfg, enabled, err := u.SMPUSlave(0)
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Zero(t, cfg.Address)
}

// The CM4 gives up PC=0 on its first transition, an initialization
// performed by the CM4 cannot complete.
func TestInitFromCM4(t *testing.T) {
	m := sim.New(prot.PERI1, prot.CM4)
	u := prot.NewUnit(m)

	err := Init(u, target(prot.PERI1), layout)
	assert.Equal(t, prot.StatusNotPermitted, err)

	pc, err := u.ActivePC(prot.CM4)
	require.NoError(t, err)
	assert.Equal(t, PCApplication, pc)

	pc, err = u.ActivePC(prot.TC)
	require.NoError(t, err)
	assert.Zero(t, pc)

	assert.Equal(t, 1, m.Denied())
}

// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package protunits

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usbarmory/GoTEE-psoc6/mem"
	"github.com/usbarmory/GoTEE-psoc6/prot"
)

// recorder is a prot.Driver which records each operation and fails the
// one matching failAt (1-based) or failOn.
type recorder struct {
	calls  []string
	failAt int
	failOn string
	status prot.Status
}

func (r *recorder) record(format string, a ...interface{}) error {
	call := fmt.Sprintf(format, a...)
	r.calls = append(r.calls, call)

	if len(r.calls) == r.failAt || call == r.failOn {
		return r.status
	}

	return nil
}

func (r *recorder) ConfigBusMaster(m prot.Master, privileged bool, secure bool, pcMask prot.PCMask) error {
	return r.record("ConfigBusMaster(%v, %v, %v, %#x)", m, privileged, secure, pcMask)
}

func (r *recorder) ConfigSMPUSlave(n int, cfg *prot.SMPUConfig) error {
	return r.record("ConfigSMPUSlave(%d, %#.8x, %v)", n, cfg.Address, cfg.RegionSize)
}

func (r *recorder) EnableSMPUSlave(n int) error {
	return r.record("EnableSMPUSlave(%d)", n)
}

func (r *recorder) ConfigSMPUMaster(n int, cfg *prot.SMPUConfig) error {
	return r.record("ConfigSMPUMaster(%d)", n)
}

func (r *recorder) EnableSMPUMaster(n int) error {
	return r.record("EnableSMPUMaster(%d)", n)
}

func (r *recorder) ConfigPPUFixedRGSlave(n int, cfg *prot.PPUConfig) error {
	return r.record("ConfigPPUFixedRGSlave(%d)", n)
}

func (r *recorder) ConfigPPUFixedRGMaster(n int, cfg *prot.PPUConfig) error {
	return r.record("ConfigPPUFixedRGMaster(%d)", n)
}

func (r *recorder) EnablePPUFixedRGSlave(n int) error {
	return r.record("EnablePPUFixedRGSlave(%d)", n)
}

func (r *recorder) EnablePPUFixedRGMaster(n int) error {
	return r.record("EnablePPUFixedRGMaster(%d)", n)
}

func (r *recorder) ConfigPPUFixedSlaveAtt(n int, pcMask prot.PCMask, user prot.Permission, priv prot.Permission, secure bool) error {
	return r.record("ConfigPPUFixedSlaveAtt(%d, %#x)", n, pcMask)
}

func (r *recorder) ConfigPPUProgMaster(n int, cfg *prot.PPUConfig) error {
	return r.record("ConfigPPUProgMaster(%d)", n)
}

func (r *recorder) EnablePPUProgMaster(n int) error {
	return r.record("EnablePPUProgMaster(%d)", n)
}

func (r *recorder) ConfigPPUProgMasterAtt(n int, pcMask prot.PCMask, user prot.Permission, priv prot.Permission, secure bool) error {
	return r.record("ConfigPPUProgMasterAtt(%d, %#x)", n, pcMask)
}

func (r *recorder) SetActivePC(m prot.Master, pc prot.PC) error {
	return r.record("SetActivePC(%v, %d)", m, pc)
}

func expectedTrace(peri prot.PeriVersion) (trace []string) {
	trace = append(trace,
		"ConfigBusMaster(CM0+, true, true, 0x0)",
		"ConfigBusMaster(CM4, true, false, 0x7f)",
		"ConfigSMPUSlave(13, 0x10000000, 256KB)",
		"EnableSMPUSlave(13)",
		"ConfigSMPUSlave(12, 0x08000000, 128KB)",
		"EnableSMPUSlave(12)",
		"ConfigSMPUSlave(11, 0x10000000, 2MB)",
		"EnableSMPUSlave(11)",
		"ConfigSMPUSlave(10, 0x08020000, 128KB)",
		"EnableSMPUSlave(10)",
		"ConfigSMPUSlave(9, 0x08000000, 1MB)",
		"EnableSMPUSlave(9)",
	)

	if peri == prot.PERI2 {
		trace = append(trace, "ConfigPPUFixedSlaveAtt(6, 0x7fff)")
	} else {
		trace = append(trace,
			"ConfigPPUFixedRGSlave(2)",
			"ConfigPPUFixedRGMaster(2)",
			"EnablePPUFixedRGSlave(2)",
			"EnablePPUFixedRGMaster(2)",
		)
	}

	for i := 0; i < prot.SMPUStructs; i++ {
		trace = append(trace,
			fmt.Sprintf("ConfigSMPUMaster(%d)", i),
			fmt.Sprintf("EnableSMPUMaster(%d)", i),
		)

		if peri == prot.PERI2 {
			trace = append(trace, fmt.Sprintf("ConfigPPUProgMasterAtt(%d, 0x7f)", i))
		} else {
			trace = append(trace,
				fmt.Sprintf("ConfigPPUProgMaster(%d)", i),
				fmt.Sprintf("EnablePPUProgMaster(%d)", i),
			)
		}
	}

	return append(trace,
		"SetActivePC(CM4, 4)",
		"SetActivePC(TC, 1)",
		"SetActivePC(CM0+, 1)",
	)
}

func target(peri prot.PeriVersion) *mem.Target {
	return &mem.Target{
		Name:      "test",
		FlashBase: mem.FlashBase,
		FlashSize: 2 * mem.MB,
		SRAMBase:  mem.SRAMBase,
		SRAMSize:  1 * mem.MB,
		Peri:      peri,
	}
}

var layout = &mem.Layout{
	CM0PFlash:  mem.Region{Start: 0x10000000, Length: 0x00040000},
	CM0PSRAM:   mem.Region{Start: 0x08000000, Length: 0x00020000},
	CM4Flash:   mem.Region{Start: 0x10040000, Length: 0x001c0000},
	CM4SRAM:    mem.Region{Start: 0x08040000, Length: 0x000bf800},
	SharedSRAM: mem.Region{Start: 0x08020000, Length: 0x00020000},
}

func TestRunOrder(t *testing.T) {
	for _, peri := range []prot.PeriVersion{prot.PERI1, prot.PERI2} {
		t.Run(fmt.Sprintf("PERI%d", peri), func(t *testing.T) {
			r := &recorder{}

			s, err := NewSequence(r, target(peri), layout)
			require.NoError(t, err)
			assert.Equal(t, Uninitialized, s.State())

			require.NoError(t, s.Run())
			assert.Equal(t, Locked, s.State())

			if diff := cmp.Diff(expectedTrace(peri), r.calls); diff != "" {
				t.Errorf("unexpected operations (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	for _, peri := range []prot.PeriVersion{prot.PERI1, prot.PERI2} {
		trace := expectedTrace(peri)

		for k := 1; k <= len(trace); k++ {
			r := &recorder{
				failAt: k,
				status: prot.StatusBadParam,
			}

			s, err := NewSequence(r, target(peri), layout)
			require.NoError(t, err)

			err = s.Run()

			require.Equal(t, prot.StatusBadParam, prot.StatusOf(err), "PERI%d call %d", peri, k)
			require.Equal(t, Faulted, s.State())

			if diff := cmp.Diff(trace[:k], r.calls); diff != "" {
				t.Fatalf("PERI%d failure at call %d, unexpected operations (-want +got):\n%s", peri, k, diff)
			}
		}
	}
}

func TestThirdRegionEnableFailure(t *testing.T) {
	r := &recorder{
		failOn: fmt.Sprintf("EnableSMPUSlave(%d)", SlotCM4Flash),
		status: prot.StatusFailure,
	}

	err := Init(r, target(prot.PERI1), layout)
	require.Equal(t, prot.StatusFailure, err)

	require.NotEmpty(t, r.calls)
	assert.Equal(t, r.failOn, r.calls[len(r.calls)-1])

	for _, call := range r.calls {
		assert.False(t, strings.Contains(call, "PPU"), call)
		assert.False(t, strings.Contains(call, "SMPUMaster"), call)
		assert.False(t, strings.HasPrefix(call, "SetActivePC"), call)
	}
}

func TestRunOnce(t *testing.T) {
	r := &recorder{}

	s, err := NewSequence(r, target(prot.PERI1), layout)
	require.NoError(t, err)
	require.NoError(t, s.Run())

	n := len(r.calls)

	assert.Equal(t, prot.StatusInvalidState, s.Run())
	assert.Equal(t, Locked, s.State())
	assert.Len(t, r.calls, n)
}

func TestRunAfterFault(t *testing.T) {
	r := &recorder{
		failAt: 1,
		status: prot.StatusNotPermitted,
	}

	s, err := NewSequence(r, target(prot.PERI1), layout)
	require.NoError(t, err)

	assert.Equal(t, prot.StatusNotPermitted, s.Run())
	assert.Equal(t, prot.StatusInvalidState, s.Run())
	assert.Equal(t, Faulted, s.State())
	assert.Len(t, r.calls, 1)
}

func TestInitUnsupportedTarget(t *testing.T) {
	r := &recorder{}

	tgt := target(prot.PERI1)
	tgt.FlashSize = 768 * mem.KB

	require.Error(t, Init(r, tgt, layout))
	assert.Empty(t, r.calls)
}
